package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maxviazov/pagewindow/pkg/pagination"
)

// ActionKind names a paginator mutation a client can request.
type ActionKind string

const (
	ActionFirst      ActionKind = "first"
	ActionLast       ActionKind = "last"
	ActionNext       ActionKind = "next"
	ActionPrevious   ActionKind = "previous"
	ActionGoTo       ActionKind = "goto"
	ActionPageSize   ActionKind = "page_size"
	ActionWindowSize ActionKind = "window_size"
	ActionTotalItems ActionKind = "total_items"
)

// Action is a parsed navigation step. Arg is only meaningful for kinds that take a number.
type Action struct {
	Kind ActionKind
	Arg  int
}

// ParseAction accepts "first", "last", "next", "previous" (or "prev"),
// and "goto:N", "page_size:N", "window_size:N", "total_items:N".
func ParseAction(raw string) (Action, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	name, arg, hasArg := strings.Cut(s, ":")

	switch kind := ActionKind(name); kind {
	case ActionFirst, ActionLast, ActionNext, ActionPrevious, "prev":
		if hasArg {
			return Action{}, fmt.Errorf("action %q takes no argument", name)
		}
		if kind == "prev" {
			kind = ActionPrevious
		}
		return Action{Kind: kind}, nil
	case ActionGoTo, ActionPageSize, ActionWindowSize, ActionTotalItems:
		if !hasArg {
			return Action{}, fmt.Errorf("action %q requires a numeric argument", name)
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return Action{}, fmt.Errorf("action %q: %w", name, err)
		}
		return Action{Kind: kind, Arg: n}, nil
	default:
		return Action{}, fmt.Errorf("unknown action %q", raw)
	}
}

func (a Action) String() string {
	switch a.Kind {
	case ActionGoTo, ActionPageSize, ActionWindowSize, ActionTotalItems:
		return fmt.Sprintf("%s:%d", a.Kind, a.Arg)
	default:
		return string(a.Kind)
	}
}

// Apply runs the action against p. Out-of-range arguments are clamped by the paginator.
func (a Action) Apply(p *pagination.Paginator) {
	switch a.Kind {
	case ActionFirst:
		p.GoToFirstPage()
	case ActionLast:
		p.GoToLastPage()
	case ActionNext:
		p.GoToNextPage()
	case ActionPrevious:
		p.GoToPreviousPage()
	case ActionGoTo:
		p.SetCurrentPage(a.Arg)
	case ActionPageSize:
		p.SetPageSize(a.Arg)
	case ActionWindowSize:
		p.SetPageWindowSize(a.Arg)
	case ActionTotalItems:
		p.SetTotalItems(a.Arg)
	}
}
