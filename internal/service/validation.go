package service

import (
	"errors"
	"fmt"

	"github.com/maxviazov/pagewindow/pkg/pagination"
)

// Limits bounds what a single request may ask for.
type Limits struct {
	DefaultPageSize   int
	DefaultWindowSize int
	MaxPageSize       int
	MaxActions        int
}

// withDefaults fills unset page and window sizes from the service limits.
// Fields the client did send are left alone, so an explicit 0 still fails construction.
func (l Limits) withDefaults(cfg pagination.Config) pagination.Config {
	if cfg.PageSize == nil && l.DefaultPageSize > 0 {
		cfg.PageSize = pagination.Int(l.DefaultPageSize)
	}
	if cfg.WindowSize == nil && l.DefaultWindowSize > 0 {
		cfg.WindowSize = pagination.Int(l.DefaultWindowSize)
	}
	return cfg
}

func (l Limits) checkConfig(cfg pagination.Config) []FieldError {
	var ferrs []FieldError
	if l.MaxPageSize > 0 && cfg.PageSize != nil && *cfg.PageSize > l.MaxPageSize {
		ferrs = append(ferrs, FieldError{Field: "page_size", Message: fmt.Sprintf("must be <= %d", l.MaxPageSize)})
	}
	return ferrs
}

// checkAction applies the page size cap to page_size actions.
func (l Limits) checkAction(a Action) string {
	if a.Kind == ActionPageSize && l.MaxPageSize > 0 && a.Arg > l.MaxPageSize {
		return fmt.Sprintf("page size must be <= %d", l.MaxPageSize)
	}
	return ""
}

func (l Limits) parseActions(raw []string) ([]Action, []FieldError) {
	if l.MaxActions > 0 && len(raw) > l.MaxActions {
		return nil, []FieldError{{Field: "actions", Message: fmt.Sprintf("at most %d actions allowed", l.MaxActions)}}
	}
	var (
		actions = make([]Action, 0, len(raw))
		ferrs   []FieldError
	)
	for i, s := range raw {
		a, err := ParseAction(s)
		if err != nil {
			ferrs = append(ferrs, FieldError{Field: fmt.Sprintf("actions[%d]", i), Message: err.Error()})
			continue
		}
		if msg := l.checkAction(a); msg != "" {
			ferrs = append(ferrs, FieldError{Field: fmt.Sprintf("actions[%d]", i), Message: msg})
			continue
		}
		actions = append(actions, a)
	}
	return actions, ferrs
}

// constructionField names the request field a pagination.New error refers to.
func constructionField(err error) string {
	switch {
	case errors.Is(err, pagination.ErrNegativeTotalItems):
		return "total_items"
	case errors.Is(err, pagination.ErrInvalidPageSize):
		return "page_size"
	case errors.Is(err, pagination.ErrInvalidWindowSize):
		return "window_size"
	default:
		return ""
	}
}
