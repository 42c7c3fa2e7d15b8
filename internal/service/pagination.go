package service

import (
	"context"
	"fmt"
	"time"

	"github.com/maxviazov/pagewindow/pkg/pagination"
	"github.com/rs/zerolog"
)

// paginationService builds a fresh paginator per call, so calls never share state.
type paginationService struct {
	limits Limits
	log    zerolog.Logger
}

func NewPaginationService(limits Limits, logger zerolog.Logger) PaginationService {
	l := logger.With().Str("module", "service").Str("component", "pagination").Logger()
	return &paginationService{limits: limits, log: l}
}

func (s *paginationService) Describe(ctx context.Context, req DescribeRequest) (pagination.Metadata, error) {
	var action *Action
	if req.Action != "" {
		a, err := ParseAction(req.Action)
		if err != nil {
			return pagination.Metadata{}, newInvalidInput([]FieldError{{Field: "action", Message: err.Error()}})
		}
		if msg := s.limits.checkAction(a); msg != "" {
			return pagination.Metadata{}, newInvalidInput([]FieldError{{Field: "action", Message: msg}})
		}
		action = &a
	}

	p, err := s.build(req.Config)
	if err != nil {
		return pagination.Metadata{}, err
	}
	if action != nil {
		action.Apply(p)
	}
	return p.Snapshot(), nil
}

func (s *paginationService) Navigate(ctx context.Context, req NavigateRequest) (NavigateResult, error) {
	start := time.Now()

	actions, ferrs := s.limits.parseActions(req.Actions)
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Strs("actions", req.Actions).Interface("field_errors", ferrs).Msg("navigate validation failed")
		return NavigateResult{}, err
	}

	p, err := s.build(req.Config)
	if err != nil {
		return NavigateResult{}, err
	}

	res := NavigateResult{Initial: p.Snapshot(), Steps: make([]Step, 0, len(actions))}
	for _, a := range actions {
		if err := ctx.Err(); err != nil {
			return NavigateResult{}, fmt.Errorf("navigate aborted after %d steps: %w", len(res.Steps), err)
		}
		a.Apply(p)
		res.Steps = append(res.Steps, Step{Action: a.String(), Metadata: p.Snapshot()})
	}
	res.Final = p.Snapshot()

	s.log.Debug().
		Dur("took", time.Since(start)).
		Int("steps", len(res.Steps)).
		Int("current_page", res.Final.CurrentPage).
		Msg("navigation replayed")
	return res, nil
}

func (s *paginationService) Ping(ctx context.Context) error {
	if _, err := pagination.New(s.limits.withDefaults(pagination.Config{})); err != nil {
		return fmt.Errorf("pagination defaults are invalid: %w", err)
	}
	return nil
}

// build applies service defaults and limits, then constructs the paginator.
// Construction errors come back as field errors on the offending request field.
func (s *paginationService) build(cfg pagination.Config) (*pagination.Paginator, error) {
	cfg = s.limits.withDefaults(cfg)
	if err := newInvalidInput(s.limits.checkConfig(cfg)); err != nil {
		return nil, err
	}

	p, err := pagination.New(cfg)
	if err != nil {
		if field := constructionField(err); field != "" {
			s.log.Debug().Err(err).Str("field", field).Msg("paginator construction rejected")
			return nil, newInvalidInput([]FieldError{{Field: field, Message: err.Error()}})
		}
		s.log.Error().Err(err).Msg("paginator construction failed")
		return nil, err
	}
	return p, nil
}
