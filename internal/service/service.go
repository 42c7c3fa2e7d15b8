// Package service turns client requests into paginator state.
// Kept lean: request validation, defaults and error shaping only; the math lives in pkg/pagination.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/pagewindow/pkg/pagination"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// newInvalidInput builds an aggregated validation error if any field errors are present.
func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	var v feIface
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// DescribeRequest asks for the metadata of one paginator, optionally after a single action.
type DescribeRequest struct {
	Config pagination.Config
	Action string
}

// NavigateRequest replays a sequence of actions over one paginator.
type NavigateRequest struct {
	Config  pagination.Config `json:"config"`
	Actions []string          `json:"actions"`
}

// Step is the paginator state right after one action.
type Step struct {
	Action   string              `json:"action"`
	Metadata pagination.Metadata `json:"metadata"`
}

// NavigateResult holds the initial state, every step and the final state.
type NavigateResult struct {
	Initial pagination.Metadata `json:"initial"`
	Steps   []Step              `json:"steps"`
	Final   pagination.Metadata `json:"final"`
}

// PaginationService defines pagination use cases.
type PaginationService interface {
	Describe(ctx context.Context, req DescribeRequest) (pagination.Metadata, error)
	Navigate(ctx context.Context, req NavigateRequest) (NavigateResult, error)
	// Ping reports whether the configured defaults still produce a valid paginator.
	Ping(ctx context.Context) error
}
