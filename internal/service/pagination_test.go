package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/maxviazov/pagewindow/internal/service"
	"github.com/maxviazov/pagewindow/pkg/pagination"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(limits service.Limits) service.PaginationService {
	return service.NewPaginationService(limits, zerolog.Nop())
}

var defaultLimits = service.Limits{DefaultPageSize: 10, DefaultWindowSize: 5, MaxPageSize: 100, MaxActions: 10}

func TestDescribe_AppliesAction(t *testing.T) {
	svc := newService(defaultLimits)
	m, err := svc.Describe(context.Background(), service.DescribeRequest{
		Config: pagination.Config{TotalItems: pagination.Int(100), CurrentPage: pagination.Int(4)},
		Action: "next",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, m.CurrentPage)
	assert.Equal(t, []int{3, 4, 5, 6, 7}, m.Pages)
}

func TestDescribe_UsesServiceDefaults(t *testing.T) {
	svc := newService(service.Limits{DefaultPageSize: 25, DefaultWindowSize: 3})
	m, err := svc.Describe(context.Background(), service.DescribeRequest{
		Config: pagination.Config{TotalItems: pagination.Int(100)},
	})
	require.NoError(t, err)
	assert.Equal(t, 25, m.PageSize)
	assert.Equal(t, 3, m.WindowSize)
	assert.Equal(t, 4, m.PagesCount)
}

func TestDescribe_FallsBackToLibraryDefaults(t *testing.T) {
	svc := newService(service.Limits{})
	m, err := svc.Describe(context.Background(), service.DescribeRequest{})
	require.NoError(t, err)
	assert.Equal(t, pagination.DefaultPageSize, m.PageSize)
	assert.Equal(t, pagination.DefaultWindowSize, m.WindowSize)
	assert.Equal(t, 1, m.PagesCount)
	assert.False(t, m.HasItems)
}

func TestDescribe_InvalidInput(t *testing.T) {
	cases := []struct {
		name      string
		req       service.DescribeRequest
		wantField string
		wantMsg   string
	}{
		{"negative total", service.DescribeRequest{Config: pagination.Config{TotalItems: pagination.Int(-1)}}, "total_items", "total items cannot be negative"},
		{"explicit zero page size", service.DescribeRequest{Config: pagination.Config{PageSize: pagination.Int(0)}}, "page_size", "page size must be bigger than zero"},
		{"zero window", service.DescribeRequest{Config: pagination.Config{WindowSize: pagination.Int(0)}}, "window_size", "page window size must be bigger than zero"},
		{"page size over cap", service.DescribeRequest{Config: pagination.Config{PageSize: pagination.Int(1000)}}, "page_size", "must be <= 100"},
		{"unknown action", service.DescribeRequest{Action: "sideways"}, "action", `unknown action "sideways"`},
		{"page size action over cap", service.DescribeRequest{Action: "page_size:1000"}, "action", "page size must be <= 100"},
	}
	svc := newService(defaultLimits)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Describe(context.Background(), tc.req)
			require.ErrorIs(t, err, service.ErrInvalidInput)
			fe := service.FieldErrors(err)
			require.Len(t, fe, 1)
			assert.Equal(t, tc.wantField, fe[0].Field)
			assert.Equal(t, tc.wantMsg, fe[0].Message)
		})
	}
}

func TestNavigate_RecordsEveryStep(t *testing.T) {
	svc := newService(defaultLimits)
	res, err := svc.Navigate(context.Background(), service.NavigateRequest{
		Config:  pagination.Config{TotalItems: pagination.Int(100), CurrentPage: pagination.Int(8)},
		Actions: []string{"next", "next", "next", "prev", "goto:1"},
	})
	require.NoError(t, err)

	assert.Equal(t, []int{6, 7, 8, 9, 10}, res.Initial.Pages)
	require.Len(t, res.Steps, 5)
	assert.Equal(t, 9, res.Steps[0].Metadata.CurrentPage)
	assert.Equal(t, 10, res.Steps[1].Metadata.CurrentPage)
	assert.Equal(t, 10, res.Steps[2].Metadata.CurrentPage, "next is idempotent on the last page")
	assert.Equal(t, "previous", res.Steps[3].Action)
	assert.Equal(t, "goto:1", res.Steps[4].Action)
	assert.Equal(t, 1, res.Final.CurrentPage)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, res.Final.Pages)
}

func TestNavigate_NoActions(t *testing.T) {
	svc := newService(defaultLimits)
	res, err := svc.Navigate(context.Background(), service.NavigateRequest{})
	require.NoError(t, err)
	assert.Empty(t, res.Steps)
	assert.Equal(t, res.Initial, res.Final)
}

func TestNavigate_CollectsActionErrors(t *testing.T) {
	svc := newService(defaultLimits)
	_, err := svc.Navigate(context.Background(), service.NavigateRequest{
		Actions: []string{"next", "bogus", "goto:x"},
	})
	require.ErrorIs(t, err, service.ErrInvalidInput)
	fe := service.FieldErrors(err)
	require.Len(t, fe, 2)
	assert.Equal(t, "actions[1]", fe[0].Field)
	assert.Equal(t, "actions[2]", fe[1].Field)
}

func TestNavigate_TooManyActions(t *testing.T) {
	svc := newService(service.Limits{MaxActions: 2})
	_, err := svc.Navigate(context.Background(), service.NavigateRequest{Actions: []string{"next", "next", "next"}})
	require.ErrorIs(t, err, service.ErrInvalidInput)
	assert.Equal(t, "actions", service.FieldErrors(err)[0].Field)
}

func TestNavigate_PageSizeActionOverCap(t *testing.T) {
	svc := newService(defaultLimits)
	_, err := svc.Navigate(context.Background(), service.NavigateRequest{
		Config:  pagination.Config{TotalItems: pagination.Int(5000)},
		Actions: []string{"next", "page_size:1000000"},
	})
	require.ErrorIs(t, err, service.ErrInvalidInput)
	fe := service.FieldErrors(err)
	require.Len(t, fe, 1)
	assert.Equal(t, "actions[1]", fe[0].Field)
	assert.Equal(t, "page size must be <= 100", fe[0].Message)
}

func TestNavigate_PageSizeActionAtCap(t *testing.T) {
	svc := newService(defaultLimits)
	res, err := svc.Navigate(context.Background(), service.NavigateRequest{
		Config:  pagination.Config{TotalItems: pagination.Int(5000)},
		Actions: []string{"page_size:100"},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, res.Final.PageSize)
	assert.Equal(t, 50, res.Final.PagesCount)

	// no cap configured
	res, err = newService(service.Limits{}).Navigate(context.Background(), service.NavigateRequest{
		Config:  pagination.Config{TotalItems: pagination.Int(5000)},
		Actions: []string{"page_size:1000000"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1000000, res.Final.PageSize)
}

func TestNavigate_CanceledContext(t *testing.T) {
	svc := newService(defaultLimits)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Navigate(ctx, service.NavigateRequest{Actions: []string{"next"}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, service.ErrInvalidInput))
}

func TestPing(t *testing.T) {
	assert.NoError(t, newService(defaultLimits).Ping(context.Background()))
	assert.NoError(t, newService(service.Limits{}).Ping(context.Background()))
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, service.FieldErrors(nil))
	assert.Nil(t, service.FieldErrors(errors.New("boom")))
}
