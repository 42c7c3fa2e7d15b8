package pagination

import "errors"

// Construction errors. New returns exactly one of them, for the first invalid field.
var (
	ErrNegativeTotalItems = errors.New("total items cannot be negative")
	ErrInvalidPageSize    = errors.New("page size must be bigger than zero")
	ErrInvalidWindowSize  = errors.New("page window size must be bigger than zero")

	// ErrNegativePageIndex is returned by NewPage.
	ErrNegativePageIndex = errors.New("index cannot be negative")
)
