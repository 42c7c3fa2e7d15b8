package pagination

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Defaults used for every Config field left nil.
const (
	DefaultTotalItems  = 0
	DefaultPageSize    = 10
	DefaultCurrentPage = 1
	DefaultWindowSize  = 5
)

// Config describes a paginator. Every field is optional: nil means "use the default",
// which keeps an explicit zero (an invalid page size, say) distinguishable from "not set".
type Config struct {
	TotalItems  *int `json:"total_items,omitempty" mapstructure:"total_items"`
	PageSize    *int `json:"page_size,omitempty" mapstructure:"page_size"`
	CurrentPage *int `json:"current_page,omitempty" mapstructure:"current_page"`
	WindowSize  *int `json:"window_size,omitempty" mapstructure:"window_size"`
}

// DefaultConfig returns a Config with every field set to its default.
func DefaultConfig() Config {
	return Config{
		TotalItems:  Int(DefaultTotalItems),
		PageSize:    Int(DefaultPageSize),
		CurrentPage: Int(DefaultCurrentPage),
		WindowSize:  Int(DefaultWindowSize),
	}
}

// Int returns a pointer to v. Handy for building a Config inline.
func Int(v int) *int { return &v }

// settings is a Config with the defaults resolved.
// Field order matters: validation reports the first failing field in declaration order.
type settings struct {
	TotalItems  int `validate:"gte=0"`
	PageSize    int `validate:"gt=0"`
	CurrentPage int
	WindowSize  int `validate:"gt=0"`
}

// Shared across calls; *validator.Validate is safe for concurrent use.
var structValidator = validator.New()

func (c Config) resolve() settings {
	return settings{
		TotalItems:  valueOr(c.TotalItems, DefaultTotalItems),
		PageSize:    valueOr(c.PageSize, DefaultPageSize),
		CurrentPage: valueOr(c.CurrentPage, DefaultCurrentPage),
		WindowSize:  valueOr(c.WindowSize, DefaultWindowSize),
	}
}

func (s settings) validate() error {
	err := structValidator.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	switch verrs[0].StructField() {
	case "TotalItems":
		return ErrNegativeTotalItems
	case "PageSize":
		return ErrInvalidPageSize
	case "WindowSize":
		return ErrInvalidWindowSize
	default:
		return err
	}
}

func valueOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
