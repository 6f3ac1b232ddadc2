package calculation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/wealthify/fincalc/internal/domain"
)

// ErrInvalidArgument rejects inputs the projections cannot meaningfully
// compute: negative amounts, negative rates, zero or negative horizons.
// Callers map it to their own user-facing error responses.
var ErrInvalidArgument = errors.New("invalid argument")

func requireYears(years int, field string) error {
	if years <= 0 {
		return fmt.Errorf("%w: %s must be a positive number of years, got %d", ErrInvalidArgument, field, years)
	}
	return nil
}

func requireNonNegative(d decimal.Decimal, field string) error {
	if d.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative, got %s", ErrInvalidArgument, field, d)
	}
	return nil
}

func requireFrequency(f domain.Frequency) error {
	if !f.IsValid() {
		return fmt.Errorf("%w: unknown frequency %q", ErrInvalidArgument, f)
	}
	return nil
}

// yearLabel maps a 1-based projection year to its calendar label.
func yearLabel(baseYear, year int) int {
	return baseYear + year - 1
}
