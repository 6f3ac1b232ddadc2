// Package money holds the rounding and formatting rules shared by every
// projection: amounts are carried as decimals during computation and reported
// as whole currency units, rounded half away from zero exactly once.
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Unit rounds a decimal amount to the nearest whole currency unit.
func Unit(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// PercentToFraction converts an annual percentage (12.5 means 12.5%) to a
// plain fraction.
func PercentToFraction(p decimal.Decimal) decimal.Decimal {
	return p.Div(hundred)
}

// PeriodicRate converts an annual percentage to the per-period fraction for
// the given number of periods per year.
func PeriodicRate(annualPercent decimal.Decimal, periods int) decimal.Decimal {
	return annualPercent.Div(decimal.NewFromInt(int64(periods))).Div(hundred)
}

// Format renders a whole-unit amount with thousands grouping, e.g. 1234567
// becomes "1,234,567". Locale-specific grouping is a presentation concern;
// this is the plain western grouping used by the reports.
func Format(v int64) string {
	s := strconv.FormatInt(v, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
