package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestUnitRoundsHalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"1.4", 1},
		{"1.5", 2},
		{"2.5", 3},
		{"-1.5", -2},
		{"-2.4", -2},
		{"64046.64", 64047},
		{"8678.23", 8678},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.in)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, Unit(d))
		})
	}
}

func TestPercentToFraction(t *testing.T) {
	assert.Equal(t, "0.125", PercentToFraction(decimal.NewFromFloat(12.5)).String())
	assert.Equal(t, "0", PercentToFraction(decimal.Zero).String())
}

func TestPeriodicRate(t *testing.T) {
	assert.Equal(t, "0.01", PeriodicRate(decimal.NewFromInt(12), 12).String())
	assert.Equal(t, "0.02", PeriodicRate(decimal.NewFromInt(8), 4).String())
}

func TestFormatGroupsThousands(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{64047, "64,047"},
		{1234567, "1,234,567"},
		{1000000000, "1,000,000,000"},
		{-1234567, "-1,234,567"},
		{-42, "-42"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.in), "input %d", tt.in)
	}
}
