package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/wealthify/fincalc/internal/domain"
	"github.com/wealthify/fincalc/pkg/money"
)

var decimalOne = decimal.NewFromInt(1)

// annuityDueFV is the future value of n periodic contributions of c at
// periodic rate r, each invested at period start. A zero rate degenerates the
// closed form (r in the denominator), so it takes the linear branch instead
// of dividing by zero.
func annuityDueFV(c, r decimal.Decimal, n int64) decimal.Decimal {
	periods := decimal.NewFromInt(n)
	if r.IsZero() {
		return c.Mul(periods)
	}
	growth := decimalOne.Add(r)
	return c.Mul(growth.Pow(periods).Sub(decimalOne)).Div(r).Mul(growth)
}

// ComputeSIP projects a systematic investment plan. The yearly breakdown
// recomputes the closed form at each year boundary rather than accumulating
// incrementally, so every row is a pure function of the year index.
func ComputeSIP(in domain.SIPInput) (*domain.SIPResult, error) {
	if in.Frequency == "" {
		in.Frequency = domain.FrequencyMonthly
	}
	if err := requireFrequency(in.Frequency); err != nil {
		return nil, err
	}
	if err := requireYears(in.Years, "years"); err != nil {
		return nil, err
	}
	if err := requireNonNegative(in.Contribution, "contribution"); err != nil {
		return nil, err
	}
	if err := requireNonNegative(in.AnnualRatePercent, "annual rate"); err != nil {
		return nil, err
	}

	ppy := in.Frequency.PeriodsPerYear()
	rate := money.PeriodicRate(in.AnnualRatePercent, ppy)

	yearly := make([]domain.YearlyEntry, 0, in.Years)
	for year := 1; year <= in.Years; year++ {
		periodsToDate := int64(year * ppy)
		invested := in.Contribution.Mul(decimal.NewFromInt(periodsToDate))
		yearly = append(yearly, domain.YearlyEntry{
			Year:     year,
			Label:    yearLabel(in.BaseYear, year),
			Invested: money.Unit(invested),
			Value:    money.Unit(annuityDueFV(in.Contribution, rate, periodsToDate)),
		})
	}

	totalPeriods := int64(in.Years * ppy)
	invested := money.Unit(in.Contribution.Mul(decimal.NewFromInt(totalPeriods)))
	total := money.Unit(annuityDueFV(in.Contribution, rate, totalPeriods))

	return &domain.SIPResult{
		InvestedAmount:   invested,
		EstimatedReturns: total - invested,
		TotalValue:       total,
		YearlyData:       yearly,
	}, nil
}
