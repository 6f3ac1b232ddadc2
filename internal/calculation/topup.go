package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/wealthify/fincalc/internal/domain"
	"github.com/wealthify/fincalc/pkg/money"
)

// ComputeSIPTopUp projects a SIP whose contribution steps up once per year.
// Unlike the plain SIP there is no closed form here: the accumulator carries
// across periods, each contribution enters at period start and compounds
// through the remainder of its period, and the step-up applies at the end of
// every year except the last. Per-year rows therefore depend on the state
// left by prior years.
func ComputeSIPTopUp(in domain.TopUpInput) (*domain.SIPResult, error) {
	if in.Frequency == "" {
		in.Frequency = domain.FrequencyMonthly
	}
	if err := requireFrequency(in.Frequency); err != nil {
		return nil, err
	}
	if err := requireYears(in.Years, "years"); err != nil {
		return nil, err
	}
	if err := requireNonNegative(in.StartContribution, "contribution"); err != nil {
		return nil, err
	}
	if err := requireNonNegative(in.AnnualIncreasePercent, "annual increase"); err != nil {
		return nil, err
	}
	if err := requireNonNegative(in.AnnualRatePercent, "annual rate"); err != nil {
		return nil, err
	}

	ppy := in.Frequency.PeriodsPerYear()
	growth := decimalOne.Add(money.PeriodicRate(in.AnnualRatePercent, ppy))
	stepUp := decimalOne.Add(money.PercentToFraction(in.AnnualIncreasePercent))
	periodsPerYear := decimal.NewFromInt(int64(ppy))

	contribution := in.StartContribution
	futureValue := decimal.Zero
	invested := decimal.Zero
	yearly := make([]domain.YearlyEntry, 0, in.Years)

	for year := 1; year <= in.Years; year++ {
		for period := 0; period < ppy; period++ {
			futureValue = futureValue.Add(contribution).Mul(growth)
		}
		invested = invested.Add(contribution.Mul(periodsPerYear))
		yearly = append(yearly, domain.YearlyEntry{
			Year:     year,
			Label:    yearLabel(in.BaseYear, year),
			Invested: money.Unit(invested),
			Value:    money.Unit(futureValue),
		})
		if year != in.Years {
			contribution = contribution.Mul(stepUp)
		}
	}

	total := money.Unit(futureValue)
	investedTotal := money.Unit(invested)
	return &domain.SIPResult{
		InvestedAmount:   investedTotal,
		EstimatedReturns: total - investedTotal,
		TotalValue:       total,
		YearlyData:       yearly,
	}, nil
}
