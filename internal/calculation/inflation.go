package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/wealthify/fincalc/internal/domain"
	"github.com/wealthify/fincalc/pkg/money"
)

// ComputeInflation projects what today's amount will cost after each year of
// inflation. Every row carries both the constant present amount and that
// year's inflated value; the impact is the gap at the horizon.
func ComputeInflation(in domain.InflationInput) (*domain.InflationResult, error) {
	if err := requireYears(in.Years, "years"); err != nil {
		return nil, err
	}
	if err := requireNonNegative(in.Amount, "amount"); err != nil {
		return nil, err
	}
	if err := requireNonNegative(in.AnnualRatePercent, "annual rate"); err != nil {
		return nil, err
	}

	growth := decimalOne.Add(money.PercentToFraction(in.AnnualRatePercent))
	present := money.Unit(in.Amount)

	yearly := make([]domain.YearlyEntry, 0, in.Years)
	for year := 1; year <= in.Years; year++ {
		inflated := in.Amount.Mul(growth.Pow(decimal.NewFromInt(int64(year))))
		yearly = append(yearly, domain.YearlyEntry{
			Year:     year,
			Label:    yearLabel(in.BaseYear, year),
			Invested: present,
			Value:    money.Unit(inflated),
		})
	}

	future := money.Unit(in.Amount.Mul(growth.Pow(decimal.NewFromInt(int64(in.Years)))))
	return &domain.InflationResult{
		PresentAmount:   present,
		FutureValue:     future,
		InflationImpact: future - present,
		YearlyData:      yearly,
	}, nil
}
