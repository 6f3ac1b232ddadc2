package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/wealthify/fincalc/internal/domain"
	"github.com/wealthify/fincalc/pkg/money"
)

// ComputeLumpsum projects a single upfront investment under simple annual
// compounding. The invested amount is constant; every row is the closed form
// evaluated at its year index.
func ComputeLumpsum(in domain.LumpsumInput) (*domain.LumpsumResult, error) {
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
	invested := money.Unit(in.Amount)

	yearly := make([]domain.YearlyEntry, 0, in.Years)
	for year := 1; year <= in.Years; year++ {
		value := in.Amount.Mul(growth.Pow(decimal.NewFromInt(int64(year))))
		yearly = append(yearly, domain.YearlyEntry{
			Year:     year,
			Label:    yearLabel(in.BaseYear, year),
			Invested: invested,
			Value:    money.Unit(value),
		})
	}

	total := money.Unit(in.Amount.Mul(growth.Pow(decimal.NewFromInt(int64(in.Years)))))
	return &domain.LumpsumResult{
		InvestedAmount:   invested,
		EstimatedReturns: total - invested,
		TotalValue:       total,
		YearlyData:       yearly,
	}, nil
}
