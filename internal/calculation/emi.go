package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/wealthify/fincalc/internal/domain"
	"github.com/wealthify/fincalc/pkg/money"
)

// emiPayment is the standard amortizing-loan payment for principal p at
// monthly rate r over m months. A zero rate degenerates the formula, so the
// loan collapses to equal principal installments.
func emiPayment(p, r decimal.Decimal, m int64) decimal.Decimal {
	months := decimal.NewFromInt(m)
	if r.IsZero() {
		return p.Div(months)
	}
	compounded := decimalOne.Add(r).Pow(months)
	return p.Mul(r).Mul(compounded).Div(compounded.Sub(decimalOne))
}

// ComputeEMI projects an amortizing loan. The reported EMI is rounded to a
// whole unit and the totals are derived from that rounded figure, matching
// what a borrower reconciles against a payment schedule.
func ComputeEMI(in domain.EMIInput) (*domain.EMIResult, error) {
	if err := requireYears(in.TenureYears, "tenure"); err != nil {
		return nil, err
	}
	if err := requireNonNegative(in.Principal, "principal"); err != nil {
		return nil, err
	}
	if err := requireNonNegative(in.AnnualRatePercent, "annual rate"); err != nil {
		return nil, err
	}

	months := int64(in.TenureYears) * 12
	rate := money.PeriodicRate(in.AnnualRatePercent, 12)
	emi := money.Unit(emiPayment(in.Principal, rate, months))
	totalPayment := emi * months

	schedule, err := ComputeAmortizationSchedule(in)
	if err != nil {
		return nil, err
	}

	return &domain.EMIResult{
		EMI:           emi,
		TotalInterest: totalPayment - money.Unit(in.Principal),
		TotalPayment:  totalPayment,
		Schedule:      schedule,
	}, nil
}

// ComputeAmortizationSchedule decomposes each monthly payment into principal
// and interest and aggregates the twelve months of each year into one entry.
// The simulation uses the exact (unrounded) payment; rounding happens only
// when a year's sums are reported.
func ComputeAmortizationSchedule(in domain.EMIInput) ([]domain.AmortizationEntry, error) {
	if err := requireYears(in.TenureYears, "tenure"); err != nil {
		return nil, err
	}
	if err := requireNonNegative(in.Principal, "principal"); err != nil {
		return nil, err
	}
	if err := requireNonNegative(in.AnnualRatePercent, "annual rate"); err != nil {
		return nil, err
	}

	rate := money.PeriodicRate(in.AnnualRatePercent, 12)
	payment := emiPayment(in.Principal, rate, int64(in.TenureYears)*12)

	balance := in.Principal
	schedule := make([]domain.AmortizationEntry, 0, in.TenureYears)
	for year := 1; year <= in.TenureYears; year++ {
		principalPaid := decimal.Zero
		interestPaid := decimal.Zero
		for month := 0; month < 12; month++ {
			interest := balance.Mul(rate)
			principal := payment.Sub(interest)
			interestPaid = interestPaid.Add(interest)
			principalPaid = principalPaid.Add(principal)
			balance = balance.Sub(principal)
		}
		if balance.IsNegative() {
			balance = decimal.Zero
		}
		schedule = append(schedule, domain.AmortizationEntry{
			Year:      year,
			Label:     yearLabel(in.BaseYear, year),
			Principal: money.Unit(principalPaid),
			Interest:  money.Unit(interestPaid),
			Balance:   money.Unit(balance),
		})
	}
	return schedule, nil
}
