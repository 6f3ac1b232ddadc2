package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/wealthify/fincalc/internal/domain"
	"github.com/wealthify/fincalc/pkg/money"
)

var decimalTwelve = decimal.NewFromInt(12)

// ComputeSWP simulates a systematic withdrawal plan month by month. Growth is
// applied before each withdrawal. When the balance cannot cover a withdrawal
// it is floored at zero and the plan stops; the terminal month still counts
// the full nominal withdrawal in the running totals. The yearly series ends
// at depletion, so it may hold fewer rows than the requested horizon.
func ComputeSWP(in domain.SWPInput) (*domain.SWPResult, error) {
	if err := requireYears(in.Years, "years"); err != nil {
		return nil, err
	}
	if err := requireNonNegative(in.InitialInvestment, "initial investment"); err != nil {
		return nil, err
	}
	if err := requireNonNegative(in.MonthlyWithdrawal, "monthly withdrawal"); err != nil {
		return nil, err
	}
	if err := requireNonNegative(in.AnnualRatePercent, "annual rate"); err != nil {
		return nil, err
	}

	rate := money.PeriodicRate(in.AnnualRatePercent, 12)
	growth := decimalOne.Add(rate)

	balance := in.InitialInvestment
	totalWithdrawn := decimal.Zero
	yearly := make([]domain.YearlyEntry, 0, in.Years)

	for year := 1; year <= in.Years; year++ {
		withdrawnThisYear := decimal.Zero
		for month := 0; month < 12; month++ {
			balance = balance.Mul(growth)
			balance = balance.Sub(in.MonthlyWithdrawal)
			withdrawnThisYear = withdrawnThisYear.Add(in.MonthlyWithdrawal)
			totalWithdrawn = totalWithdrawn.Add(in.MonthlyWithdrawal)
			if !balance.IsPositive() {
				balance = decimal.Zero
				break
			}
		}
		yearly = append(yearly, domain.YearlyEntry{
			Year:      year,
			Label:     yearLabel(in.BaseYear, year),
			Withdrawn: money.Unit(withdrawnThisYear),
			Balance:   money.Unit(balance),
		})
		if balance.IsZero() {
			break
		}
	}

	return &domain.SWPResult{
		FinalBalance:     money.Unit(balance),
		TotalWithdrawal:  money.Unit(totalWithdrawn),
		YearlyWithdrawal: money.Unit(in.MonthlyWithdrawal.Mul(decimalTwelve)),
		YearlyData:       yearly,
	}, nil
}
