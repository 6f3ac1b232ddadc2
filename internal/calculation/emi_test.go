package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthify/fincalc/internal/domain"
)

func TestComputeEMIHomeLoan(t *testing.T) {
	result, err := ComputeEMI(domain.EMIInput{
		Principal:         decimal.NewFromInt(1000000),
		AnnualRatePercent: decimal.NewFromFloat(8.5),
		TenureYears:       20,
		BaseYear:          2025,
	})
	require.NoError(t, err)

	// P*r*(1+r)^m / ((1+r)^m - 1) with r = 8.5/12/100 and m = 240.
	assert.Equal(t, int64(8678), result.EMI)
	assert.Equal(t, int64(2082720), result.TotalPayment)
	assert.Equal(t, int64(1082720), result.TotalInterest)
	assert.Len(t, result.Schedule, 20)
}

func TestComputeEMIZeroRateEqualInstallments(t *testing.T) {
	result, err := ComputeEMI(domain.EMIInput{
		Principal:         decimal.NewFromInt(1200000),
		AnnualRatePercent: decimal.Zero,
		TenureYears:       10,
		BaseYear:          2025,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(10000), result.EMI)
	assert.Equal(t, int64(1200000), result.TotalPayment)
	assert.Equal(t, int64(0), result.TotalInterest)

	for _, entry := range result.Schedule {
		assert.Equal(t, int64(120000), entry.Principal)
		assert.Equal(t, int64(0), entry.Interest)
	}
	assert.Equal(t, int64(0), result.Schedule[9].Balance)
}

func TestAmortizationSchedulePrincipalSumsToLoan(t *testing.T) {
	tests := []struct {
		name      string
		principal int64
		rate      float64
		tenure    int
	}{
		{"home loan", 1000000, 8.5, 20},
		{"car loan", 600000, 9.25, 7},
		{"short personal loan", 150000, 14, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := domain.EMIInput{
				Principal:         decimal.NewFromInt(tt.principal),
				AnnualRatePercent: decimal.NewFromFloat(tt.rate),
				TenureYears:       tt.tenure,
				BaseYear:          2025,
			}
			schedule, err := ComputeAmortizationSchedule(in)
			require.NoError(t, err)
			require.Len(t, schedule, tt.tenure)

			var principalPaid, interestPaid int64
			for _, entry := range schedule {
				principalPaid += entry.Principal
				interestPaid += entry.Interest
			}
			// Within rounding of the per-year aggregation.
			assert.InDelta(t, tt.principal, principalPaid, float64(tt.tenure))

			result, err := ComputeEMI(in)
			require.NoError(t, err)
			assert.InDelta(t, result.TotalPayment, principalPaid+interestPaid, float64(12*tt.tenure))
		})
	}
}

func TestAmortizationScheduleBalanceDecreasesToZero(t *testing.T) {
	schedule, err := ComputeAmortizationSchedule(domain.EMIInput{
		Principal:         decimal.NewFromInt(500000),
		AnnualRatePercent: decimal.NewFromFloat(7.75),
		TenureYears:       15,
		BaseYear:          2025,
	})
	require.NoError(t, err)

	prev := int64(500000)
	for i, entry := range schedule {
		assert.Equal(t, i+1, entry.Year)
		assert.Equal(t, 2025+i, entry.Label)
		assert.Less(t, entry.Balance, prev, "year %d", entry.Year)
		prev = entry.Balance
	}
	assert.Equal(t, int64(0), schedule[len(schedule)-1].Balance)
}

func TestAmortizationInterestDeclinesOverTime(t *testing.T) {
	schedule, err := ComputeAmortizationSchedule(domain.EMIInput{
		Principal:         decimal.NewFromInt(2000000),
		AnnualRatePercent: decimal.NewFromInt(9),
		TenureYears:       25,
		BaseYear:          2025,
	})
	require.NoError(t, err)

	for i := 1; i < len(schedule); i++ {
		assert.Less(t, schedule[i].Interest, schedule[i-1].Interest, "year %d", i+1)
		assert.Greater(t, schedule[i].Principal, schedule[i-1].Principal, "year %d", i+1)
	}
}

func TestComputeEMIRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   domain.EMIInput
	}{
		{"zero tenure", domain.EMIInput{Principal: decimal.NewFromInt(1000), AnnualRatePercent: decimal.NewFromInt(8), TenureYears: 0}},
		{"negative principal", domain.EMIInput{Principal: decimal.NewFromInt(-1000), AnnualRatePercent: decimal.NewFromInt(8), TenureYears: 5}},
		{"negative rate", domain.EMIInput{Principal: decimal.NewFromInt(1000), AnnualRatePercent: decimal.NewFromInt(-8), TenureYears: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeEMI(tt.in)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestComputeEMIIdempotent(t *testing.T) {
	in := domain.EMIInput{
		Principal:         decimal.NewFromInt(3500000),
		AnnualRatePercent: decimal.NewFromFloat(8.35),
		TenureYears:       30,
		BaseYear:          2025,
	}
	first, err := ComputeEMI(in)
	require.NoError(t, err)
	second, err := ComputeEMI(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
