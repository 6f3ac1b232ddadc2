package calculation

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthify/fincalc/internal/domain"
)

type captureLogger struct {
	lines []string
}

func (cl *captureLogger) Debugf(format string, args ...interface{}) {
	cl.lines = append(cl.lines, fmt.Sprintf(format, args...))
}
func (cl *captureLogger) Infof(format string, args ...interface{})  {}
func (cl *captureLogger) Warnf(format string, args ...interface{})  {}
func (cl *captureLogger) Errorf(format string, args ...interface{}) {}

func testConfiguration() *domain.Configuration {
	return &domain.Configuration{
		BaseYear: 2025,
		Scenarios: []domain.Scenario{
			{
				Name:       "Retirement SIP",
				Calculator: domain.CalculatorSIP,
				SIP: &domain.SIPInput{
					Contribution:      decimal.NewFromInt(5000),
					AnnualRatePercent: decimal.NewFromInt(12),
					Years:             1,
					Frequency:         domain.FrequencyMonthly,
				},
			},
			{
				Name:       "Home Loan",
				Calculator: domain.CalculatorEMI,
				EMI: &domain.EMIInput{
					Principal:         decimal.NewFromInt(1000000),
					AnnualRatePercent: decimal.NewFromFloat(8.5),
					TenureYears:       20,
				},
			},
		},
	}
}

func TestRunScenariosComputesEveryScenario(t *testing.T) {
	engine := NewCalculationEngine()
	set, err := engine.RunScenarios(testConfiguration())
	require.NoError(t, err)

	assert.Equal(t, 2025, set.BaseYear)
	require.Len(t, set.Results, 2)

	require.NotNil(t, set.Results[0].SIP)
	assert.Equal(t, "Retirement SIP", set.Results[0].Name)
	assert.Equal(t, int64(64047), set.Results[0].SIP.TotalValue)

	require.NotNil(t, set.Results[1].EMI)
	assert.Equal(t, "Home Loan", set.Results[1].Name)
	assert.Equal(t, int64(8678), set.Results[1].EMI.EMI)
}

func TestRunScenariosDefaultsBaseYearIntoInputs(t *testing.T) {
	engine := NewCalculationEngine()
	set, err := engine.RunScenarios(testConfiguration())
	require.NoError(t, err)

	// Neither scenario set its own base year, so year labels follow the
	// configuration's.
	assert.Equal(t, 2025, set.Results[0].SIP.YearlyData[0].Label)
	assert.Equal(t, 2025, set.Results[1].EMI.Schedule[0].Label)
}

func TestRunScenarioKeepsExplicitBaseYear(t *testing.T) {
	engine := NewCalculationEngine()
	result, err := engine.RunScenario(2025, &domain.Scenario{
		Name:       "Backdated",
		Calculator: domain.CalculatorLumpsum,
		Lumpsum: &domain.LumpsumInput{
			Amount:            decimal.NewFromInt(10000),
			AnnualRatePercent: decimal.NewFromInt(8),
			Years:             2,
			BaseYear:          2020,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2020, result.Lumpsum.YearlyData[0].Label)
}

func TestRunScenariosAbortsOnFirstFailure(t *testing.T) {
	cfg := testConfiguration()
	cfg.Scenarios[0].SIP.Years = -1

	engine := NewCalculationEngine()
	set, err := engine.RunScenarios(cfg)
	assert.Nil(t, set)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "Retirement SIP")
}

func TestRunScenariosRejectsBadConfiguration(t *testing.T) {
	engine := NewCalculationEngine()

	tests := []struct {
		name string
		cfg  *domain.Configuration
	}{
		{"nil configuration", nil},
		{"zero base year", &domain.Configuration{Scenarios: testConfiguration().Scenarios}},
		{"no scenarios", &domain.Configuration{BaseYear: 2025}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.RunScenarios(tt.cfg)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestRunScenarioRejectsMissingParameterBlock(t *testing.T) {
	engine := NewCalculationEngine()
	for _, kind := range domain.KnownCalculators {
		t.Run(string(kind), func(t *testing.T) {
			_, err := engine.RunScenario(2025, &domain.Scenario{Name: "empty", Calculator: kind})
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestRunScenarioRejectsUnknownCalculator(t *testing.T) {
	engine := NewCalculationEngine()
	_, err := engine.RunScenario(2025, &domain.Scenario{Name: "mystery", Calculator: "cagr"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "cagr")
}

func TestSetLoggerRoutesScenarioLogs(t *testing.T) {
	logger := &captureLogger{}
	engine := NewCalculationEngine()
	engine.SetLogger(logger)

	_, err := engine.RunScenarios(testConfiguration())
	require.NoError(t, err)
	require.Len(t, logger.lines, 2)
	assert.Contains(t, logger.lines[0], "Retirement SIP")

	// A nil logger falls back to the nop default instead of panicking.
	engine.SetLogger(nil)
	_, err = engine.RunScenarios(testConfiguration())
	require.NoError(t, err)
}
