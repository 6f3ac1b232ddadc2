package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthify/fincalc/internal/domain"
)

const validConfigYAML = `
baseYear: 2025
scenarios:
  - name: "Retirement SIP"
    calculator: sip
    sip:
      contribution: 5000
      annualRatePercent: 12
      years: 10
      frequency: monthly
  - name: "Home Loan"
    calculator: emi
    emi:
      principal: 1000000
      annualRatePercent: 8.5
      tenureYears: 20
  - name: "Pension Drawdown"
    calculator: swp
    swp:
      initialInvestment: 1000000
      monthlyWithdrawal: 8000
      annualRatePercent: 8
      years: 15
`

func TestLoadValidConfiguration(t *testing.T) {
	parser := NewInputParser()
	cfg, err := parser.Load([]byte(validConfigYAML))
	require.NoError(t, err)

	assert.Equal(t, 2025, cfg.BaseYear)
	require.Len(t, cfg.Scenarios, 3)

	sip := cfg.Scenarios[0]
	assert.Equal(t, "Retirement SIP", sip.Name)
	assert.Equal(t, domain.CalculatorSIP, sip.Calculator)
	require.NotNil(t, sip.SIP)
	assert.Equal(t, "5000", sip.SIP.Contribution.String())
	assert.Equal(t, domain.FrequencyMonthly, sip.SIP.Frequency)

	emi := cfg.Scenarios[1]
	require.NotNil(t, emi.EMI)
	assert.Equal(t, 20, emi.EMI.TenureYears)
	assert.Equal(t, "8.5", emi.EMI.AnnualRatePercent.String())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validConfigYAML), 0o644))

	parser := NewInputParser()
	cfg, err := parser.LoadFromFile(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Scenarios, 3)
}

func TestLoadFromFileMissing(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.Load([]byte("scenarios: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadDefaultsEmptyFrequencyToMonthly(t *testing.T) {
	parser := NewInputParser()
	cfg, err := parser.Load([]byte(`
baseYear: 2025
scenarios:
  - name: "No frequency"
    calculator: sip
    sip:
      contribution: 1000
      annualRatePercent: 10
      years: 5
      frequency: ""
`))
	require.NoError(t, err)
	assert.Equal(t, domain.FrequencyMonthly, cfg.Scenarios[0].SIP.Frequency)
}

func TestLoadRejectsUnknownFrequency(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.Load([]byte(`
baseYear: 2025
scenarios:
  - name: "Odd cadence"
    calculator: sip
    sip:
      contribution: 1000
      annualRatePercent: 10
      years: 5
      frequency: fortnightly
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown frequency")
}

func TestValidateConfigurationFailures(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "no scenarios",
			yaml:    "baseYear: 2025\nscenarios: []\n",
			wantErr: "no scenarios provided",
		},
		{
			name: "missing name",
			yaml: `
baseYear: 2025
scenarios:
  - calculator: sip
    sip: {contribution: 1000, annualRatePercent: 10, years: 5}
`,
			wantErr: "name is required",
		},
		{
			name: "unknown calculator",
			yaml: `
baseYear: 2025
scenarios:
  - name: "Mystery"
    calculator: cagr
    sip: {contribution: 1000, annualRatePercent: 10, years: 5}
`,
			wantErr: "unknown calculator",
		},
		{
			name: "no parameter block",
			yaml: `
baseYear: 2025
scenarios:
  - name: "Empty"
    calculator: sip
`,
			wantErr: "exactly one parameter block",
		},
		{
			name: "two parameter blocks",
			yaml: `
baseYear: 2025
scenarios:
  - name: "Double"
    calculator: sip
    sip: {contribution: 1000, annualRatePercent: 10, years: 5}
    emi: {principal: 1000, annualRatePercent: 8, tenureYears: 5}
`,
			wantErr: "exactly one parameter block",
		},
		{
			name: "block does not match calculator",
			yaml: `
baseYear: 2025
scenarios:
  - name: "Mismatched"
    calculator: sip
    emi: {principal: 1000, annualRatePercent: 8, tenureYears: 5}
`,
			wantErr: "sip parameters are required",
		},
		{
			name: "duplicate scenario names",
			yaml: `
baseYear: 2025
scenarios:
  - name: "Twin"
    calculator: sip
    sip: {contribution: 1000, annualRatePercent: 10, years: 5}
  - name: "Twin"
    calculator: lumpsum
    lumpsum: {amount: 1000, annualRatePercent: 10, years: 5}
`,
			wantErr: "duplicate scenario name",
		},
		{
			name: "negative amount",
			yaml: `
baseYear: 2025
scenarios:
  - name: "Negative"
    calculator: lumpsum
    lumpsum: {amount: -1000, annualRatePercent: 10, years: 5}
`,
			wantErr: "amount must not be negative",
		},
		{
			name: "negative rate",
			yaml: `
baseYear: 2025
scenarios:
  - name: "Deflation"
    calculator: inflation
    inflation: {amount: 1000, annualRatePercent: -2, years: 5}
`,
			wantErr: "annual rate must not be negative",
		},
		{
			name: "zero horizon",
			yaml: `
baseYear: 2025
scenarios:
  - name: "Instant"
    calculator: sip
    sip: {contribution: 1000, annualRatePercent: 10, years: 0}
`,
			wantErr: "horizon must be a positive number of years",
		},
		{
			name: "negative withdrawal",
			yaml: `
baseYear: 2025
scenarios:
  - name: "Reverse SWP"
    calculator: swp
    swp: {initialInvestment: 1000, monthlyWithdrawal: -10, annualRatePercent: 8, years: 5}
`,
			wantErr: "monthly withdrawal must not be negative",
		},
		{
			name: "negative step-up",
			yaml: `
baseYear: 2025
scenarios:
  - name: "Shrinking TopUp"
    calculator: topup
    topup: {startContribution: 1000, annualIncreasePercent: -5, annualRatePercent: 10, years: 5}
`,
			wantErr: "annual increase must not be negative",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Load([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
