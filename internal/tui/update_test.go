package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthify/fincalc/internal/domain"
)

func loadedModel() Model {
	m := NewModel("scenarios.yaml", 2025)
	next, _ := m.Update(ConfigLoadedMsg{Config: &domain.Configuration{
		BaseYear: 2030,
		Scenarios: []domain.Scenario{
			{
				Name:       "Retirement SIP",
				Calculator: domain.CalculatorSIP,
				SIP: &domain.SIPInput{
					Contribution:      decimal.NewFromInt(5000),
					AnnualRatePercent: decimal.NewFromInt(12),
					Years:             5,
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
	}})
	return next.(Model)
}

func TestConfigLoadedAdoptsFileBaseYear(t *testing.T) {
	m := loadedModel()
	assert.False(t, m.loading)
	assert.Equal(t, 2030, m.baseYear)
	require.NotNil(t, m.config)
	assert.Len(t, m.config.Scenarios, 2)
}

func TestScenarioNavigationStaysInBounds(t *testing.T) {
	m := loadedModel()
	assert.Equal(t, 0, m.selectedIndex)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	assert.Equal(t, 0, m.selectedIndex)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	assert.Equal(t, 1, m.selectedIndex)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	assert.Equal(t, 1, m.selectedIndex)
}

func TestEnterStartsCalculation(t *testing.T) {
	m := loadedModel()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	assert.True(t, m.loading)
	assert.Contains(t, m.loadingMessage, "Retirement SIP")
	assert.NotNil(t, cmd)
}

func TestCalculationCompleteShowsResults(t *testing.T) {
	m := loadedModel()
	result := &domain.ScenarioResult{
		Name:       "Retirement SIP",
		Calculator: domain.CalculatorSIP,
		SIP: &domain.SIPResult{
			InvestedAmount:   60000,
			EstimatedReturns: 4047,
			TotalValue:       64047,
			YearlyData:       []domain.YearlyEntry{{Year: 1, Label: 2030, Invested: 60000, Value: 64047}},
		},
	}

	next, _ := m.Update(CalculationCompleteMsg{ScenarioName: "Retirement SIP", Result: result})
	m = next.(Model)

	assert.Equal(t, SceneResults, m.currentScene)
	assert.Equal(t, result, m.selectedResult)
	require.Len(t, m.resultsTable.Rows(), 1)
	assert.Equal(t, "2030", m.resultsTable.Rows()[0][1])
}

func TestCalculationErrorReturnsToScenarioList(t *testing.T) {
	m := loadedModel()
	next, _ := m.Update(CalculationCompleteMsg{ScenarioName: "Broken", Err: errors.New("boom")})
	m = next.(Model)

	assert.Equal(t, SceneScenarios, m.currentScene)
	assert.EqualError(t, m.err, "boom")
}

func TestEscReturnsFromResults(t *testing.T) {
	m := loadedModel()
	m.currentScene = SceneResults

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	assert.Equal(t, SceneScenarios, m.currentScene)
}

func TestQuitKeys(t *testing.T) {
	m := loadedModel()
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		_, cmd := m.Update(key)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestWindowSizeStored(t *testing.T) {
	m := loadedModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}
