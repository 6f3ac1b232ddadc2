package tui

import "github.com/wealthify/fincalc/internal/domain"

// ConfigLoadedMsg is sent when the configuration file has been parsed.
type ConfigLoadedMsg struct {
	Config *domain.Configuration
}

// CalculationCompleteMsg is sent when a scenario calculation finishes.
type CalculationCompleteMsg struct {
	ScenarioName string
	Result       *domain.ScenarioResult
	Err          error
}

// ErrorMsg is sent when something fails outside a calculation.
type ErrorMsg struct {
	Err error
}
