package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wealthify/fincalc/internal/calculation"
	"github.com/wealthify/fincalc/internal/config"
	"github.com/wealthify/fincalc/internal/domain"
)

// Scene identifies the active screen.
type Scene int

const (
	SceneScenarios Scene = iota
	SceneResults
)

func (s Scene) String() string {
	switch s {
	case SceneScenarios:
		return "Scenarios"
	case SceneResults:
		return "Results"
	default:
		return "Unknown"
	}
}

// Model represents the entire application state.
type Model struct {
	currentScene Scene

	width  int
	height int

	configPath string
	baseYear   int
	config     *domain.Configuration

	calcEngine *calculation.CalculationEngine

	selectedIndex  int
	selectedResult *domain.ScenarioResult

	resultsTable table.Model
	spin         spinner.Model

	loading        bool
	loadingMessage string
	err            error
}

// NewModel creates a new application model.
func NewModel(configPath string, baseYear int) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		currentScene:   SceneScenarios,
		configPath:     configPath,
		baseYear:       baseYear,
		calcEngine:     calculation.NewCalculationEngine(),
		spin:           sp,
		loading:        true,
		loadingMessage: "Loading configuration...",
		width:          80,
		height:         24,
	}
}

// Init initializes the model (required by tea.Model interface).
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, loadConfigCmd(m.configPath))
}

// loadConfigCmd returns a command that loads the configuration file.
func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ConfigLoadedMsg{Config: cfg}
	}
}

// calculateScenarioCmd returns a command that runs a single scenario.
func calculateScenarioCmd(engine *calculation.CalculationEngine, baseYear int, sc domain.Scenario) tea.Cmd {
	return func() tea.Msg {
		result, err := engine.RunScenario(baseYear, &sc)
		return CalculationCompleteMsg{
			ScenarioName: sc.Name,
			Result:       result,
			Err:          err,
		}
	}
}
