package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wealthify/fincalc/internal/domain"
	"github.com/wealthify/fincalc/pkg/money"
)

// Update handles all incoming messages (required by tea.Model interface).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case ConfigLoadedMsg:
		m.loading = false
		m.config = msg.Config
		if m.config.BaseYear > 0 {
			m.baseYear = m.config.BaseYear
		}
		return m, nil

	case CalculationCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			m.currentScene = SceneScenarios
			return m, nil
		}
		m.err = nil
		m.selectedResult = msg.Result
		m.resultsTable = buildResultsTable(msg.Result, m.height)
		m.currentScene = SceneResults
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc":
		if m.currentScene == SceneResults {
			m.currentScene = SceneScenarios
		}
		return m, nil
	}

	switch m.currentScene {
	case SceneScenarios:
		return m.handleScenariosKey(msg)
	case SceneResults:
		var cmd tea.Cmd
		m.resultsTable, cmd = m.resultsTable.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleScenariosKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.config == nil {
		return m, nil
	}
	switch msg.String() {
	case "up", "k":
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}
	case "down", "j":
		if m.selectedIndex < len(m.config.Scenarios)-1 {
			m.selectedIndex++
		}
	case "enter":
		sc := m.config.Scenarios[m.selectedIndex]
		m.loading = true
		m.loadingMessage = "Calculating " + sc.Name + "..."
		return m, tea.Batch(m.spin.Tick, calculateScenarioCmd(m.calcEngine, m.baseYear, sc))
	}
	return m, nil
}

// buildResultsTable converts a scenario result into a bubbles table of its
// yearly schedule.
func buildResultsTable(sr *domain.ScenarioResult, height int) table.Model {
	var columns []table.Column
	var rows []table.Row

	if sr.EMI != nil {
		columns = []table.Column{
			{Title: "Year", Width: 6},
			{Title: "Label", Width: 6},
			{Title: "Principal", Width: 14},
			{Title: "Interest", Width: 14},
			{Title: "Balance", Width: 14},
		}
		for _, e := range sr.EMI.Schedule {
			rows = append(rows, table.Row{
				intCell(e.Year), intCell(e.Label),
				money.Format(e.Principal), money.Format(e.Interest), money.Format(e.Balance),
			})
		}
	} else {
		columns = []table.Column{
			{Title: "Year", Width: 6},
			{Title: "Label", Width: 6},
			{Title: "Invested", Width: 14},
			{Title: "Value", Width: 14},
			{Title: "Withdrawn", Width: 14},
			{Title: "Balance", Width: 14},
		}
		for _, e := range sr.Yearly() {
			rows = append(rows, table.Row{
				intCell(e.Year), intCell(e.Label),
				money.Format(e.Invested), money.Format(e.Value),
				money.Format(e.Withdrawn), money.Format(e.Balance),
			})
		}
	}

	tableHeight := height - 10
	if tableHeight < 5 {
		tableHeight = 5
	}
	if tableHeight > len(rows)+1 {
		tableHeight = len(rows) + 1
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(tableHeight),
	)
	t.SetStyles(tableStyles())
	return t
}

func intCell(v int) string {
	return strconv.Itoa(v)
}
