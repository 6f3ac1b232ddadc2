package tui

import (
	"fmt"
	"strings"

	"github.com/wealthify/fincalc/internal/domain"
	"github.com/wealthify/fincalc/pkg/money"
)

// View renders the current scene (required by tea.Model interface).
func (m Model) View() string {
	if m.loading {
		return fmt.Sprintf("\n  %s %s\n", m.spin.View(), m.loadingMessage)
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("fincalc — financial projections"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(ErrorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
	}

	switch m.currentScene {
	case SceneScenarios:
		b.WriteString(m.viewScenarios())
	case SceneResults:
		b.WriteString(m.viewResults())
	}
	return b.String()
}

func (m Model) viewScenarios() string {
	var b strings.Builder
	if m.config == nil {
		b.WriteString(SubtitleStyle.Render("No configuration loaded."))
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("q: quit"))
		return b.String()
	}

	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("%d scenario(s), base year %d", len(m.config.Scenarios), m.baseYear)))
	b.WriteString("\n\n")

	for i, sc := range m.config.Scenarios {
		line := fmt.Sprintf("  %s [%s]", sc.Name, sc.Calculator)
		if i == m.selectedIndex {
			line = SelectedItemStyle.Render("> " + line[2:])
		} else {
			line = UnselectedItemStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render("up/down: select  enter: calculate  q: quit"))
	return b.String()
}

func (m Model) viewResults() string {
	var b strings.Builder
	sr := m.selectedResult
	if sr == nil {
		return SubtitleStyle.Render("No result selected.")
	}

	b.WriteString(SubtitleStyle.Render(fmt.Sprintf("%s [%s]", sr.Name, sr.Calculator)))
	b.WriteString("\n\n")

	invested, gain, total := sr.Totals()
	labels := summaryLabels(sr)
	for _, metric := range []struct {
		label string
		value int64
	}{
		{labels[0], invested},
		{labels[1], gain},
		{labels[2], total},
	} {
		b.WriteString(MetricLabelStyle.Render(metric.label))
		b.WriteString(MetricValueStyle.Render(money.Format(metric.value)))
		b.WriteString("\n")
	}
	if sr.EMI != nil {
		b.WriteString(MetricLabelStyle.Render("Monthly EMI"))
		b.WriteString(MetricValueStyle.Render(money.Format(sr.EMI.EMI)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.resultsTable.View())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("up/down: scroll  esc: back  q: quit"))
	return b.String()
}

func summaryLabels(sr *domain.ScenarioResult) [3]string {
	switch {
	case sr.EMI != nil:
		return [3]string{"Principal", "Total Interest", "Total Payment"}
	case sr.SWP != nil:
		return [3]string{"Corpus Used", "Total Withdrawn", "Final Balance"}
	case sr.Inflation != nil:
		return [3]string{"Present Amount", "Inflation Impact", "Future Value"}
	default:
		return [3]string{"Invested", "Est. Returns", "Total Value"}
	}
}
