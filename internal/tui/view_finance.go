package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const financeFailureMessage = "Error occurred while communicating with the AI service."

// viewFinance renders the general ledger and the anomaly analysis panel.
func (m Model) viewFinance() string {
	header := m.theme.Subtitle.Render("Ledger monitoring and anomaly detection.")

	var panel string
	switch m.finance.phase {
	case phaseLoading:
		panel = m.loadingLine("Scanning flagged entries for cost spikes...")
	case phaseSuccess:
		panel = renderMarkdown(m.finance.result, m.panelWidth())
	case phaseFailure:
		panel = m.failureLine(financeFailureMessage)
	default:
		panel = m.theme.Faint.Render("Press Enter to trigger deep analysis on flagged items.")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.finance.table.View(),
		"",
		m.theme.Bold.Render("AI Audit Log"),
		m.theme.Panel.Render(panel),
	)
}
