package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const inventoryFailureMessage = "Failed to generate AI forecast."

// viewInventory renders the stock list and the demand intelligence panel.
func (m Model) viewInventory() string {
	header := m.theme.Subtitle.Render("AI-driven demand forecasting and reorder recommendations.")

	var panel string
	switch m.stock.phase {
	case phaseLoading:
		panel = m.loadingLine("Analyzing historical usage patterns...")
	case phaseSuccess:
		result := m.stock.result
		panel = lipgloss.JoinVertical(lipgloss.Left,
			m.theme.Faint.Render("Analysis for"),
			m.theme.Bold.Render(m.stock.item.Name),
			"",
			m.theme.Faint.Render("Stockout risk"),
			m.riskStyle(result.Risk).Render(string(result.Risk)),
			"",
			m.theme.Normal.Render(fmt.Sprintf("Order %d %s immediately.", result.Quantity, m.stock.item.Unit)),
			"",
			m.theme.Faint.Render("Reasoning"),
			m.theme.Normal.Width(m.panelWidth()).Render(result.Reasoning),
		)
	case phaseFailure:
		panel = m.failureLine(inventoryFailureMessage)
	default:
		panel = m.theme.Faint.Render("Select an item and press Enter to run AI prediction.")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.stock.table.View(),
		"",
		m.theme.Bold.Render("Demand Intelligence"),
		m.theme.Panel.Render(panel),
	)
}
