package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// viewDashboard renders the overview: headline numbers computed from the
// loaded records, no AI involved.
func (m Model) viewDashboard() string {
	lowStock := 0
	for _, item := range m.inventory {
		if item.BelowReorderPoint() {
			lowStock++
		}
	}

	flaggedTotal := 0.0
	flaggedCount := 0
	for _, t := range m.transactions {
		if t.Flagged() {
			flaggedTotal += t.Amount
			flaggedCount++
		}
	}

	fatigued := 0
	for _, s := range m.staff {
		if s.Fatigued() {
			fatigued++
		}
	}

	cards := []string{
		m.statCard("Items below reorder point", fmt.Sprintf("%d", lowStock), lowStock > 0),
		m.statCard("Flagged ledger entries", fmt.Sprintf("%d ($%.0f)", flaggedCount, flaggedTotal), flaggedCount > 0),
		m.statCard("Staff over fatigue threshold", fmt.Sprintf("%d", fatigued), fatigued > 0),
	}

	intro := m.theme.Subtitle.Render("Hospital operations at a glance. Switch screens to run AI-assisted analysis.")
	return lipgloss.JoinVertical(lipgloss.Left,
		intro,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
	)
}

func (m Model) statCard(label, value string, warn bool) string {
	style := m.theme.StatusOK
	if warn {
		style = m.theme.StatusWarn
	}
	return m.theme.Panel.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Faint.Render(label),
		style.Render(value),
	))
}
