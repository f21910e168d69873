package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const staffingFailureMessage = "Error optimizing schedule."

// viewStaffing renders the roster and the schedule optimization panel.
func (m Model) viewStaffing() string {
	header := m.theme.Subtitle.Render("Staff allocation and fatigue management.")

	roster := make([]string, 0, len(m.staff))
	for _, s := range m.staff {
		hours := m.theme.StatusOK.Render(fmt.Sprintf("%.0f hrs", s.HoursWorked))
		if s.Fatigued() {
			hours = m.theme.StatusError.Render(fmt.Sprintf("%.0f hrs", s.HoursWorked))
		}
		roster = append(roster, fmt.Sprintf("%s  %s · %s · prefers %s  %s",
			m.theme.Bold.Render(s.Name),
			string(s.Role),
			s.Department,
			string(s.ShiftPreference),
			hours,
		))
	}

	var panel string
	switch m.staffing.phase {
	case phaseLoading:
		panel = m.loadingLine("Calculating optimal coverage...")
	case phaseSuccess:
		panel = renderMarkdown(m.staffing.result, m.panelWidth())
	case phaseFailure:
		panel = m.failureLine(staffingFailureMessage)
	default:
		panel = m.theme.Faint.Render("Press Enter to run the optimization model.")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		lipgloss.JoinVertical(lipgloss.Left, roster...),
		"",
		m.theme.Bold.Render("AI Scheduler Assistant"),
		m.theme.Panel.Render(panel),
	)
}
