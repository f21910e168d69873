package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/medicore-hq/medicore/internal/model"
)

// View renders the whole dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.view {
	case ViewFinance:
		body = m.viewFinance()
	case ViewInventory:
		body = m.viewInventory()
	case ViewStaffing:
		body = m.viewStaffing()
	case ViewClinical:
		body = m.viewClinical()
	default:
		body = m.viewDashboard()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.theme.Box.Render(body),
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	tabs := make([]string, 0, viewCount)
	for v := View(0); v < viewCount; v++ {
		if v == m.view {
			tabs = append(tabs, m.theme.TabActive.Render(v.title()))
		} else {
			tabs = append(tabs, m.theme.TabInactive.Render(v.title()))
		}
	}
	title := m.theme.Title.Render(" MediCore ERP ")
	return lipgloss.JoinHorizontal(lipgloss.Center, title, strings.Join(tabs, ""))
}

func (m Model) renderFooter() string {
	hints := []string{"Tab: switch screen", "q: quit"}
	switch m.view {
	case ViewFinance:
		hints = append([]string{"Enter: scan for anomalies"}, hints...)
	case ViewInventory:
		hints = append([]string{"↑/↓: select item", "Enter: AI forecast"}, hints...)
	case ViewStaffing:
		hints = append([]string{"Enter: run optimization"}, hints...)
	case ViewClinical:
		hints = append([]string{"Ctrl+G: generate", "Ctrl+T: toggle format"}, hints...)
	}
	return m.theme.Faint.Render(" " + strings.Join(hints, " · "))
}

func (m Model) loadingLine(text string) string {
	return m.spin.View() + " " + m.theme.Subtitle.Render(text)
}

func (m Model) failureLine(text string) string {
	return m.theme.StatusError.Render(text)
}

func (m Model) riskStyle(risk model.RiskLevel) lipgloss.Style {
	switch risk {
	case model.RiskLow:
		return m.theme.RiskLow
	case model.RiskMedium:
		return m.theme.RiskMedium
	case model.RiskHigh, model.RiskCritical:
		return m.theme.RiskHigh
	default:
		return m.theme.Faint
	}
}

func (m Model) panelWidth() int {
	if m.width <= 0 {
		return 80
	}
	w := m.width - 6
	if w < 40 {
		w = 40
	}
	return w
}
