package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/medicore-hq/medicore/internal/prompt"
)

const clinicalFailureMessage = "Error processing documentation."

// viewClinical renders the raw notes editor and the structured document
// panel.
func (m Model) viewClinical() string {
	format := "SOAP Note"
	if m.clinical.docType == prompt.DocDischargeSummary {
		format = "Discharge Summary"
	}

	header := m.theme.Subtitle.Render("Convert raw clinical notes into structured documentation.")
	formatLine := m.theme.Faint.Render("Output format: ") + m.theme.Bold.Render(format)

	generateHint := "Ctrl+G to generate."
	if !m.clinicalReady() {
		generateHint = "Enter notes to enable generation."
	}

	var panel string
	switch m.clinical.phase {
	case phaseLoading:
		panel = m.loadingLine("Structuring clinical notes...")
	case phaseSuccess:
		panel = renderMarkdown(m.clinical.result, m.panelWidth())
	case phaseFailure:
		panel = m.failureLine(clinicalFailureMessage)
	default:
		panel = m.theme.Faint.Render(generateHint)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		formatLine,
		"",
		m.clinical.notes.View(),
		"",
		m.theme.Bold.Render("Structured Document"),
		m.theme.Panel.Render(panel),
	)
}
