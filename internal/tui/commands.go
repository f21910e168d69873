package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/medicore-hq/medicore/internal/model"
	"github.com/medicore-hq/medicore/internal/prompt"
)

// invocationTimeout bounds one provider round trip. There is no
// cancellation of an in-flight call when a newer one starts; the stale
// result is simply discarded by its sequence tag.
const invocationTimeout = 60 * time.Second

func (m Model) runForecast(item model.InventoryItem, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), invocationTimeout)
		defer cancel()

		result, err := m.advisor.ForecastInventory(ctx, item)
		return forecastResultMsg{seq: seq, result: result, err: err}
	}
}

func (m Model) runAnalysis(seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), invocationTimeout)
		defer cancel()

		text, err := m.advisor.AnalyzeAnomaly(ctx, m.transactions, anomalyAccountID, anomalyThreshold)
		return analysisResultMsg{seq: seq, text: text, err: err}
	}
}

func (m Model) runSchedule(seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), invocationTimeout)
		defer cancel()

		text, err := m.advisor.OptimizeSchedule(ctx, m.staff)
		return scheduleResultMsg{seq: seq, text: text, err: err}
	}
}

func (m Model) runClinical(rawNotes string, docType prompt.DocType, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), invocationTimeout)
		defer cancel()

		text, err := m.advisor.StructureNotes(ctx, rawNotes, docType)
		return clinicalResultMsg{seq: seq, text: text, err: err}
	}
}
