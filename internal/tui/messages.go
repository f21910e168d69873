package tui

import "github.com/medicore-hq/medicore/internal/model"

// Result messages carry the sequence number of the invocation that
// produced them. Update discards any message whose seq is not the
// screen's latest, so a slow early invocation can never overwrite the
// result of a later one.

// forecastResultMsg delivers an inventory forecast outcome.
type forecastResultMsg struct {
	err    error
	result model.ForecastResult
	seq    int
}

// analysisResultMsg delivers a financial anomaly analysis outcome.
type analysisResultMsg struct {
	err  error
	text string
	seq  int
}

// scheduleResultMsg delivers a staffing optimization outcome.
type scheduleResultMsg struct {
	err  error
	text string
	seq  int
}

// clinicalResultMsg delivers a clinical documentation outcome.
type clinicalResultMsg struct {
	err  error
	text string
	seq  int
}
