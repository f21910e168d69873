// Package prompt renders domain records into the instruction text sent to
// the AI provider. Builders are pure: identical input yields identical
// prompt text, and empty record sets still render a valid prompt.
package prompt

import (
	"bytes"
	"embed"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/medicore-hq/medicore/internal/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// DocType selects the clinical documentation format.
type DocType string

const (
	DocSOAP             DocType = "SOAP"
	DocDischargeSummary DocType = "DISCHARGE_SUMMARY"
)

// FormatName is the human-readable name embedded in the scribe prompt.
func (d DocType) FormatName() string {
	if d == DocSOAP {
		return "SOAP Note (Subjective, Objective, Assessment, Plan)"
	}
	return "Discharge Summary"
}

// Builder renders the four use-case prompts from embedded templates.
type Builder struct {
	templates map[string]*template.Template
}

// NewBuilder parses the embedded templates.
func NewBuilder() (*Builder, error) {
	funcMap := template.FuncMap{
		"formatAmount": formatAmount,
		"formatHours":  formatHours,
		"joinInts":     joinInts,
	}

	b := &Builder{templates: make(map[string]*template.Template)}
	for _, name := range []string{"forecast", "anomaly", "schedule", "clinical"} {
		filename := fmt.Sprintf("templates/%s.tmpl", name)
		tmpl, err := template.New(fmt.Sprintf("%s.tmpl", name)).Funcs(funcMap).ParseFS(templateFS, filename)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		b.templates[name] = tmpl
	}
	return b, nil
}

// Forecast renders the inventory demand forecast prompt for one item.
func (b *Builder) Forecast(item model.InventoryItem) (string, error) {
	return b.render("forecast", item)
}

// anomalyData feeds the anomaly template.
type anomalyData struct {
	AccountID    string
	Threshold    string
	Transactions []model.FinancialTransaction
}

// Anomaly renders the cost-spike root-cause prompt. An empty transaction
// slice renders a "(no transactions recorded)" line rather than failing.
func (b *Builder) Anomaly(txns []model.FinancialTransaction, accountID, threshold string) (string, error) {
	return b.render("anomaly", anomalyData{
		AccountID:    accountID,
		Threshold:    threshold,
		Transactions: txns,
	})
}

// scheduleData feeds the schedule template.
type scheduleData struct {
	Staff            []model.StaffMember
	FatigueThreshold int
}

// Schedule renders the shift optimization prompt for the roster.
func (b *Builder) Schedule(staff []model.StaffMember) (string, error) {
	return b.render("schedule", scheduleData{
		Staff:            staff,
		FatigueThreshold: int(model.FatigueThresholdHours),
	})
}

// clinicalData feeds the clinical template.
type clinicalData struct {
	FormatName string
	RawNotes   string
}

// Clinical renders the medical scribe prompt around the verbatim notes.
func (b *Builder) Clinical(rawNotes string, docType DocType) (string, error) {
	return b.render("clinical", clinicalData{
		FormatName: docType.FormatName(),
		RawNotes:   rawNotes,
	})
}

func (b *Builder) render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := b.templates[name].ExecuteTemplate(&buf, name+".tmpl", data); err != nil {
		return "", fmt.Errorf("failed to execute %s template: %w", name, err)
	}
	return buf.String(), nil
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// formatHours drops a trailing .0 so whole-hour values read naturally.
func formatHours(hours float64) string {
	if hours == float64(int(hours)) {
		return strconv.Itoa(int(hours))
	}
	return strconv.FormatFloat(hours, 'f', 1, 64)
}

func joinInts(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}
