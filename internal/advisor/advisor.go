// Package advisor wires domain records through prompt construction, one
// provider round trip, and response coercion. Remote failures surface as
// errors; partial or malformed structured replies are defaulted, never
// propagated as crashes.
package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/medicore-hq/medicore/internal/llm"
	"github.com/medicore-hq/medicore/internal/model"
	"github.com/medicore-hq/medicore/internal/prompt"
)

// Fixed placeholders substituted when the provider returns a blank reply.
const (
	placeholderAnalysis = "Unable to generate analysis."
	placeholderSchedule = "Unable to generate schedule."
	placeholderClinical = "Unable to process clinical notes."
)

// Sampling temperatures per use case. Analysis runs cool for precision,
// clinical documentation cooler still for factual consistency.
const (
	anomalyTemperature  = 0.2
	clinicalTemperature = 0.1
)

// forecastSchema is the structured contract requested for inventory
// forecasts. The provider is asked for exactly this shape; whatever comes
// back is still validated and defaulted in coerceForecast.
var forecastSchema = &llm.Schema{Fields: []llm.Field{
	{Name: "predictedDemand", Type: llm.FieldNumber},
	{Name: "recommendedOrderQuantity", Type: llm.FieldNumber},
	{Name: "reasoning", Type: llm.FieldString},
	{Name: "riskLevel", Type: llm.FieldString, Enum: []string{"Low", "Medium", "High", "Critical"}},
}}

// Advisor runs the four AI-assisted recommendation flows.
type Advisor struct {
	client  llm.Client
	prompts *prompt.Builder
	logger  *slog.Logger
}

// New creates an Advisor backed by the given provider client.
func New(client llm.Client, logger *slog.Logger) (*Advisor, error) {
	prompts, err := prompt.NewBuilder()
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt builder: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Advisor{
		client:  client,
		prompts: prompts,
		logger:  logger,
	}, nil
}

// ForecastInventory predicts 30-day demand for one item and recommends an
// order quantity. The result is always fully populated on success, even
// when the provider reply was partial or unparseable.
func (a *Advisor) ForecastInventory(ctx context.Context, item model.InventoryItem) (model.ForecastResult, error) {
	p, err := a.prompts.Forecast(item)
	if err != nil {
		return model.ForecastResult{}, err
	}

	raw, err := a.client.Generate(ctx, llm.Request{Prompt: p, Schema: forecastSchema})
	if err != nil {
		a.logger.Error("inventory forecast failed", "item", item.ID, "error", err)
		return model.ForecastResult{}, fmt.Errorf("inventory forecast failed: %w", err)
	}

	result := coerceForecast(raw)
	a.logger.Debug("inventory forecast complete",
		"item", item.ID,
		"quantity", result.Quantity,
		"risk", result.Risk)
	return result, nil
}

// AnalyzeAnomaly asks for a root-cause explanation of a cost spike on the
// target account relative to the deviation threshold.
func (a *Advisor) AnalyzeAnomaly(ctx context.Context, txns []model.FinancialTransaction, accountID, threshold string) (string, error) {
	p, err := a.prompts.Anomaly(txns, accountID, threshold)
	if err != nil {
		return "", err
	}

	raw, err := a.client.Generate(ctx, llm.Request{Prompt: p, Temperature: llm.Temp(anomalyTemperature)})
	if err != nil {
		a.logger.Error("anomaly analysis failed", "account", accountID, "error", err)
		return "", fmt.Errorf("anomaly analysis failed: %w", err)
	}
	return orPlaceholder(raw, placeholderAnalysis), nil
}

// OptimizeSchedule proposes a 24-hour shift distribution for the roster.
func (a *Advisor) OptimizeSchedule(ctx context.Context, staff []model.StaffMember) (string, error) {
	p, err := a.prompts.Schedule(staff)
	if err != nil {
		return "", err
	}

	raw, err := a.client.Generate(ctx, llm.Request{Prompt: p})
	if err != nil {
		a.logger.Error("schedule optimization failed", "roster_size", len(staff), "error", err)
		return "", fmt.Errorf("schedule optimization failed: %w", err)
	}
	return orPlaceholder(raw, placeholderSchedule), nil
}

// StructureNotes converts raw clinical notes into the requested document
// format. Callers are expected to suppress the call for blank notes; the
// advisor does not second-guess its input.
func (a *Advisor) StructureNotes(ctx context.Context, rawNotes string, docType prompt.DocType) (string, error) {
	p, err := a.prompts.Clinical(rawNotes, docType)
	if err != nil {
		return "", err
	}

	raw, err := a.client.Generate(ctx, llm.Request{Prompt: p, Temperature: llm.Temp(clinicalTemperature)})
	if err != nil {
		a.logger.Error("clinical documentation failed", "doc_type", docType, "error", err)
		return "", fmt.Errorf("clinical documentation failed: %w", err)
	}
	return orPlaceholder(raw, placeholderClinical), nil
}

// orPlaceholder substitutes the placeholder for blank replies. Empty
// string and whitespace-only are treated identically.
func orPlaceholder(text, placeholder string) string {
	if strings.TrimSpace(text) == "" {
		return placeholder
	}
	return text
}
