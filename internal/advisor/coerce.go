package advisor

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/medicore-hq/medicore/internal/model"
)

// failedReasoning is the reasoning shown when the provider reply carried
// none.
const failedReasoning = "Analysis failed"

// coerceForecast validates a structured forecast reply into a complete
// ForecastResult. The contract is a request, not a guarantee: fields may
// be missing, mistyped, or the body may not be JSON at all. Every path
// yields a renderable result.
func coerceForecast(raw string) model.ForecastResult {
	result := model.ForecastResult{
		Quantity:  0,
		Reasoning: failedReasoning,
		Risk:      model.RiskUnknown,
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(stripJSONFence(raw)), &payload); err != nil {
		return result
	}

	if qty, ok := asInt(payload["recommendedOrderQuantity"]); ok && qty > 0 {
		result.Quantity = qty
	}
	if reasoning, ok := payload["reasoning"].(string); ok && strings.TrimSpace(reasoning) != "" {
		result.Reasoning = reasoning
	}
	if risk, ok := payload["riskLevel"].(string); ok {
		result.Risk = model.ParseRiskLevel(risk)
	}
	return result
}

// stripJSONFence removes a markdown code fence around a JSON body. Some
// providers wrap JSON-mode output this way regardless of instructions.
func stripJSONFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// asInt accepts the number encodings seen in the wild: JSON numbers,
// numeric strings, and stringified floats.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return int(f), true
		}
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return int(f), true
		}
	}
	return 0, false
}
