package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medicore-hq/medicore/internal/model"
)

func TestCoerceForecast(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want model.ForecastResult
	}{
		{
			name: "complete response",
			raw:  `{"predictedDemand": 70, "recommendedOrderQuantity": 85, "reasoning": "Usage is trending up.", "riskLevel": "High"}`,
			want: model.ForecastResult{Quantity: 85, Reasoning: "Usage is trending up.", Risk: model.RiskHigh},
		},
		{
			name: "missing risk level",
			raw:  `{"recommendedOrderQuantity": 40, "reasoning": "Stable usage."}`,
			want: model.ForecastResult{Quantity: 40, Reasoning: "Stable usage.", Risk: model.RiskUnknown},
		},
		{
			name: "missing quantity",
			raw:  `{"reasoning": "ok", "riskLevel": "Low"}`,
			want: model.ForecastResult{Quantity: 0, Reasoning: "ok", Risk: model.RiskLow},
		},
		{
			name: "missing reasoning",
			raw:  `{"recommendedOrderQuantity": 10, "riskLevel": "Medium"}`,
			want: model.ForecastResult{Quantity: 10, Reasoning: "Analysis failed", Risk: model.RiskMedium},
		},
		{
			name: "empty object",
			raw:  `{}`,
			want: model.ForecastResult{Quantity: 0, Reasoning: "Analysis failed", Risk: model.RiskUnknown},
		},
		{
			name: "not JSON at all",
			raw:  "I cannot answer that.",
			want: model.ForecastResult{Quantity: 0, Reasoning: "Analysis failed", Risk: model.RiskUnknown},
		},
		{
			name: "empty string",
			raw:  "",
			want: model.ForecastResult{Quantity: 0, Reasoning: "Analysis failed", Risk: model.RiskUnknown},
		},
		{
			name: "markdown fenced JSON",
			raw:  "```json\n{\"recommendedOrderQuantity\": 25, \"reasoning\": \"Fenced.\", \"riskLevel\": \"critical\"}\n```",
			want: model.ForecastResult{Quantity: 25, Reasoning: "Fenced.", Risk: model.RiskCritical},
		},
		{
			name: "quantity as string",
			raw:  `{"recommendedOrderQuantity": "30", "reasoning": "Stringly typed.", "riskLevel": "low"}`,
			want: model.ForecastResult{Quantity: 30, Reasoning: "Stringly typed.", Risk: model.RiskLow},
		},
		{
			name: "negative quantity clamped",
			raw:  `{"recommendedOrderQuantity": -5, "reasoning": "Nonsense.", "riskLevel": "Low"}`,
			want: model.ForecastResult{Quantity: 0, Reasoning: "Nonsense.", Risk: model.RiskLow},
		},
		{
			name: "mistyped fields",
			raw:  `{"recommendedOrderQuantity": true, "reasoning": 42, "riskLevel": ["High"]}`,
			want: model.ForecastResult{Quantity: 0, Reasoning: "Analysis failed", Risk: model.RiskUnknown},
		},
		{
			name: "case-insensitive risk normalization",
			raw:  `{"recommendedOrderQuantity": 1, "reasoning": "r", "riskLevel": "MEDIUM"}`,
			want: model.ForecastResult{Quantity: 1, Reasoning: "r", Risk: model.RiskMedium},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				got := coerceForecast(tt.raw)
				assert.Equal(t, tt.want, got)
			})
		})
	}
}

func TestStripJSONFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripJSONFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripJSONFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripJSONFence(`{"a":1}`))
	assert.Equal(t, "plain text", stripJSONFence("plain text"))
}
