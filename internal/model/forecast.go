package model

import "strings"

// RiskLevel is the stockout risk assessment attached to a forecast.
// Values arriving from the AI provider are normalized case-insensitively;
// anything unrecognized maps to RiskUnknown.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskMedium   RiskLevel = "Medium"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
	RiskUnknown  RiskLevel = "Unknown"
)

// ParseRiskLevel normalizes a free-form risk string.
func ParseRiskLevel(s string) RiskLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return RiskLow
	case "medium":
		return RiskMedium
	case "high":
		return RiskHigh
	case "critical":
		return RiskCritical
	default:
		return RiskUnknown
	}
}

// ForecastResult is the coerced outcome of one inventory forecast
// invocation. It is always fully populated, even when the provider
// response was partial or malformed.
type ForecastResult struct {
	Reasoning string
	Risk      RiskLevel
	Quantity  int
}
