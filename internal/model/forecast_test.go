package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRiskLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RiskLevel
	}{
		{name: "canonical low", input: "Low", want: RiskLow},
		{name: "lowercase medium", input: "medium", want: RiskMedium},
		{name: "uppercase high", input: "HIGH", want: RiskHigh},
		{name: "critical with whitespace", input: "  Critical ", want: RiskCritical},
		{name: "empty", input: "", want: RiskUnknown},
		{name: "garbage", input: "severe", want: RiskUnknown},
		{name: "numeric", input: "3", want: RiskUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRiskLevel(tt.input))
		})
	}
}

func TestInventoryItemHelpers(t *testing.T) {
	item := InventoryItem{CurrentStock: 50, ReorderPoint: 60, MonthlyUsage: []int{40, 45, 42, 50, 55, 65}}
	assert.True(t, item.BelowReorderPoint())
	assert.True(t, item.UsageRising())

	flat := InventoryItem{CurrentStock: 100, ReorderPoint: 60, MonthlyUsage: []int{65}}
	assert.False(t, flat.BelowReorderPoint())
	assert.False(t, flat.UsageRising(), "single-month history has no trend")

	empty := InventoryItem{}
	assert.False(t, empty.UsageRising())
}

func TestStaffMemberFatigued(t *testing.T) {
	assert.True(t, StaffMember{HoursWorked: 45}.Fatigued())
	assert.False(t, StaffMember{HoursWorked: 40}.Fatigued(), "threshold itself is not over")
	assert.False(t, StaffMember{HoursWorked: 36}.Fatigued())
}
