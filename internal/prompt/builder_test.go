package prompt

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore-hq/medicore/internal/model"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	b, err := NewBuilder()
	require.NoError(t, err)
	return b
}

func TestForecastPromptEmbedsAllFields(t *testing.T) {
	b := newTestBuilder(t)

	item := model.InventoryItem{
		ID:           "INV-003",
		Name:         "IV Saline 500ml",
		Category:     "Consumables",
		CurrentStock: 50,
		ReorderPoint: 60,
		Unit:         "Bag",
		MonthlyUsage: []int{40, 45, 42, 50, 55, 65},
	}

	p, err := b.Forecast(item)
	require.NoError(t, err)

	assert.Contains(t, p, "IV Saline 500ml")
	assert.Contains(t, p, "INV-003")
	assert.Contains(t, p, "Current Stock: 50")
	assert.Contains(t, p, "Static Reorder Point: 60")
	assert.Contains(t, p, "next 30 days")
	assert.Contains(t, p, "7-day stock buffer")
	assert.Contains(t, p, "valid JSON")

	// Usage values appear in their original order.
	usage := "40, 45, 42, 50, 55, 65"
	assert.Contains(t, p, usage)
}

func TestForecastPromptToleratesShortHistory(t *testing.T) {
	b := newTestBuilder(t)

	item := model.InventoryItem{ID: "INV-X", Name: "Gauze", MonthlyUsage: []int{12}}
	p, err := b.Forecast(item)
	require.NoError(t, err)
	assert.Contains(t, p, "last 1 months")
	assert.Contains(t, p, "12")

	item.MonthlyUsage = nil
	p, err = b.Forecast(item)
	require.NoError(t, err)
	assert.NotEmpty(t, p)
}

func TestAnomalyPromptEmbedsTransactions(t *testing.T) {
	b := newTestBuilder(t)

	txns := model.DemoTransactions()
	p, err := b.Anomaly(txns, "ACC-MAINT", "25%")
	require.NoError(t, err)

	assert.Contains(t, p, "ACC-MAINT")
	assert.Contains(t, p, "25%")
	for _, txn := range txns {
		assert.Contains(t, p, txn.Date)
		assert.Contains(t, p, txn.Description)
		assert.Contains(t, p, txn.Category)
	}
	assert.Contains(t, p, "$45000.00")
}

func TestAnomalyPromptEmptyTransactions(t *testing.T) {
	b := newTestBuilder(t)

	p, err := b.Anomaly(nil, "ACC-UTIL", "10%")
	require.NoError(t, err)
	assert.NotEmpty(t, p)
	assert.Contains(t, p, "(no transactions recorded)")
	assert.Contains(t, p, "ACC-UTIL")
}

func TestSchedulePromptEmbedsRoster(t *testing.T) {
	b := newTestBuilder(t)

	staff := model.DemoStaff()
	p, err := b.Schedule(staff)
	require.NoError(t, err)

	for _, s := range staff {
		assert.Contains(t, p, s.Name)
		assert.Contains(t, p, string(s.Role))
		assert.Contains(t, p, string(s.ShiftPreference))
		assert.Contains(t, p, strconv.Itoa(int(s.HoursWorked)))
	}
	assert.Contains(t, p, "over 40 hours")
	assert.Contains(t, p, "Morning, Afternoon, Night")
	assert.Contains(t, p, "Markdown list")
}

func TestSchedulePromptDeterministic(t *testing.T) {
	b := newTestBuilder(t)

	staff := model.DemoStaff()
	first, err := b.Schedule(staff)
	require.NoError(t, err)
	second, err := b.Schedule(staff)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical input must yield byte-identical prompt text")
}

func TestSchedulePromptEmptyRoster(t *testing.T) {
	b := newTestBuilder(t)

	p, err := b.Schedule(nil)
	require.NoError(t, err)
	assert.Contains(t, p, "(no staff on roster)")
}

func TestClinicalPrompt(t *testing.T) {
	b := newTestBuilder(t)

	notes := "Pt c/o chest pain x2 days. BP 145/92. Given aspirin."
	p, err := b.Clinical(notes, DocSOAP)
	require.NoError(t, err)

	assert.Contains(t, p, notes, "raw notes embed verbatim")
	assert.Contains(t, p, "SOAP Note (Subjective, Objective, Assessment, Plan)")
	assert.Contains(t, p, `"Not mentioned in raw notes"`)
	assert.Contains(t, p, "Do not hallucinate")

	p, err = b.Clinical(notes, DocDischargeSummary)
	require.NoError(t, err)
	assert.Contains(t, p, "Discharge Summary")
	assert.NotContains(t, p, "SOAP")
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "40", formatHours(40))
	assert.Equal(t, "37.5", formatHours(37.5))
}

func TestJoinInts(t *testing.T) {
	assert.Equal(t, "1, 2, 3", joinInts([]int{1, 2, 3}, ", "))
	assert.Equal(t, "", joinInts(nil, ", "))
}

func TestPromptsHaveNoUnrenderedActions(t *testing.T) {
	b := newTestBuilder(t)

	p1, _ := b.Forecast(model.DemoInventory()[0])
	p2, _ := b.Anomaly(model.DemoTransactions(), "ACC-MAINT", "25%")
	p3, _ := b.Schedule(model.DemoStaff())
	p4, _ := b.Clinical("notes", DocSOAP)

	for _, p := range []string{p1, p2, p3, p4} {
		assert.False(t, strings.Contains(p, "{{"), "template actions must all render")
		assert.False(t, strings.Contains(p, "<no value>"))
	}
}
