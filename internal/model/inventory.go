package model

// InventoryItem represents a stocked supply item. MonthlyUsage holds the
// last six months of consumption, oldest first. Shorter or longer
// histories are tolerated everywhere but degrade forecast quality.
type InventoryItem struct {
	ID           string
	Name         string
	Category     string
	Unit         string
	MonthlyUsage []int
	CurrentStock int
	ReorderPoint int
}

// BelowReorderPoint reports whether stock has dropped to or below the
// static reorder threshold.
func (i InventoryItem) BelowReorderPoint() bool {
	return i.CurrentStock <= i.ReorderPoint
}

// UsageRising reports whether consumption trended upward across the
// recorded history. False when fewer than two months are recorded.
func (i InventoryItem) UsageRising() bool {
	if len(i.MonthlyUsage) < 2 {
		return false
	}
	return i.MonthlyUsage[len(i.MonthlyUsage)-1] > i.MonthlyUsage[0]
}
