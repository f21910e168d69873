package model

// Demo records shown on every screen. In a real deployment these would be
// fetched from the hospital's systems of record; the dashboard itself
// never mutates them.

// DemoTransactions returns the sample general-ledger entries.
func DemoTransactions() []FinancialTransaction {
	return []FinancialTransaction{
		{ID: "TXN-992", Date: "2023-10-25", Description: "Surgical Supplies Bulk", Amount: 15400, Category: "Medical Supplies", Status: StatusCleared, AccountID: "ACC-MED-SUP"},
		{ID: "TXN-993", Date: "2023-10-26", Description: "Emergency Generator Fuel", Amount: 2200, Category: "Utilities", Status: StatusCleared, AccountID: "ACC-UTIL"},
		{ID: "TXN-994", Date: "2023-10-27", Description: "MRI Maintenance Contract", Amount: 45000, Category: "Maintenance", Status: StatusFlagged, AccountID: "ACC-MAINT"},
		{ID: "TXN-995", Date: "2023-10-28", Description: "Cafeteria Vendor Payment", Amount: 3500, Category: "Ops", Status: StatusCleared, AccountID: "ACC-OPS"},
	}
}

// DemoInventory returns the sample stock list.
func DemoInventory() []InventoryItem {
	return []InventoryItem{
		{ID: "INV-001", Name: "Amoxicillin 500mg", Category: "Pharmaceuticals", CurrentStock: 120, ReorderPoint: 100, Unit: "Box", MonthlyUsage: []int{80, 90, 85, 95, 110, 130}},
		{ID: "INV-002", Name: "Surgical Masks (N95)", Category: "Consumables", CurrentStock: 4500, ReorderPoint: 2000, Unit: "Pcs", MonthlyUsage: []int{2000, 2100, 2050, 2200, 4000, 4200}},
		{ID: "INV-003", Name: "IV Saline 500ml", Category: "Consumables", CurrentStock: 50, ReorderPoint: 60, Unit: "Bag", MonthlyUsage: []int{40, 45, 42, 50, 55, 65}},
	}
}

// DemoStaff returns the sample roster.
func DemoStaff() []StaffMember {
	return []StaffMember{
		{ID: "ST-01", Name: "Dr. Sarah Lin", Role: RoleDoctor, Department: "ER", ShiftPreference: ShiftMorning, HoursWorked: 45},
		{ID: "ST-02", Name: "Dr. James Okon", Role: RoleDoctor, Department: "ER", ShiftPreference: ShiftNight, HoursWorked: 38},
		{ID: "ST-03", Name: "Nurse Joy", Role: RoleNurse, Department: "ER", ShiftPreference: ShiftAfternoon, HoursWorked: 42},
		{ID: "ST-04", Name: "Nurse Lee", Role: RoleNurse, Department: "ER", ShiftPreference: ShiftNight, HoursWorked: 36},
		{ID: "ST-05", Name: "Nurse Patel", Role: RoleNurse, Department: "ICU", ShiftPreference: ShiftMorning, HoursWorked: 40},
	}
}
