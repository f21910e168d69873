package model

// TransactionStatus is the ledger state of a transaction. Status is
// supplied by the upstream system, never computed here.
type TransactionStatus string

const (
	StatusPending TransactionStatus = "pending"
	StatusCleared TransactionStatus = "cleared"
	StatusFlagged TransactionStatus = "flagged"
)

// FinancialTransaction represents a single general-ledger entry.
type FinancialTransaction struct {
	ID          string
	Date        string
	Description string
	Category    string
	AccountID   string
	Status      TransactionStatus
	Amount      float64
}

// Flagged reports whether the transaction was marked for review upstream.
func (t FinancialTransaction) Flagged() bool {
	return t.Status == StatusFlagged
}
