package model

import "github.com/shopspring/decimal"

// TransactionCategory is the coarse classification of a transaction,
// assigned either explicitly by the user or inferred during import.
type TransactionCategory string

const (
	CategoryRevenue   TransactionCategory = "revenue"
	CategoryExpense   TransactionCategory = "expense"
	CategoryAsset     TransactionCategory = "asset"
	CategoryLiability TransactionCategory = "liability"
	CategoryEquity    TransactionCategory = "equity"
)

// Transaction is a single signed economic event. Amounts follow the
// inflow convention: positive = money in, negative = money out.
type Transaction struct {
	ID          string
	Date        string // ISO-8601 calendar date, kept as text and never re-parsed
	Description string
	Category    TransactionCategory
	Amount      decimal.Decimal
	Reference   string // external document id, e.g. "INV-1001"
	// ContraAccount optionally names the secondary account affected,
	// e.g. "2000" to settle an expense against Accounts Payable
	// instead of Bank. Empty means the default contra applies.
	ContraAccount string
}
