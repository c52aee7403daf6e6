package model

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// Account represents a row in chart-of-accounts.csv. The chart is loaded
// once at startup and never mutated afterwards.
type Account struct {
	Code     string // unique short code, e.g. "1002"
	Name     string
	Type     AccountType
	Category string // free-text sub-classification, e.g. "Current Asset"
}
