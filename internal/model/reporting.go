package model

import "github.com/shopspring/decimal"

// IncomeStatement holds the summary figures folded out of derived
// journal entries.
type IncomeStatement struct {
	Revenue          decimal.Decimal
	CostOfGoodsSold  decimal.Decimal
	OperatingExpense decimal.Decimal
	NetIncome        decimal.Decimal
}
