package accounts

import "github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/model"

// Fixed codes the posting rules resolve against.
const (
	CodeCash        = "1001"
	CodeBank        = "1002"
	CodeReceivable  = "1100"
	CodeFleet       = "1200"
	CodePayable     = "2000"
	CodeEquity      = "3000"
	CodeRevenue     = "4000"
	CodeLateFee     = "4100"
	CodeMaintenance = "5001"
	CodeRent        = "5002"
	CodeFuel        = "5003"
)

// DefaultChart returns the built-in chart of accounts for a rental
// fleet business.
func DefaultChart() []model.Account {
	return []model.Account{
		{Code: CodeCash, Name: "Cash", Type: model.AccountTypeAsset, Category: "Current Asset"},
		{Code: CodeBank, Name: "Bank", Type: model.AccountTypeAsset, Category: "Current Asset"},
		{Code: CodeReceivable, Name: "Accounts Receivable", Type: model.AccountTypeAsset, Category: "Current Asset"},
		{Code: CodeFleet, Name: "Fleet Inventory", Type: model.AccountTypeAsset, Category: "Fixed Asset"},
		{Code: CodePayable, Name: "Accounts Payable", Type: model.AccountTypeLiability, Category: "Current Liability"},
		{Code: CodeEquity, Name: "Owner's Equity", Type: model.AccountTypeEquity, Category: "Equity"},
		{Code: CodeRevenue, Name: "Rental Revenue", Type: model.AccountTypeRevenue, Category: "Operating Revenue"},
		{Code: CodeLateFee, Name: "Late Fee Revenue", Type: model.AccountTypeRevenue, Category: "Other Revenue"},
		{Code: CodeMaintenance, Name: "Maintenance Expense", Type: model.AccountTypeExpense, Category: "Cost of Goods Sold"},
		{Code: CodeRent, Name: "Rent Expense", Type: model.AccountTypeExpense, Category: "Operating Expense"},
		{Code: CodeFuel, Name: "Fuel Expense", Type: model.AccountTypeExpense, Category: "Operating Expense"},
	}
}
