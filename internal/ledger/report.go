package ledger

import (
	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/accounts"
	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/model"
)

// Aggregate folds journal lines into income-statement totals. Only
// derived entries contribute; imported pass-through groups are display
// data and would double-count against the same codes. Account codes
// outside the fixed report set are invisible, not an error.
func Aggregate(entries []model.JournalEntry) model.IncomeStatement {
	var stmt model.IncomeStatement
	for _, e := range entries {
		if e.Source != model.SourceDerived {
			continue
		}
		for _, l := range e.Lines {
			switch l.AccountID {
			case accounts.CodeRevenue:
				stmt.Revenue = stmt.Revenue.Add(l.Credit)
			case accounts.CodeMaintenance:
				stmt.CostOfGoodsSold = stmt.CostOfGoodsSold.Add(l.Debit)
			case accounts.CodeRent:
				stmt.OperatingExpense = stmt.OperatingExpense.Add(l.Debit)
			}
		}
	}
	stmt.NetIncome = stmt.Revenue.Sub(stmt.CostOfGoodsSold).Sub(stmt.OperatingExpense)
	return stmt
}
