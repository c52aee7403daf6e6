// Package importer turns sniffed tabular documents into canonical
// transactions and raw journal groups. Every parse failure is local: a
// bad row is counted and skipped, never fatal to the batch.
package importer

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/currency"
	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/id"
	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/model"
	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/tabular"
)

// Positional fallback layout when header inference finds no role:
// date, reference, description, then either a single amount column
// (4-column layout) or debit+credit columns (5-column layout).
const (
	posDate   = 0
	posRef    = 1
	posDesc   = 2
	posAmount = 3
	posDebit  = 3
	posCredit = 4
)

// assetKeywords flip a negative single-amount row from Expense to
// Asset when the description names fleet stock.
var assetKeywords = []string{"asset", "aset", "motor", "unit"}

// Result summarizes one materialization pass for caller feedback.
type Result struct {
	Transactions []model.Transaction
	Imported     int
	Skipped      int
}

// Materialize converts every data row of a document into canonical
// transactions. Rows with no resolvable amount and no description are
// dropped as noise and counted in Skipped.
func Materialize(doc tabular.Document) Result {
	var res Result
	for i, row := range doc.Rows {
		tx, ok := materializeRow(row, doc.Columns, i)
		if !ok {
			res.Skipped++
			continue
		}
		res.Transactions = append(res.Transactions, tx)
		res.Imported++
	}
	return res
}

func materializeRow(row []string, cols tabular.ColumnMap, rowIndex int) (model.Transaction, bool) {
	date := field(row, pick(cols.Date, posDate))
	reference := field(row, pick(cols.Reference, posRef))
	description := field(row, pick(cols.Description, posDesc))

	amount, category := resolveAmount(row, cols, description)

	if amount.IsZero() && description == "" {
		return model.Transaction{}, false
	}

	if reference == "" {
		reference = id.CSVRef(rowIndex)
	}

	return model.Transaction{
		ID:          id.NewTransactionID(),
		Date:        date,
		Description: description,
		Category:    category,
		Amount:      amount,
		Reference:   reference,
	}, true
}

// resolveAmount picks the signed amount and category for a row.
// Explicit debit/credit columns carry their own semantics; a single
// amount column falls back to the keyword classifier.
func resolveAmount(row []string, cols tabular.ColumnMap, description string) (decimal.Decimal, model.TransactionCategory) {
	debitCol, creditCol := cols.Debit, cols.Credit
	amountCol := cols.Amount

	if debitCol == tabular.Absent && creditCol == tabular.Absent && amountCol == tabular.Absent {
		// No roles inferred: choose a positional layout by row width.
		if len(row) >= posCredit+1 {
			debitCol, creditCol = posDebit, posCredit
		} else {
			amountCol = posAmount
		}
	}

	if debitCol != tabular.Absent && creditCol != tabular.Absent {
		credit := currency.Normalize(field(row, creditCol))
		if credit.IsPositive() {
			return credit, model.CategoryRevenue
		}
		debit := currency.Normalize(field(row, debitCol))
		if debit.IsPositive() {
			return debit.Neg(), model.CategoryExpense
		}
		return decimal.Zero, model.CategoryRevenue
	}

	amount := currency.Normalize(field(row, amountCol))
	return amount, classify(amount, description)
}

// classify is the single fallback classifier for rows without explicit
// debit/credit semantics.
func classify(amount decimal.Decimal, description string) model.TransactionCategory {
	if amount.IsNegative() {
		folded := strings.ToLower(description)
		for _, kw := range assetKeywords {
			if strings.Contains(folded, kw) {
				return model.CategoryAsset
			}
		}
		return model.CategoryExpense
	}
	return model.CategoryRevenue
}

func pick(inferred, fallback int) int {
	if inferred != tabular.Absent {
		return inferred
	}
	return fallback
}

// field returns row[i], or "" when the row is too short for the layout.
func field(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
