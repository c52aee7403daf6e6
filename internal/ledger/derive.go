// Package ledger derives balanced journal entries from transactions and
// folds them into report figures. Everything here is a pure function of
// its inputs: entries are recomputed on demand, never stored.
package ledger

import (
	"strings"

	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/accounts"
	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/id"
	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/model"
)

// Chart is the read-only account catalog injected into derivation and
// validation. *accounts.Service satisfies it.
type Chart interface {
	Name(code string) string
	Exists(code string) bool
}

// PostingAccounts overrides the settlement accounts the posting rules
// resolve against. Zero values fall back to the standard codes.
type PostingAccounts struct {
	Bank    string
	Payable string
}

func (p PostingAccounts) withDefaults() PostingAccounts {
	if p.Bank == "" {
		p.Bank = accounts.CodeBank
	}
	if p.Payable == "" {
		p.Payable = accounts.CodePayable
	}
	return p
}

// accountRule picks an account code by the first matching predicate.
// Rules are evaluated in order; the last rule of a table must always
// match.
type accountRule struct {
	matches func(model.Transaction) bool
	code    string
}

// ruleTables holds the debit and credit rule tables for one category.
type ruleTables struct {
	debit  []accountRule
	credit []accountRule
}

func descContains(keywords ...string) func(model.Transaction) bool {
	return func(tx model.Transaction) bool {
		folded := strings.ToLower(tx.Description)
		for _, kw := range keywords {
			if strings.Contains(folded, kw) {
				return true
			}
		}
		return false
	}
}

func contraIs(code string) func(model.Transaction) bool {
	return func(tx model.Transaction) bool { return tx.ContraAccount == code }
}

func always(model.Transaction) bool { return true }

// postingRules builds the per-category rule tables for a set of
// settlement accounts. Liability and Equity have no defined posting
// and derive to an empty entry.
func postingRules(p PostingAccounts) map[model.TransactionCategory]ruleTables {
	p = p.withDefaults()
	return map[model.TransactionCategory]ruleTables{
		model.CategoryRevenue: {
			debit:  []accountRule{{matches: always, code: p.Bank}},
			credit: []accountRule{{matches: always, code: accounts.CodeRevenue}},
		},
		model.CategoryExpense: {
			debit: []accountRule{
				{matches: descContains("maintenance", "parts"), code: accounts.CodeMaintenance},
				{matches: always, code: accounts.CodeRent},
			},
			credit: []accountRule{
				{matches: contraIs(p.Payable), code: p.Payable},
				{matches: always, code: p.Bank},
			},
		},
		model.CategoryAsset: {
			debit:  []accountRule{{matches: always, code: accounts.CodeFleet}},
			credit: []accountRule{{matches: always, code: p.Bank}},
		},
	}
}

var defaultRules = postingRules(PostingAccounts{})

func firstMatch(rules []accountRule, tx model.Transaction) string {
	for _, r := range rules {
		if r.matches(tx) {
			return r.code
		}
	}
	return ""
}

// Derive maps one transaction to a journal entry against the chart,
// using the standard settlement accounts. Pure and total: an
// unrecognized category, or a zero amount, yields an entry with no
// lines rather than an error. For every supported category the result
// balances, debit line first.
func Derive(tx model.Transaction, chart Chart) model.JournalEntry {
	return deriveWithRules(tx, chart, defaultRules)
}

func deriveWithRules(tx model.Transaction, chart Chart, rules map[model.TransactionCategory]ruleTables) model.JournalEntry {
	entry := model.JournalEntry{
		ID:          id.EntryID(tx.ID),
		Date:        tx.Date,
		Reference:   tx.Reference,
		Description: tx.Description,
		Source:      model.SourceDerived,
	}

	tables, ok := rules[tx.Category]
	if !ok {
		// Liability and Equity have no posting rule.
		return entry
	}

	amount := tx.Amount.Abs()
	if amount.IsZero() {
		return entry
	}

	debitCode := firstMatch(tables.debit, tx)
	creditCode := firstMatch(tables.credit, tx)

	entry.Lines = []model.JournalLine{
		{AccountID: debitCode, AccountName: chart.Name(debitCode), Debit: amount},
		{AccountID: creditCode, AccountName: chart.Name(creditCode), Credit: amount},
	}
	return entry
}

// DeriveAll derives entries for a batch of transactions with the
// standard settlement accounts, preserving input order.
func DeriveAll(txs []model.Transaction, chart Chart) []model.JournalEntry {
	entries := make([]model.JournalEntry, 0, len(txs))
	for _, tx := range txs {
		entries = append(entries, Derive(tx, chart))
	}
	return entries
}
