package model

import "github.com/shopspring/decimal"

// EntrySource distinguishes how a journal entry came to exist. Derived
// entries are computed from transactions by the posting rules and must
// balance; imported entries are raw CSV groups passed through for display
// and are exempt from the balance invariant.
type EntrySource string

const (
	SourceDerived  EntrySource = "derived"
	SourceImported EntrySource = "imported"
)

// JournalLine is one side of a posting. Exactly one of Debit/Credit is
// non-zero on any line the derivation engine produces.
type JournalLine struct {
	AccountID   string
	AccountName string // denormalized from the chart at creation time
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// IsDebit reports whether the line carries a debit amount.
func (l JournalLine) IsDebit() bool {
	return !l.Debit.IsZero()
}

// JournalEntry is a dated group of lines describing one economic event.
// Lines are ordered debit side first, then credit side.
type JournalEntry struct {
	ID          string
	Date        string
	Reference   string
	Description string
	Source      EntrySource
	Lines       []JournalLine
}

// TotalDebit sums the debit side of the entry.
func (e JournalEntry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredit sums the credit side of the entry.
func (e JournalEntry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Credit)
	}
	return total
}

// Balanced reports whether debits equal credits.
func (e JournalEntry) Balanced() bool {
	return e.TotalDebit().Equal(e.TotalCredit())
}
