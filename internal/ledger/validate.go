package ledger

import (
	"fmt"

	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/model"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	EntryID     string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.EntryID, e.Description)
}

// ValidateEntries enforces the journal invariants:
//
//  1. Derived entries balance (sum of debits equals sum of credits).
//  2. Each line carries exactly one of debit/credit.
//  3. Line accounts resolve in the chart.
//  4. Derived entries carry at least one line. Liability and Equity
//     transactions have no posting rule and derive to empty entries;
//     this check keeps them visible instead of silently vacuous.
//
// Imported entries are pass-through data and checked only for account
// resolution; they are exempt from balance by construction.
func ValidateEntries(entries []model.JournalEntry, chart Chart) []ValidationError {
	var errs []ValidationError

	for _, entry := range entries {
		if entry.Source == model.SourceDerived && len(entry.Lines) == 0 {
			errs = append(errs, ValidationError{
				Invariant:   4,
				EntryID:     entry.ID,
				Description: "entry has no lines (no posting rule or zero amount)",
			})
		}

		if entry.Source == model.SourceDerived && !entry.Balanced() {
			errs = append(errs, ValidationError{
				Invariant: 1,
				EntryID:   entry.ID,
				Description: fmt.Sprintf("debits (%s) != credits (%s)",
					entry.TotalDebit().StringFixed(2), entry.TotalCredit().StringFixed(2)),
			})
		}

		for _, line := range entry.Lines {
			if entry.Source == model.SourceDerived {
				hasDebit := !line.Debit.IsZero()
				hasCredit := !line.Credit.IsZero()
				if hasDebit == hasCredit {
					errs = append(errs, ValidationError{
						Invariant:   2,
						EntryID:     entry.ID,
						Description: "line must have exactly one of debit or credit",
					})
				}
			}

			if !chart.Exists(line.AccountID) {
				errs = append(errs, ValidationError{
					Invariant:   3,
					EntryID:     entry.ID,
					Description: fmt.Sprintf("unknown account %q", line.AccountID),
				})
			}
		}
	}

	return errs
}
