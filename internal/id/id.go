package id

import (
	"fmt"

	"github.com/google/uuid"
)

// NewTransactionID returns a fresh unique transaction id.
func NewTransactionID() string {
	return uuid.NewString()
}

// CSVRef returns the synthetic reference for an imported row that
// carried no reference of its own, e.g. "CSV-3".
func CSVRef(row int) string {
	return fmt.Sprintf("CSV-%d", row)
}

// EntryID returns the journal entry id derived from a transaction id.
// Derivation is pure, so the mapping must be stable: re-deriving the
// same transaction yields the same entry id.
func EntryID(txID string) string {
	return "JE-" + txID
}

// ImportedEntryID returns the entry id for a raw CSV group sharing a
// reference.
func ImportedEntryID(reference string) string {
	return "IMP-" + reference
}
