package importer

import (
	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/currency"
	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/id"
	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/model"
	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/tabular"
)

// MiscAccountCode marks lines whose account could not be resolved from
// the source text. Such lines display but never classify into a report
// bucket.
const MiscAccountCode = "Misc"

// GroupedResult summarizes a raw grouped import.
type GroupedResult struct {
	Entries []model.JournalEntry
	Rows    int
	Skipped int
}

// MaterializeGrouped clusters raw journal-style rows by shared
// reference into pass-through entries. The entries are tagged
// SourceImported: they are display data, exempt from the balance
// invariant, and never fed to report aggregation.
func MaterializeGrouped(doc tabular.Document) GroupedResult {
	var res GroupedResult
	byRef := make(map[string]int) // reference -> index into res.Entries

	for i, row := range doc.Rows {
		date := field(row, pick(doc.Columns.Date, posDate))
		reference := field(row, pick(doc.Columns.Reference, posRef))
		description := field(row, pick(doc.Columns.Description, posDesc))

		debit := currency.Normalize(field(row, pick(doc.Columns.Debit, posDebit)))
		credit := currency.Normalize(field(row, pick(doc.Columns.Credit, posCredit)))

		if debit.IsZero() && credit.IsZero() && description == "" {
			res.Skipped++
			continue
		}
		res.Rows++

		if reference == "" {
			reference = id.CSVRef(i)
		}

		line := model.JournalLine{
			AccountID:   MiscAccountCode,
			AccountName: description,
			Debit:       debit.Abs(),
			Credit:      credit.Abs(),
		}

		if idx, ok := byRef[reference]; ok {
			res.Entries[idx].Lines = append(res.Entries[idx].Lines, line)
			continue
		}

		byRef[reference] = len(res.Entries)
		res.Entries = append(res.Entries, model.JournalEntry{
			ID:          id.ImportedEntryID(reference),
			Date:        date,
			Reference:   reference,
			Description: description,
			Source:      model.SourceImported,
			Lines:       []model.JournalLine{line},
		})
	}
	return res
}
