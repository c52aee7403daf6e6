package commands

import (
	"fmt"
	"io"

	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/model"
)

func printEntry(w io.Writer, entry model.JournalEntry) {
	fmt.Fprintf(w, "%s  %s  %s  %s\n", entry.ID, entry.Date, entry.Reference, entry.Description)
	if len(entry.Lines) == 0 {
		fmt.Fprintln(w, "  (no posting rule for this category)")
		return
	}
	for _, line := range entry.Lines {
		name := line.AccountName
		if name == "" {
			name = "(unknown account)"
		}
		if line.IsDebit() {
			fmt.Fprintf(w, "  Dr %-5s %-25s %s\n", line.AccountID, name, line.Debit.StringFixed(2))
		} else {
			fmt.Fprintf(w, "  Cr %-5s %-25s %s\n", line.AccountID, name, line.Credit.StringFixed(2))
		}
	}
}

func printStatement(w io.Writer, label string, stmt model.IncomeStatement) {
	fmt.Fprintf(w, "Revenue:            %s %s\n", label, stmt.Revenue.StringFixed(2))
	fmt.Fprintf(w, "Cost of goods sold: %s %s\n", label, stmt.CostOfGoodsSold.StringFixed(2))
	fmt.Fprintf(w, "Operating expense:  %s %s\n", label, stmt.OperatingExpense.StringFixed(2))
	fmt.Fprintf(w, "Net income:         %s %s\n", label, stmt.NetIncome.StringFixed(2))
}
