// Package tabular reads delimiter-ambiguous CSV/TSV text. Exports from
// banks and spreadsheets disagree on delimiters, header language, and
// column order, so the reader sniffs the dialect from the first line and
// maps header text onto semantic roles instead of trusting positions.
package tabular

import "strings"

// Supported delimiters, in detection order.
const (
	Comma     = ','
	Semicolon = ';'
	Tab       = '\t'
)

// DetectDelimiter counts candidate delimiters in the first line and
// returns the strictly dominant one. Ties and empty input default to
// comma.
func DetectDelimiter(text string) rune {
	line := text
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		line = text[:i]
	}

	tabs := strings.Count(line, "\t")
	semis := strings.Count(line, ";")
	commas := strings.Count(line, ",")

	switch {
	case tabs > semis && tabs > commas:
		return Tab
	case semis > tabs && semis > commas:
		return Semicolon
	default:
		return Comma
	}
}

// SplitRow splits one line into fields, honoring double-quoted fields
// and the "" escape for an embedded quote. Fields are trimmed of
// surrounding whitespace.
func SplitRow(line string, delim rune) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				field.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case r == delim && !inQuotes:
			fields = append(fields, strings.TrimSpace(field.String()))
			field.Reset()
		default:
			field.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(field.String()))
	return fields
}

// Absent marks a column role with no matching header.
const Absent = -1

// ColumnMap holds the inferred column index per semantic role.
type ColumnMap struct {
	Date        int
	Reference   int
	Description int
	Debit       int
	Credit      int
	Amount      int
}

// roleKeywords drive header inference; matching is case-folded
// substring membership, English and Indonesian synonyms alike.
var roleKeywords = map[string][]string{
	"date":        {"date", "tanggal", "tgl"},
	"reference":   {"ref", "nomor", "no.", "code"},
	"description": {"description", "deskripsi", "keterangan", "account", "akun"},
	"debit":       {"debit", "masuk"},
	"credit":      {"credit", "kredit", "keluar"},
	"amount":      {"amount", "jumlah", "nilai", "total"},
}

// InferColumns scans header fields for role keywords. The first
// matching column wins per role; roles with no match are Absent.
func InferColumns(header []string) ColumnMap {
	cols := ColumnMap{
		Date:        findColumn(header, roleKeywords["date"]),
		Reference:   findColumn(header, roleKeywords["reference"]),
		Description: findColumn(header, roleKeywords["description"]),
		Debit:       findColumn(header, roleKeywords["debit"]),
		Credit:      findColumn(header, roleKeywords["credit"]),
		Amount:      findColumn(header, roleKeywords["amount"]),
	}
	return cols
}

func findColumn(header []string, keywords []string) int {
	for i, h := range header {
		folded := strings.ToLower(strings.TrimSpace(h))
		for _, kw := range keywords {
			if strings.Contains(folded, kw) {
				return i
			}
		}
	}
	return Absent
}

// Document is fully sniffed tabular text: dialect, header roles, and
// the split data rows.
type Document struct {
	Delimiter rune
	Header    []string
	Columns   ColumnMap
	Rows      [][]string
}

// ParseDocument detects the dialect of raw text and splits it into a
// header plus data rows. Blank lines are dropped as noise; an empty
// input yields a Document with zero rows, never an error.
func ParseDocument(text string) Document {
	delim := DetectDelimiter(text)

	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	doc := Document{Delimiter: delim}
	if len(lines) == 0 {
		return doc
	}

	doc.Header = SplitRow(lines[0], delim)
	doc.Columns = InferColumns(doc.Header)
	for _, line := range lines[1:] {
		doc.Rows = append(doc.Rows, SplitRow(line, delim))
	}
	return doc
}
