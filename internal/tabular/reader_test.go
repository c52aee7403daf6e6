package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		text string
		want rune
	}{
		{"a;b;c", Semicolon},
		{"a\tb\tc", Tab},
		{"a,b,c", Comma},
		{"a,b;c", Comma}, // tie defaults to comma
		{"single", Comma},
		{"", Comma},
		{"tanggal;keterangan;jumlah\n1,5;x;2", Semicolon}, // only first line counts
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectDelimiter(tt.text), "DetectDelimiter(%q)", tt.text)
	}
}

func TestSplitRow_QuoteAware(t *testing.T) {
	assert.Equal(t, []string{"a", "b,c", "d"}, SplitRow(`a,"b,c",d`, Comma))
	assert.Equal(t, []string{"a", `b"c`, "d"}, SplitRow(`a,"b""c",d`, Comma))
}

func TestSplitRow_TrimsWhitespace(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitRow(" a , b ,c ", Comma))
}

func TestSplitRow_EmptyFields(t *testing.T) {
	assert.Equal(t, []string{"a", "", "c", ""}, SplitRow("a,,c,", Comma))
}

func TestSplitRow_Semicolon(t *testing.T) {
	assert.Equal(t, []string{"x", "y;z"}, SplitRow(`x;"y;z"`, Semicolon))
}

func TestInferColumns_English(t *testing.T) {
	cols := InferColumns([]string{"Date", "Ref", "Description", "Debit", "Credit"})
	assert.Equal(t, 0, cols.Date)
	assert.Equal(t, 1, cols.Reference)
	assert.Equal(t, 2, cols.Description)
	assert.Equal(t, 3, cols.Debit)
	assert.Equal(t, 4, cols.Credit)
	assert.Equal(t, Absent, cols.Amount)
}

func TestInferColumns_Indonesian(t *testing.T) {
	cols := InferColumns([]string{"Tanggal", "Nomor", "Keterangan", "Jumlah"})
	assert.Equal(t, 0, cols.Date)
	assert.Equal(t, 1, cols.Reference)
	assert.Equal(t, 2, cols.Description)
	assert.Equal(t, 3, cols.Amount)
	assert.Equal(t, Absent, cols.Debit)
	assert.Equal(t, Absent, cols.Credit)
}

func TestInferColumns_SubstringMatch(t *testing.T) {
	cols := InferColumns([]string{"Transaction Date", "Invoice No.", "Akun Biaya", "Total (Rp)"})
	assert.Equal(t, 0, cols.Date)
	assert.Equal(t, 1, cols.Reference)
	assert.Equal(t, 2, cols.Description)
	assert.Equal(t, 3, cols.Amount)
}

func TestInferColumns_FirstMatchWins(t *testing.T) {
	cols := InferColumns([]string{"Tgl", "Tanggal Posting", "Keterangan"})
	assert.Equal(t, 0, cols.Date)
}

func TestParseDocument(t *testing.T) {
	text := "tanggal;keterangan;masuk;keluar\n" +
		"2024-06-01;Sewa motor harian;450.000;\n" +
		"\n" +
		"2024-06-02;\"Beli parts; oli\";;150.000\n"

	doc := ParseDocument(text)
	assert.Equal(t, rune(Semicolon), doc.Delimiter)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, []string{"2024-06-02", "Beli parts; oli", "", "150.000"}, doc.Rows[1])
	assert.Equal(t, 0, doc.Columns.Date)
	assert.Equal(t, 1, doc.Columns.Description)
	assert.Equal(t, 2, doc.Columns.Debit)
	assert.Equal(t, 3, doc.Columns.Credit)
}

func TestParseDocument_Empty(t *testing.T) {
	doc := ParseDocument("")
	assert.Empty(t, doc.Rows)
	assert.Empty(t, doc.Header)
}
