package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTransactionID_Unique(t *testing.T) {
	a := NewTransactionID()
	b := NewTransactionID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestCSVRef(t *testing.T) {
	assert.Equal(t, "CSV-0", CSVRef(0))
	assert.Equal(t, "CSV-17", CSVRef(17))
}

func TestEntryID_Stable(t *testing.T) {
	assert.Equal(t, EntryID("abc"), EntryID("abc"))
	assert.Equal(t, "JE-abc", EntryID("abc"))
	assert.Equal(t, "IMP-INV-1", ImportedEntryID("INV-1"))
}
