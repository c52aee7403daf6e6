package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/accounts"
	"github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/model"
)

// mockChart implements Chart over a code->name map.
type mockChart struct {
	names map[string]string
}

func (m *mockChart) Name(code string) string { return m.names[code] }
func (m *mockChart) Exists(code string) bool {
	_, ok := m.names[code]
	return ok
}

func newMockChart(pairs ...string) *mockChart {
	m := &mockChart{names: make(map[string]string)}
	for i := 0; i+1 < len(pairs); i += 2 {
		m.names[pairs[i]] = pairs[i+1]
	}
	return m
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

var fullChart = accounts.NewService(accounts.DefaultChart())

func tx(category model.TransactionCategory, amount, desc string) model.Transaction {
	return model.Transaction{
		ID:          "t1",
		Date:        "2024-06-01",
		Description: desc,
		Category:    category,
		Amount:      dec(amount),
		Reference:   "INV-1001",
	}
}

func TestDerive_Revenue(t *testing.T) {
	entry := Derive(tx(model.CategoryRevenue, "450000", "Rental Income"), fullChart)

	assert.Equal(t, model.SourceDerived, entry.Source)
	assert.Equal(t, "2024-06-01", entry.Date)
	assert.Equal(t, "INV-1001", entry.Reference)
	require.Len(t, entry.Lines, 2)

	debit := entry.Lines[0]
	assert.Equal(t, accounts.CodeBank, debit.AccountID)
	assert.Equal(t, "Bank", debit.AccountName)
	assert.True(t, debit.Debit.Equal(dec("450000")))

	credit := entry.Lines[1]
	assert.Equal(t, accounts.CodeRevenue, credit.AccountID)
	assert.Equal(t, "Rental Revenue", credit.AccountName)
	assert.True(t, credit.Credit.Equal(dec("450000")))

	assert.True(t, entry.Balanced())
}

func TestDerive_ExpenseMaintenanceKeyword(t *testing.T) {
	entry := Derive(tx(model.CategoryExpense, "-150000", "Oil and parts for unit 3"), fullChart)

	require.Len(t, entry.Lines, 2)
	assert.Equal(t, accounts.CodeMaintenance, entry.Lines[0].AccountID)
	assert.Equal(t, accounts.CodeBank, entry.Lines[1].AccountID)
	assert.True(t, entry.Lines[0].Debit.Equal(dec("150000")), "amount posts as absolute value")
	assert.True(t, entry.Balanced())
}

func TestDerive_ExpenseDefaultsToRent(t *testing.T) {
	entry := Derive(tx(model.CategoryExpense, "-2000000", "Garage lease June"), fullChart)

	require.Len(t, entry.Lines, 2)
	assert.Equal(t, accounts.CodeRent, entry.Lines[0].AccountID)
	assert.Equal(t, accounts.CodeBank, entry.Lines[1].AccountID)
}

func TestDerive_ExpenseContraPayable(t *testing.T) {
	trans := tx(model.CategoryExpense, "-500000", "Maintenance invoice")
	trans.ContraAccount = accounts.CodePayable

	entry := Derive(trans, fullChart)
	require.Len(t, entry.Lines, 2)
	assert.Equal(t, accounts.CodeMaintenance, entry.Lines[0].AccountID)
	assert.Equal(t, accounts.CodePayable, entry.Lines[1].AccountID)
	assert.Equal(t, "Accounts Payable", entry.Lines[1].AccountName)
}

func TestDerive_Asset(t *testing.T) {
	entry := Derive(tx(model.CategoryAsset, "-15000000", "Beli motor bekas"), fullChart)

	require.Len(t, entry.Lines, 2)
	assert.Equal(t, accounts.CodeFleet, entry.Lines[0].AccountID)
	assert.Equal(t, accounts.CodeBank, entry.Lines[1].AccountID)
	assert.True(t, entry.Balanced())
}

func TestDerive_LiabilityAndEquity_NoPostingRule(t *testing.T) {
	for _, cat := range []model.TransactionCategory{model.CategoryLiability, model.CategoryEquity} {
		entry := Derive(tx(cat, "100", "whatever"), fullChart)
		assert.Empty(t, entry.Lines, "category %s has no posting rule", cat)
		assert.Equal(t, model.SourceDerived, entry.Source)
	}
}

func TestDerive_ZeroAmount(t *testing.T) {
	entry := Derive(tx(model.CategoryRevenue, "0", "note only"), fullChart)
	assert.Empty(t, entry.Lines)
}

func TestDerive_UnknownChartCode(t *testing.T) {
	// Chart missing the revenue account: the bare code still posts,
	// just without a display name.
	chart := newMockChart(accounts.CodeBank, "Bank")
	entry := Derive(tx(model.CategoryRevenue, "100", "x"), chart)

	require.Len(t, entry.Lines, 2)
	assert.Equal(t, accounts.CodeRevenue, entry.Lines[1].AccountID)
	assert.Equal(t, "", entry.Lines[1].AccountName)
	assert.True(t, entry.Balanced())
}

func TestDerive_Idempotent(t *testing.T) {
	trans := tx(model.CategoryExpense, "-150000", "parts order")
	first := Derive(trans, fullChart)
	second := Derive(trans, fullChart)
	assert.Equal(t, first, second)
}

func TestDeriveAll_PreservesOrder(t *testing.T) {
	txs := []model.Transaction{
		tx(model.CategoryRevenue, "100", "a"),
		tx(model.CategoryExpense, "-50", "b"),
	}
	entries := DeriveAll(txs, fullChart)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Description)
	assert.Equal(t, "b", entries[1].Description)
}

func TestDerive_BalanceInvariant(t *testing.T) {
	cases := []model.Transaction{
		tx(model.CategoryRevenue, "450000", "sewa"),
		tx(model.CategoryExpense, "-150000", "maintenance parts"),
		tx(model.CategoryExpense, "-75000", "misc supplies"),
		tx(model.CategoryAsset, "-15000000", "motor baru"),
	}
	for _, c := range cases {
		entry := Derive(c, fullChart)
		assert.True(t, entry.Balanced(), "entry for %q must balance", c.Description)
	}
}
