package ledger

import "github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/model"

// Service binds the derivation engine to one chart of accounts and one
// set of posting accounts. All methods are pure recomputation over the
// inputs: re-running after an append is idempotent and there is no
// cached state to invalidate.
type Service struct {
	chart Chart
	rules map[model.TransactionCategory]ruleTables
}

// NewService creates a ledger Service over a chart with the standard
// settlement accounts.
func NewService(chart Chart) *Service {
	return NewServiceWithPosting(chart, PostingAccounts{})
}

// NewServiceWithPosting creates a ledger Service whose posting rules
// settle against the given bank/payable accounts. Empty fields keep
// the standard codes.
func NewServiceWithPosting(chart Chart, posting PostingAccounts) *Service {
	return &Service{chart: chart, rules: postingRules(posting)}
}

// Derive maps one transaction to a journal entry.
func (s *Service) Derive(tx model.Transaction) model.JournalEntry {
	return deriveWithRules(tx, s.chart, s.rules)
}

// DeriveAll derives journal entries for all transactions in order.
func (s *Service) DeriveAll(txs []model.Transaction) []model.JournalEntry {
	entries := make([]model.JournalEntry, 0, len(txs))
	for _, tx := range txs {
		entries = append(entries, s.Derive(tx))
	}
	return entries
}

// IncomeStatement derives entries for txs, merges any imported
// pass-through entries, and aggregates the report. Imported entries
// never contribute to the figures; they are carried so callers see one
// consistent entry list.
func (s *Service) IncomeStatement(txs []model.Transaction, imported []model.JournalEntry) (model.IncomeStatement, []model.JournalEntry) {
	entries := s.DeriveAll(txs)
	entries = append(entries, imported...)
	return Aggregate(entries), entries
}

// Check validates all entries derivable from txs plus the imported
// set against the chart.
func (s *Service) Check(txs []model.Transaction, imported []model.JournalEntry) []ValidationError {
	entries := s.DeriveAll(txs)
	entries = append(entries, imported...)
	return ValidateEntries(entries, s.chart)
}
