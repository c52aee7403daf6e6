// Package store holds the session's transaction list. It is the only
// mutable state in the system: appends are the sole mutation, and the
// ledger re-derives from All() after every change.
package store

import "github.com/maxvelpelupessy-ctrl/Timothy-Maxvel-Pelupessy-ERP/internal/model"

// Store is an append-only, ordered transaction store. Not safe for
// concurrent use; the engine contract is single-threaded and the store
// belongs to the caller.
type Store struct {
	txs []model.Transaction
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// AppendOne appends a single transaction.
func (s *Store) AppendOne(tx model.Transaction) {
	s.txs = append(s.txs, tx)
}

// AppendBatch appends a batch in order. The whole batch lands at once,
// so a partially parsed import never becomes partially visible.
func (s *Store) AppendBatch(txs []model.Transaction) {
	s.txs = append(s.txs, txs...)
}

// All returns the transactions in append order. The returned slice is
// shared; callers must not mutate it.
func (s *Store) All() []model.Transaction {
	return s.txs
}

// Len returns the number of stored transactions.
func (s *Store) Len() int {
	return len(s.txs)
}
