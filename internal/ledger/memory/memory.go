package memory

import (
	"context"
	"sync"

	"ledgerbot/internal/core"
)

// Store is an in-memory ledger used by tests and local runs without
// spreadsheet credentials.
type Store struct {
	mu       sync.Mutex
	expenses []core.ExpenseRow
	earnings []core.EarningRow
}

func New() *Store {
	return &Store{}
}

// AppendExpense stores the row after boundary validation, like the real store.
func (s *Store) AppendExpense(_ context.Context, row core.ExpenseRow) error {
	if err := row.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append(s.expenses, row)
	return nil
}

// AppendEarning stores the row after boundary validation.
func (s *Store) AppendEarning(_ context.Context, row core.EarningRow) error {
	if err := row.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.earnings = append(s.earnings, row)
	return nil
}

// Expenses returns a copy of the stored expense rows.
func (s *Store) Expenses(_ context.Context) ([]core.ExpenseRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.ExpenseRow(nil), s.expenses...), nil
}

// Earnings returns a copy of the stored earning rows.
func (s *Store) Earnings(_ context.Context) ([]core.EarningRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.EarningRow(nil), s.earnings...), nil
}

// SeedExpenses loads rows without validation, for tests that need malformed data.
func (s *Store) SeedExpenses(rows ...core.ExpenseRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append(s.expenses, rows...)
}

// SeedEarnings loads rows without validation, for tests that need malformed data.
func (s *Store) SeedEarnings(rows ...core.EarningRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.earnings = append(s.earnings, rows...)
}
