package store

import (
	"sync"

	"fjacquet/fintrack/internal/models"
)

// MockStore is a TransactionStore for tests with configurable failures.
type MockStore struct {
	mu sync.Mutex

	Transactions []models.Transaction

	// Error flags for testing error conditions
	LoadError  error
	SaveError  error
	CloseError error

	// SaveCalls records every collection passed to Save, including failed ones.
	SaveCalls [][]models.Transaction
}

func (m *MockStore) Name() string { return "mock" }

func (m *MockStore) Load() ([]models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	return clone(m.Transactions), nil
}

func (m *MockStore) Save(txs []models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls = append(m.SaveCalls, clone(txs))
	if m.SaveError != nil {
		return m.SaveError
	}
	m.Transactions = clone(txs)
	return nil
}

func (m *MockStore) Close() error { return m.CloseError }

// SaveCount returns the number of Save calls.
func (m *MockStore) SaveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.SaveCalls)
}

// SetSaveError changes the Save failure under the lock.
func (m *MockStore) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveError = err
}
