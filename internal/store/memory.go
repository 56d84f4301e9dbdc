package store

import (
	"sync"

	"fjacquet/fintrack/internal/models"
)

// MemoryStore keeps the collection for the lifetime of the process.
type MemoryStore struct {
	mu  sync.Mutex
	txs []models.Transaction
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Name() string { return "memory" }

func (m *MemoryStore) Load() ([]models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return clone(m.txs), nil
}

func (m *MemoryStore) Save(txs []models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.txs = clone(txs)
	return nil
}

func (m *MemoryStore) Close() error { return nil }

func clone(txs []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(txs))
	copy(out, txs)
	return out
}
