// Package repository owns the in-memory transaction collection. Every
// mutation is validated, applied under a single-writer lock and then
// persisted through the store. The in-memory collection stays authoritative
// when persistence fails.
package repository

import (
	"errors"
	"fmt"
	"sync"

	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/notify"
)

// ErrNotFound is returned for ids that are not in the collection.
var ErrNotFound = errors.New("transaction not found")

// maxIDAttempts bounds retries when the generator returns an id already issued.
const maxIDAttempts = 8

// Store is the persistence port used by the repository.
type Store interface {
	Load() ([]models.Transaction, error)
	Save(txs []models.Transaction) error
}

// Repository is the authoritative transaction collection.
type Repository struct {
	mu       sync.RWMutex
	txs      []models.Transaction
	issued   map[models.ID]struct{}
	store    Store
	logger   logging.Logger
	notifier notify.Notifier
	clock    Clock
	newID    IDGenerator
}

// Option customizes a Repository.
type Option func(*Repository)

func WithLogger(l logging.Logger) Option    { return func(r *Repository) { r.logger = l } }
func WithNotifier(n notify.Notifier) Option { return func(r *Repository) { r.notifier = n } }
func WithClock(c Clock) Option              { return func(r *Repository) { r.clock = c } }
func WithIDGenerator(g IDGenerator) Option  { return func(r *Repository) { r.newID = g } }

// New creates an empty repository backed by store. Call Load to read the
// persisted collection.
func New(store Store, opts ...Option) *Repository {
	r := &Repository{
		store:    store,
		issued:   make(map[models.ID]struct{}),
		notifier: notify.Discard,
		clock:    SystemClock{},
		newID:    UUIDv7,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logging.GetLogger()
	}
	return r
}

// Load replaces the collection with the stored one. A store that cannot be
// read yields an empty collection; the failure is logged and notified.
// Stored records that are incomplete or reuse an id are skipped.
func (r *Repository) Load() {
	txs, err := r.store.Load()
	if err != nil {
		r.logger.WithError(err).Warn("Failed to load transactions, starting empty",
			logging.Field{Key: logging.FieldOperation, Value: logging.OpLoad})
		r.notifier.Notify(notify.Warning, "Saved transactions could not be read; starting with an empty list")
		txs = nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.txs = make([]models.Transaction, 0, len(txs))
	r.issued = make(map[models.ID]struct{}, len(txs))
	skipped := 0
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			skipped++
			r.logger.WithError(err).Warn("Skipping invalid stored transaction",
				logging.Field{Key: logging.FieldTransactionID, Value: string(tx.ID)})
			continue
		}
		if _, dup := r.issued[tx.ID]; dup {
			skipped++
			r.logger.Warn("Skipping stored transaction with duplicate id",
				logging.Field{Key: logging.FieldTransactionID, Value: string(tx.ID)})
			continue
		}
		r.issued[tx.ID] = struct{}{}
		r.txs = append(r.txs, tx)
	}

	r.logger.Info("Loaded transactions",
		logging.Field{Key: logging.FieldCount, Value: len(r.txs)},
		logging.Field{Key: "skipped", Value: skipped})
}

// All returns a copy of the collection in insertion order.
func (r *Repository) All() []models.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Transaction, len(r.txs))
	copy(out, r.txs)
	return out
}

// Len returns the number of transactions.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.txs)
}

// Get returns the transaction with the given id.
func (r *Repository) Get(id models.ID) (models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		return r.txs[i], nil
	}
	return models.Transaction{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Add validates d, assigns a fresh id, appends the transaction and persists
// the collection. An empty draft date defaults to today.
func (r *Repository) Add(d models.Draft) (models.Transaction, error) {
	if err := d.Validate(); err != nil {
		return models.Transaction{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.nextID()
	if err != nil {
		return models.Transaction{}, err
	}
	tx := d.Build(id, models.Today(r.clock.Now()))
	r.txs = append(r.txs, tx)
	r.issued[id] = struct{}{}

	r.logger.Info("Added transaction",
		logging.Field{Key: logging.FieldOperation, Value: logging.OpAdd},
		logging.Field{Key: logging.FieldTransactionID, Value: string(id)},
		logging.Field{Key: logging.FieldCategory, Value: tx.Category})
	r.persist(logging.OpAdd, fmt.Sprintf("%s added", tx.Type))
	return tx, nil
}

// Edit replaces every field of the transaction id with the values of d. The
// id is kept. An empty draft date defaults to today.
func (r *Repository) Edit(id models.ID, d models.Draft) (models.Transaction, error) {
	if err := d.Validate(); err != nil {
		return models.Transaction{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Transaction{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	tx := d.Build(id, models.Today(r.clock.Now()))
	r.txs[i] = tx

	r.logger.Info("Updated transaction",
		logging.Field{Key: logging.FieldOperation, Value: logging.OpEdit},
		logging.Field{Key: logging.FieldTransactionID, Value: string(id)})
	r.persist(logging.OpEdit, fmt.Sprintf("%s updated", tx.Type))
	return tx, nil
}

// Delete removes the transaction id. Its id is never issued again.
func (r *Repository) Delete(id models.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	removed := r.txs[i]
	r.txs = append(r.txs[:i:i], r.txs[i+1:]...)

	r.logger.Info("Deleted transaction",
		logging.Field{Key: logging.FieldOperation, Value: logging.OpDelete},
		logging.Field{Key: logging.FieldTransactionID, Value: string(id)})
	r.persist(logging.OpDelete, fmt.Sprintf("%s deleted", removed.Type))
	return nil
}

// persist saves the current collection. Must be called with r.mu held so
// snapshots reach the store in mutation order.
func (r *Repository) persist(op, success string) {
	snapshot := make([]models.Transaction, len(r.txs))
	copy(snapshot, r.txs)

	if err := r.store.Save(snapshot); err != nil {
		r.logger.WithError(err).Warn("Failed to save transactions; changes are kept in memory",
			logging.Field{Key: logging.FieldOperation, Value: op},
			logging.Field{Key: logging.FieldCount, Value: len(snapshot)})
		r.notifier.Notify(notify.Warning, success+", but it could not be saved")
		return
	}
	r.notifier.Notify(notify.Success, success+" successfully")
}

func (r *Repository) indexOf(id models.ID) int {
	for i, tx := range r.txs {
		if tx.ID == id {
			return i
		}
	}
	return -1
}

// nextID returns an id that was never issued by or loaded into this
// repository. Ids of deleted transactions stay reserved.
func (r *Repository) nextID() (models.ID, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		raw, err := r.newID()
		if err != nil {
			return "", fmt.Errorf("failed to generate id: %w", err)
		}
		id := models.ID(raw)
		if id == "" {
			continue
		}
		if _, used := r.issued[id]; !used {
			return id, nil
		}
	}
	return "", fmt.Errorf("failed to generate a unique id after %d attempts", maxIDAttempts)
}
