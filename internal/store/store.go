// Package store persists the transaction collection as a single value: a
// file on disk, a row of a SQLite key-value table or an in-memory slot.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
)

// TransactionStore loads and overwrites the whole collection.
//
// Load returns an empty collection and a nil error when nothing was saved
// yet. Save replaces the stored collection atomically: a failed Save leaves
// the previously stored collection readable.
type TransactionStore interface {
	Load() ([]models.Transaction, error)
	Save(txs []models.Transaction) error
	Close() error
	Name() string
}

// Backend names a TransactionStore implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// DefaultKey is the key the collection is stored under in key-value backends.
const DefaultKey = "transactions"

// Options configures Open.
type Options struct {
	Backend Backend
	Path    string // empty selects DefaultPath
	Format  Format // file backend only
	Key     string // sqlite backend only
	Backup  bool   // file backend only
}

// Open creates the store described by opts.
func Open(opts Options, logger logging.Logger) (TransactionStore, error) {
	if opts.Path == "" && opts.Backend != BackendMemory {
		p, err := DefaultPath(opts.Backend, opts.Format)
		if err != nil {
			return nil, err
		}
		opts.Path = p
	}

	switch opts.Backend {
	case BackendFile, "":
		return NewFileStore(opts.Path, opts.Format, opts.Backup, logger)
	case BackendSQLite:
		return NewSQLiteStore(opts.Path, opts.Key, logger)
	case BackendMemory:
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
}

// DefaultPath returns the store location under $HOME/.fintrack.
func DefaultPath(backend Backend, format Format) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	name := "transactions." + string(format.orDefault())
	if backend == BackendSQLite {
		name = "fintrack.db"
	}
	return filepath.Join(home, ".fintrack", name), nil
}

// ParseBackend parses a backend name case-insensitively.
func ParseBackend(s string) (Backend, error) {
	b := Backend(strings.ToLower(strings.TrimSpace(s)))
	switch b {
	case BackendFile, BackendSQLite, BackendMemory:
		return b, nil
	}
	return "", fmt.Errorf("unknown store backend %q (expected file, sqlite or memory)", s)
}

// CorruptPayloadError reports a stored value that could not be decoded.
type CorruptPayloadError struct {
	Source string
	Err    error
}

func (e *CorruptPayloadError) Error() string {
	return fmt.Sprintf("corrupt payload in %s: %v", e.Source, e.Err)
}

func (e *CorruptPayloadError) Unwrap() error {
	return e.Err
}
