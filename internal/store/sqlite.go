package store

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteStore keeps the collection as a JSON value in a key-value table.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	key    string
	logger logging.Logger
}

// NewSQLiteStore opens (creating if needed) the database at path and applies
// pending migrations. An empty key selects DefaultKey.
func NewSQLiteStore(path, key string, logger logging.Logger) (*SQLiteStore, error) {
	if path == "" {
		return nil, errors.New("sqlite store path cannot be empty")
	}
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	if err := RunMigrations(path); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &SQLiteStore{db: db, path: path, key: key, logger: logger}, nil
}

// RunMigrations applies the embedded migrations on a dedicated connection.
func RunMigrations(dbPath string) error {
	migrateDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	driver, err := sqlite.WithInstance(migrateDB, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Name() string { return fmt.Sprintf("sqlite:%s#%s", s.path, s.key) }

// Load reads the value stored under the store key.
func (s *SQLiteStore) Load() ([]models.Transaction, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		s.logger.Debug("No stored collection, starting empty",
			logging.Field{Key: logging.FieldKey, Value: s.key})
		return []models.Transaction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.key, err)
	}

	txs, err := FormatJSON.Decode(value)
	if err != nil {
		return nil, &CorruptPayloadError{Source: s.Name(), Err: err}
	}
	return txs, nil
}

// Save upserts the collection in a single transaction.
func (s *SQLiteStore) Save(txs []models.Transaction) error {
	value, err := FormatJSON.Encode(txs)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.key, value, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("upsert %s: %w", s.key, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}

	s.logger.Debug("Saved transactions",
		logging.Field{Key: logging.FieldKey, Value: s.key},
		logging.Field{Key: logging.FieldCount, Value: len(txs)})
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
