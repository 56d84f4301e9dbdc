package store

import (
	"errors"
	"path/filepath"
	"testing"

	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	logger := logging.NewMockLogger()

	tests := []struct {
		name     string
		opts     Options
		wantType interface{}
		wantErr  bool
	}{
		{name: "file", opts: Options{Backend: BackendFile, Path: filepath.Join(dir, "t.json")}, wantType: &FileStore{}},
		{name: "empty backend is file", opts: Options{Path: filepath.Join(dir, "t2.yaml"), Format: FormatYAML}, wantType: &FileStore{}},
		{name: "sqlite", opts: Options{Backend: BackendSQLite, Path: filepath.Join(dir, "t.db")}, wantType: &SQLiteStore{}},
		{name: "memory", opts: Options{Backend: BackendMemory}, wantType: &MemoryStore{}},
		{name: "unknown", opts: Options{Backend: "redis", Path: filepath.Join(dir, "x")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(tt.opts, logger)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer s.Close()
			assert.IsType(t, tt.wantType, s)
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	p, err := DefaultPath(BackendFile, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".fintrack", "transactions.json"), p)

	p, err = DefaultPath(BackendFile, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".fintrack", "transactions.yaml"), p)

	p, err = DefaultPath(BackendSQLite, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", ".fintrack", "fintrack.db"), p)
}

func TestParseBackendAndFormat(t *testing.T) {
	b, err := ParseBackend(" SQLite ")
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, b)
	_, err = ParseBackend("postgres")
	assert.Error(t, err)

	f, err := ParseFormat("yml")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)
	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)
	_, err = ParseFormat("csv")
	assert.Error(t, err)
}

func TestFormat_DecodeEmpty(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML} {
		txs, err := f.Decode([]byte("  \n"))
		require.NoError(t, err)
		assert.Empty(t, txs)

		data, err := f.Encode(nil)
		require.NoError(t, err)
		txs, err = f.Decode(data)
		require.NoError(t, err)
		assert.Empty(t, txs)
	}
}

func TestMemoryStore_CopiesOnSaveAndLoad(t *testing.T) {
	m := NewMemoryStore()
	txs := sample()
	require.NoError(t, m.Save(txs))

	txs[0].Description = "changed"
	got, err := m.Load()
	require.NoError(t, err)
	assert.NotEqual(t, "changed", got[0].Description)

	got[1].Category = "changed"
	again, _ := m.Load()
	assert.Equal(t, "Salary", again[1].Category)
}

func TestMockStore(t *testing.T) {
	m := &MockStore{Transactions: sample(), LoadError: errors.New("boom")}
	_, err := m.Load()
	assert.EqualError(t, err, "boom")

	m.SetSaveError(errors.New("disk full"))
	assert.Error(t, m.Save([]models.Transaction{}))
	assert.Equal(t, 1, m.SaveCount())
	assert.Len(t, m.Transactions, 2, "failed save leaves stored data untouched")
}
