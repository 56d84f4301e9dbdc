package store

import (
	"errors"
	"path/filepath"

	"fjacquet/fintrack/internal/fileutils"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
)

const backupSuffix = ".bak"

// FileStore keeps the collection in one file. Writes go to a temporary file
// in the same directory which is then renamed over the target. With backups
// enabled the previous content is kept in <path>.bak and used when the main
// file cannot be decoded.
type FileStore struct {
	path   string
	format Format
	backup bool
	logger logging.Logger
}

// NewFileStore creates a FileStore. The file itself is created on first Save.
func NewFileStore(path string, format Format, backup bool, logger logging.Logger) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("file store path cannot be empty")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &FileStore{path: path, format: format.orDefault(), backup: backup, logger: logger}, nil
}

func (s *FileStore) Name() string { return "file:" + s.path }

// Path returns the location of the store file.
func (s *FileStore) Path() string { return s.path }

// BackupPath returns the location of the backup file.
func (s *FileStore) BackupPath() string { return s.path + backupSuffix }

// Load reads the collection. A missing file yields an empty collection.
func (s *FileStore) Load() ([]models.Transaction, error) {
	data, ok, err := fileutils.ReadFileIfExists(s.path)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.Debug("Store file not found, starting empty",
			logging.Field{Key: logging.FieldPath, Value: s.path})
		return []models.Transaction{}, nil
	}
	if err := fileutils.CheckPermissions(s.path); err != nil {
		s.logger.WithError(err).Warn("Store file is readable by other users",
			logging.Field{Key: logging.FieldPath, Value: s.path})
	}

	txs, decodeErr := s.format.Decode(data)
	if decodeErr == nil {
		return txs, nil
	}

	if backup, ok := s.loadBackup(); ok {
		s.logger.WithError(decodeErr).Warn("Store file is corrupt, recovered from backup",
			logging.Field{Key: logging.FieldPath, Value: s.path},
			logging.Field{Key: logging.FieldCount, Value: len(backup)})
		return backup, nil
	}
	return nil, &CorruptPayloadError{Source: s.path, Err: decodeErr}
}

func (s *FileStore) loadBackup() ([]models.Transaction, bool) {
	if !s.backup {
		return nil, false
	}
	data, ok, err := fileutils.ReadFileIfExists(s.BackupPath())
	if err != nil || !ok {
		return nil, false
	}
	txs, err := s.format.Decode(data)
	if err != nil {
		return nil, false
	}
	return txs, true
}

// Save replaces the stored collection.
func (s *FileStore) Save(txs []models.Transaction) error {
	data, err := s.format.Encode(txs)
	if err != nil {
		return err
	}

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(s.path)); err != nil {
		return err
	}

	if s.backup {
		if err := s.writeBackup(); err != nil {
			return err
		}
	}

	if err := fileutils.WriteFileAtomic(s.path, data); err != nil {
		return err
	}
	s.logger.Debug("Saved transactions",
		logging.Field{Key: logging.FieldPath, Value: s.path},
		logging.Field{Key: logging.FieldCount, Value: len(txs)})
	return nil
}

// writeBackup copies the current file to the backup location, provided the
// current file still decodes. A corrupt main file never replaces a good backup.
func (s *FileStore) writeBackup() error {
	current, ok, err := fileutils.ReadFileIfExists(s.path)
	if err != nil || !ok {
		return err
	}
	if _, err := s.format.Decode(current); err != nil {
		return nil
	}
	return fileutils.WriteFileAtomic(s.BackupPath(), current)
}

func (s *FileStore) Close() error { return nil }
