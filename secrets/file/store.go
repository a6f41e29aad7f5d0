// Package file implements a SecretStore that reads secrets from a dotenv file.
package file

import (
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Store is a SecretStore that holds all secrets of a single file. The file is
// read once in NewStore and never written.
type Store struct {
	path   string
	logger *zap.Logger
	data   map[string]string
}

// NewStore reads the secrets file at the given path. Lines have the dotenv
// format (i.e. KEY=value). A missing file is an error.
func NewStore(path string, opts ...Option) (*Store, error) {
	store := &Store{path: path}

	for _, opt := range opts {
		err := opt(store)
		if err != nil {
			return nil, err
		}
	}

	if store.logger == nil {
		store.logger = zap.NewNop()
	}

	store.logger.Debug("Opening secrets file", zap.String("path", path))
	data, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read secrets file")
	}

	store.data = data
	store.logger.Info("Secrets file loaded successfully",
		zap.String("path", path),
		zap.Int("num_secrets", len(data)),
	)

	return store, nil
}

// Secret implements the shell.SecretStore interface.
func (s *Store) Secret(key string) (string, bool, error) {
	s.logger.Debug("Retrieving secret", zap.String("key", key))
	value, ok := s.data[key]
	return value, ok, nil
}

// Path returns the path of the secrets file.
func (s *Store) Path() string {
	return s.path
}
