package shell

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// EnvStore is the default SecretStore which reads secrets from the environment
// of the process.
type EnvStore struct{}

// NewEnvStore creates a new EnvStore. Any given dotenv files are loaded into
// the environment first. Variables that are already set are not overwritten.
func NewEnvStore(files ...string) (*EnvStore, error) {
	if len(files) > 0 {
		err := godotenv.Load(files...)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load dotenv files")
		}
	}

	return new(EnvStore), nil
}

// Secret implements the SecretStore interface via os.LookupEnv.
func (*EnvStore) Secret(key string) (string, bool, error) {
	value, ok := os.LookupEnv(key)
	return value, ok, nil
}

// MapStore is a SecretStore that is backed by a map. The map is not copied so
// it must not be modified while the store is in use.
type MapStore map[string]string

// Secret implements the SecretStore interface.
func (m MapStore) Secret(key string) (string, bool, error) {
	value, ok := m[key]
	return value, ok, nil
}
