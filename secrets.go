package shell

import (
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// A SecretStore provides sensitive configuration by name. The shell only reads
// from a store and never writes to it. Implementations must return ok == false
// (and no error) if the key simply does not exist.
type SecretStore interface {
	Secret(key string) (value string, ok bool, err error)
}

// Secrets is an immutable set of secrets that were loaded from a SecretStore.
// It is passed by value to the components that need it.
type Secrets struct {
	values map[string]string
}

// LoadSecrets reads all given keys from the store. Every key that is absent is
// reported as *ConfigurationError and all of them are combined into the
// returned error so the caller sees every missing secret at once. If the store
// itself fails the function returns immediately.
func LoadSecrets(store SecretStore, keys ...string) (Secrets, error) {
	values := make(map[string]string, len(keys))

	var missing []error
	for _, key := range keys {
		value, ok, err := store.Secret(key)
		if err != nil {
			return Secrets{}, errors.Wrapf(err, "failed to read secret %q", key)
		}

		if !ok {
			missing = append(missing, &ConfigurationError{Key: key})
			continue
		}

		values[key] = value
	}

	if len(missing) > 0 {
		return Secrets{}, multierr.Combine(missing...)
	}

	return Secrets{values: values}, nil
}

// Get returns the value of a loaded secret or the empty string.
func (s Secrets) Get(key string) string {
	return s.values[key]
}

// Lookup returns the value of a loaded secret and whether it was loaded at all.
func (s Secrets) Lookup(key string) (string, bool) {
	value, ok := s.values[key]
	return value, ok
}

// Keys returns the sorted names of all loaded secrets.
func (s Secrets) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}

	sort.Strings(keys)
	return keys
}

// Len returns the number of loaded secrets.
func (s Secrets) Len() int {
	return len(s.values)
}
