package shelltest

import (
	"sync"
)

// Store is an in-memory shell.SecretStore for unit tests that records which
// keys were read.
type Store struct {
	T   TestingT
	Err error // returned by every read if set

	mu    sync.Mutex
	data  map[string]string
	reads []string
}

// NewStore creates a new Store containing the given secrets.
func NewStore(t TestingT, secrets map[string]string) *Store {
	data := make(map[string]string, len(secrets))
	for k, v := range secrets {
		data[k] = v
	}

	return &Store{T: t, data: data}
}

// Secret implements the shell.SecretStore interface.
func (s *Store) Secret(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reads = append(s.reads, key)
	if s.Err != nil {
		return "", false, s.Err
	}

	value, ok := s.data[key]
	return value, ok, nil
}

// Set assigns a secret.
func (s *Store) Set(key, value string) {
	s.mu.Lock()
	s.data[key] = value
	s.mu.Unlock()
}

// Delete removes a secret.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
}

// Reads returns all keys that were read from the Store in order.
func (s *Store) Reads() []string {
	s.mu.Lock()
	reads := make([]string, len(s.reads))
	copy(reads, s.reads)
	s.mu.Unlock()

	return reads
}

// AssertRead checks that the key was read at least once.
func (s *Store) AssertRead(key string) {
	s.T.Helper()
	for _, k := range s.Reads() {
		if k == key {
			return
		}
	}

	s.T.Errorf("Expected secret %q to be read but it was not", key)
}
