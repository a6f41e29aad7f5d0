package file

import "go.uber.org/zap"

// Option configures a Store.
type Option func(*Store) error

// WithLogger sets the logger of the Store.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) error {
		s.logger = logger
		return nil
	}
}
