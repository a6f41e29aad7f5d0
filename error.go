package shell

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Error is the error type used by the shell. This allows errors to be defined
// as constants following https://dave.cheney.net/2016/04/07/constant-errors.
type Error string

// Error implements the "error" interface of the standard library.
func (err Error) Error() string {
	return string(err)
}

// ErrNotImplemented is returned by handlers for events whose behavior does not
// exist yet. It always fails the handler invocation that returned it.
const ErrNotImplemented = Error("not implemented")

// A ConfigurationError is returned when a required secret is absent from the
// SecretStore. It is fatal for the startup of a Service.
type ConfigurationError struct {
	Key string // the name of the missing secret
}

// Error implements the "error" interface.
func (err *ConfigurationError) Error() string {
	return fmt.Sprintf("missing required secret %q", err.Key)
}

// MissingSecrets returns the keys of all ConfigurationErrors contained in err,
// in the order in which they were detected. It returns nil if err does not
// contain any ConfigurationError.
func MissingSecrets(err error) []string {
	var keys []string
	for _, e := range multierr.Errors(err) {
		var confErr *ConfigurationError
		if errors.As(e, &confErr) {
			keys = append(keys, confErr.Key)
		}
	}

	return keys
}
