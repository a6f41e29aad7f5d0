// Package shelltest implements helpers to write unit tests for service shells.
package shelltest

import "go.uber.org/zap/zaptest"

// TestingT is the minimum required subset of the testing API used in the
// shelltest package. TestingT is implemented both by *testing.T and *testing.B.
type TestingT interface {
	zaptest.TestingT
	Helper()
	Fatal(args ...interface{})
}
