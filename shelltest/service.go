package shelltest

import (
	"context"
	"sync"

	"go.uber.org/zap/zaptest"

	"github.com/fgrosse/shell"
)

// NewService creates a new *shell.Service that can be used in unit tests. It
// uses a zaptest logger that sends all logs through the passed TestingT and a
// background context so tests are not affected by process signals. The given
// modules are applied afterwards so the caller can inject e.g. a Store.
func NewService(t TestingT, component shell.Component, modules ...shell.Module) *shell.Service {
	testModules := []shell.Module{
		shell.WithLogger(zaptest.NewLogger(t)),
		shell.WithContext(context.Background()),
		shell.WithSecretStore(shell.MapStore{}),
	}

	return shell.New(component, append(testModules, modules...)...)
}

// Component is a shell.Component that records the secrets it was built with.
type Component struct {
	ComponentName string
	Secrets       []string
	Runtime       shell.Runtime // returned by Build, defaults to a new Runtime
	BuildErr      error

	mu     sync.Mutex
	builds []shell.Secrets
}

// Name implements the shell.Component interface.
func (c *Component) Name() string {
	if c.ComponentName == "" {
		return "test"
	}
	return c.ComponentName
}

// RequiredSecrets implements the shell.Component interface.
func (c *Component) RequiredSecrets() []string {
	return c.Secrets
}

// Build implements the shell.Component interface.
func (c *Component) Build(secrets shell.Secrets, _ *shell.Config) (shell.Runtime, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.builds = append(c.builds, secrets)
	if c.BuildErr != nil {
		return nil, c.BuildErr
	}

	if c.Runtime == nil {
		c.Runtime = new(Runtime)
	}

	return c.Runtime, nil
}

// Builds returns the secrets of every Build call.
func (c *Component) Builds() []shell.Secrets {
	c.mu.Lock()
	defer c.mu.Unlock()

	builds := make([]shell.Secrets, len(c.builds))
	copy(builds, c.builds)
	return builds
}

// Runtime is a shell.Runtime that blocks in Run until the context is done.
type Runtime struct {
	Regs   []shell.Registration
	RunErr error // returned immediately by Run if set

	mu   sync.Mutex
	runs int
}

// Registrations implements the shell.Runtime interface.
func (r *Runtime) Registrations() []shell.Registration {
	return r.Regs
}

// Run implements the shell.Runtime interface.
func (r *Runtime) Run(ctx context.Context) error {
	r.mu.Lock()
	r.runs++
	r.mu.Unlock()

	if r.RunErr != nil {
		return r.RunErr
	}

	<-ctx.Done()
	return nil
}

// Runs returns how often Run was called.
func (r *Runtime) Runs() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs
}
