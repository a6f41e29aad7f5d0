package shell

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Config is the configuration of a Service that can be changed during setup
// in a Module and is passed to Component.Build. Some settings such as the
// Logger are read only and can only be accessed via the corresponding getter
// function of the Config.
type Config struct {
	Context        context.Context
	Name           string
	HandlerTimeout time.Duration

	logger *zap.Logger
	store  SecretStore
	errs   []error
}

// NewConfig creates a new Config. For the typical use case you do not have to
// create a Config yourself but rather configure a Service by passing the
// corresponding Modules to shell.New(…).
func NewConfig(ctx context.Context, name string, logger *zap.Logger, store SecretStore) *Config {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Config{
		Context: ctx,
		Name:    name,
		logger:  logger,
		store:   store,
	}
}

// Logger returns a new named logger.
func (c *Config) Logger(name string) *zap.Logger {
	return c.logger.Named(name)
}

// SecretStore returns the store the secrets of the Service are loaded from.
func (c *Config) SecretStore() SecretStore {
	return c.store
}

// Dispatcher returns a new Dispatcher that uses a named logger and the
// configured handler timeout.
func (c *Config) Dispatcher(name string) *Dispatcher {
	return NewDispatcher(c.Logger(name), c.HandlerTimeout)
}

// A Module is an optional extension of a Service that is applied before the
// secrets are loaded.
type Module interface {
	Apply(*Config) error
}

// ModuleFunc is a function implementation of a Module.
type ModuleFunc func(*Config) error

// Apply implements the Module interface.
func (f ModuleFunc) Apply(conf *Config) error {
	return f(conf)
}

// WithContext is an option to replace the default context of a Service.
func WithContext(ctx context.Context) Module {
	return ModuleFunc(func(conf *Config) error {
		conf.Context = ctx
		return nil
	})
}

// WithHandlerTimeout is an option to set a timeout on event handler functions.
// By default no timeout is enforced.
func WithHandlerTimeout(timeout time.Duration) Module {
	return ModuleFunc(func(conf *Config) error {
		conf.HandlerTimeout = timeout
		return nil
	})
}

// WithLogger is an option to replace the default logger of a Service.
func WithLogger(logger *zap.Logger) Module {
	return ModuleFunc(func(conf *Config) error {
		conf.logger = logger
		return nil
	})
}

// WithSecretStore is an option to replace the default SecretStore which reads
// secrets from the environment.
func WithSecretStore(store SecretStore) Module {
	return ModuleFunc(func(conf *Config) error {
		conf.store = store
		return nil
	})
}
