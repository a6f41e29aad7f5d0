package shell

import (
	"context"

	"github.com/fraugster/cli"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// A Service runs a single Component. On startup it loads the secrets the
// Component requires, lets it build its handlers and Runtime and then hands
// control to that Runtime until the context of the Service is done.
type Service struct {
	Context   context.Context
	Name      string
	Logger    *zap.Logger
	Component Component

	conf    *Config
	initErr error // any error when we created the service
}

// New creates a new Service for the given Component. By default the Service
// uses a context that is canceled on SIGINT or SIGTERM, a production logger
// and reads secrets from the environment.
func New(component Component, modules ...Module) *Service {
	conf := &Config{
		Context: cli.Context(),
		Name:    component.Name(),
		store:   new(EnvStore),
	}

	for _, mod := range modules {
		err := mod.Apply(conf)
		if err != nil {
			conf.errs = append(conf.errs, err)
		}
	}

	if conf.logger == nil {
		conf.logger = defaultLogger()
	}

	return &Service{
		Context:   conf.Context,
		Name:      conf.Name,
		Logger:    conf.logger,
		Component: component,
		conf:      conf,
		initErr:   multierr.Combine(conf.errs...),
	}
}

func defaultLogger() *zap.Logger {
	logger, err := NewLogger("info")
	if err != nil {
		return zap.NewNop()
	}

	return logger
}

// Setup loads all required secrets of the Component and builds its Runtime.
// If any secret is missing Setup returns the corresponding ConfigurationError
// and no handler is constructed.
func (s *Service) Setup() (Runtime, error) {
	if s.initErr != nil {
		return nil, errors.Wrap(s.initErr, "failed to initialize service")
	}

	if s.conf.store == nil {
		return nil, errors.New("failed to initialize service: no secret store")
	}

	keys := s.Component.RequiredSecrets()
	s.Logger.Debug("Loading secrets", zap.Strings("keys", keys))

	secrets, err := LoadSecrets(s.conf.store, keys...)
	if err != nil {
		return nil, err
	}

	rt, err := s.Component.Build(secrets, s.conf)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build %s", s.Name)
	}

	return rt, nil
}

// Run sets up the Service and blocks until its Runtime returns.
func (s *Service) Run() error {
	s.Logger.Info("Initializing service", zap.String("name", s.Name))
	rt, err := s.Setup()
	if err != nil {
		return err
	}

	for _, r := range rt.Registrations() {
		s.Logger.Info("Registered handler",
			zap.String("trigger", r.Trigger),
			zap.String("handler", r.Handler),
		)
	}

	s.Logger.Info("Service initialized and ready to operate", zap.String("name", s.Name))
	err = rt.Run(s.Context)
	s.Logger.Info("Service is shutting down", zap.String("name", s.Name))

	return errors.Wrap(err, "runtime failed")
}
