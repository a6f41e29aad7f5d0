// Package bootstrap wires the Settings of a process into a running Service.
package bootstrap

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fgrosse/shell"
	"github.com/fgrosse/shell/secrets/file"
	"github.com/fgrosse/shell/secrets/redis"
)

// SecretStore selects the SecretStore of the process. A redis address takes
// precedence over a secrets file which takes precedence over the environment.
// The environment store first loads the configured dotenv files.
func SecretStore(s shell.Settings, logger *zap.Logger) (shell.SecretStore, error) {
	switch {
	case s.RedisAddr != "":
		store, err := redis.NewStore(s.RedisAddr,
			redis.WithKey(s.RedisKey),
			redis.WithLogger(logger.Named("secrets")),
		)
		if err != nil {
			return nil, err
		}
		return store, nil

	case s.SecretsFile != "":
		store, err := file.NewStore(s.SecretsFile, file.WithLogger(logger.Named("secrets")))
		if err != nil {
			return nil, err
		}
		return store, nil

	default:
		store, err := shell.NewEnvStore(s.DotenvFiles...)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
}

// NewService creates a Service for the component that is configured via the
// Settings.
func NewService(s shell.Settings, component shell.Component, logger *zap.Logger) (*shell.Service, error) {
	store, err := SecretStore(s, logger)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create secret store")
	}

	modules := append(s.Modules(store), shell.WithLogger(logger))
	return shell.New(component, modules...), nil
}

// Main is the entry point of the service binaries. It loads the Settings,
// creates the component and runs it. Any startup error is fatal.
func Main(newComponent func(shell.Settings) shell.Component) {
	settings, err := shell.LoadSettings()
	if err != nil {
		fatal(err)
	}

	logger, err := shell.NewLogger(settings.LogLevel)
	if err != nil {
		fatal(err)
	}

	defer func() { _ = logger.Sync() }()

	service, err := NewService(settings, newComponent(settings), logger)
	if err != nil {
		logger.Fatal(err.Error())
	}

	err = service.Run()
	if err != nil {
		logger.Fatal(err.Error(), zap.Strings("missing_secrets", shell.MissingSecrets(err)))
	}
}

func fatal(err error) {
	logger, _ := zap.NewProduction()
	if logger == nil {
		logger = zap.NewExample()
	}
	logger.Fatal(err.Error())
}
