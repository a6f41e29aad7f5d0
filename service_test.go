package shell_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fgrosse/shell"
	"github.com/fgrosse/shell/shelltest"
)

func TestService_Setup(t *testing.T) {
	store := shelltest.NewStore(t, map[string]string{
		"OAUTH_CLIENT_ID":     "a",
		"OAUTH_CLIENT_SECRET": "b",
	})

	rt := &shelltest.Runtime{Regs: []shell.Registration{{Trigger: "GET /"}}}
	component := &shelltest.Component{
		Secrets: []string{"OAUTH_CLIENT_ID", "OAUTH_CLIENT_SECRET"},
		Runtime: rt,
	}

	s := shelltest.NewService(t, component, shell.WithSecretStore(store))
	actual, err := s.Setup()
	require.NoError(t, err)
	assert.Equal(t, rt, actual)
	assert.Equal(t, []shell.Registration{{Trigger: "GET /"}}, actual.Registrations())

	builds := component.Builds()
	require.Len(t, builds, 1)
	assert.Equal(t, "a", builds[0].Get("OAUTH_CLIENT_ID"))
	assert.Equal(t, "b", builds[0].Get("OAUTH_CLIENT_SECRET"))
	assert.Equal(t, []string{"OAUTH_CLIENT_ID", "OAUTH_CLIENT_SECRET"}, store.Reads())
}

func TestService_Setup_MissingSecret(t *testing.T) {
	store := shelltest.NewStore(t, map[string]string{"GUILD_ID": "42"})
	component := &shelltest.Component{Secrets: []string{"DISCORD_TOKEN", "GUILD_ID"}}

	s := shelltest.NewService(t, component, shell.WithSecretStore(store))
	rt, err := s.Setup()
	require.Error(t, err)
	assert.Nil(t, rt)
	assert.Contains(t, err.Error(), "DISCORD_TOKEN")
	assert.Equal(t, []string{"DISCORD_TOKEN"}, shell.MissingSecrets(err))
	assert.Empty(t, component.Builds(), "no handler may be constructed if a secret is missing")

	store.AssertRead("DISCORD_TOKEN")
	store.AssertRead("GUILD_ID")
}

func TestService_Setup_StoreError(t *testing.T) {
	store := shelltest.NewStore(t, nil)
	store.Err = errors.New("redis is down")
	component := &shelltest.Component{Secrets: []string{"DISCORD_TOKEN"}}

	s := shelltest.NewService(t, component, shell.WithSecretStore(store))
	_, err := s.Setup()
	assert.EqualError(t, err, `failed to read secret "DISCORD_TOKEN": redis is down`)
	assert.Empty(t, component.Builds())
}

func TestService_Setup_BuildError(t *testing.T) {
	component := &shelltest.Component{BuildErr: errors.New("boom")}

	s := shelltest.NewService(t, component)
	_, err := s.Setup()
	assert.EqualError(t, err, "failed to build test: boom")
}

func TestService_ModuleErrors(t *testing.T) {
	modA := shell.ModuleFunc(func(conf *shell.Config) error {
		return errors.New("error in module A")
	})

	modB := shell.ModuleFunc(func(conf *shell.Config) error {
		return errors.New("error in module B")
	})

	component := new(shelltest.Component)
	s := shelltest.NewService(t, component, modA, modB)

	err := s.Run()
	assert.EqualError(t, err, "failed to initialize service: error in module A; error in module B")
	assert.Empty(t, component.Builds())
}

func TestService_NoSecretStore(t *testing.T) {
	s := shelltest.NewService(t, new(shelltest.Component), shell.WithSecretStore(nil))
	_, err := s.Setup()
	assert.EqualError(t, err, "failed to initialize service: no secret store")
}

func TestService_Run(t *testing.T) {
	obs, logs := observer.New(zap.InfoLevel)
	ctx, cancel := context.WithCancel(context.Background())

	rt := &shelltest.Runtime{Regs: []shell.Registration{
		{Trigger: shell.EventReady, Handler: "Ready"},
		{Trigger: shell.EventMessage, Handler: "Message"},
	}}
	component := &shelltest.Component{Runtime: rt}
	s := shelltest.NewService(t, component,
		shell.WithContext(ctx),
		shell.WithLogger(zap.New(obs)),
	)

	runErr := make(chan error, 1)
	go func() {
		runErr <- s.Run()
	}()

	require.Eventually(t, func() bool { return rt.Runs() == 1 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-runErr:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("timeout")
	}

	assert.Equal(t, 2, logs.FilterMessage("Registered handler").Len())
	assert.Equal(t, 1, logs.FilterMessage("Service initialized and ready to operate").Len())
	assert.Equal(t, 1, logs.FilterMessage("Service is shutting down").Len())
}

func TestService_Run_RuntimeError(t *testing.T) {
	rt := &shelltest.Runtime{RunErr: errors.New("gateway closed")}
	s := shelltest.NewService(t, &shelltest.Component{Runtime: rt})

	err := s.Run()
	assert.EqualError(t, err, "runtime failed: gateway closed")
}

func TestNew_Defaults(t *testing.T) {
	s := shell.New(&shelltest.Component{ComponentName: "example"})
	assert.Equal(t, "example", s.Name)
	assert.NotNil(t, s.Context)
	require.NotNil(t, s.Logger)
	assert.True(t, s.Logger.Core().Enabled(zap.InfoLevel), "default logger logs at info level")
	assert.False(t, s.Logger.Core().Enabled(zap.DebugLevel))
}

func TestNew_WithLogger(t *testing.T) {
	obs, logs := observer.New(zap.DebugLevel)
	logger := zap.New(obs)

	s := shell.New(&shelltest.Component{ComponentName: "example"}, shell.WithLogger(logger))
	assert.Same(t, logger, s.Logger)

	s.Logger.Info("test")
	assert.Equal(t, 1, logs.Len())
}
