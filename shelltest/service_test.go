package shelltest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fgrosse/shell"
)

func TestNewService(t *testing.T) {
	component := &Component{Secrets: []string{"A"}}
	store := NewStore(t, map[string]string{"A": "a"})

	s := NewService(t, component, shell.WithSecretStore(store))
	assert.Equal(t, "test", s.Name)
	assert.Equal(t, context.Background(), s.Context)

	rt, err := s.Setup()
	require.NoError(t, err)
	assert.IsType(t, new(Runtime), rt)
	require.Len(t, component.Builds(), 1)
	assert.Equal(t, "a", component.Builds()[0].Get("A"))
}

func TestRuntime(t *testing.T) {
	rt := new(Runtime)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- rt.Run(ctx)
	}()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("timeout")
	}

	assert.Equal(t, 1, rt.Runs())
}
