package shell

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// The Dispatcher executes event handlers on behalf of a Runtime. It recovers
// handler panics, enforces an optional timeout and logs every handler error.
// The Dispatcher holds no state across invocations so it can be used by
// concurrent goroutines of the Runtime.
type Dispatcher struct {
	logger  *zap.Logger
	timeout time.Duration // zero means no timeout
}

// NewDispatcher creates a new Dispatcher. If the passed logger is nil it will
// fallback to the zap.NewNop() logger.
func NewDispatcher(logger *zap.Logger, timeout time.Duration) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Dispatcher{
		logger:  logger,
		timeout: timeout,
	}
}

// Dispatch runs the handler function for the named event and returns its
// error. A failing handler only fails this invocation.
func (d *Dispatcher) Dispatch(ctx context.Context, event string, fun func(context.Context) error) error {
	d.logger.Debug("Handling new event", zap.String("event_type", event))

	err := d.execute(ctx, fun)
	if err != nil {
		d.logger.Error("Event handler failed",
			zap.String("event_type", event),
			zap.Error(err),
		)
	}

	return err
}

func (d *Dispatcher) execute(ctx context.Context, fun func(context.Context) error) error {
	if d.timeout <= 0 {
		return safeCall(ctx, fun)
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	done := make(chan error, 1) // the handler may still finish after a timeout
	go func() {
		done <- safeCall(ctx, fun)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func safeCall(ctx context.Context, fun func(context.Context) error) (handlerErr error) {
	defer func() {
		if err := recover(); err != nil {
			handlerErr = errors.Errorf("handler panic: %v", err)
		}
	}()

	return fun(ctx)
}
