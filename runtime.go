package shell

import (
	"context"
)

// A Component describes one service shell. It declares which secrets it needs
// and builds its handlers and Runtime once all of them have been loaded.
// Build is never called if a required secret is missing.
type Component interface {
	Name() string
	RequiredSecrets() []string
	Build(Secrets, *Config) (Runtime, error)
}

// A Runtime is the external event dispatcher that owns the event loop, the
// network I/O and the lifecycle (e.g. an HTTP server or a chat gateway
// client). It invokes the handlers it was built with.
type Runtime interface {
	// Registrations returns the triggers that have handlers registered. The
	// result must not change after the Runtime was built.
	Registrations() []Registration

	// Run blocks until the context is done or the Runtime fails.
	Run(ctx context.Context) error
}

// A Registration maps an event trigger to a handler. The trigger is either a
// route (e.g. "GET /") or a chat event name (e.g. EventReady).
type Registration struct {
	Trigger string
	Handler string // human readable name of the handler
}

// String returns the trigger of the Registration.
func (r Registration) String() string {
	return r.Trigger
}

// A ChatHandler reacts to chat events with one method per event kind.
type ChatHandler interface {
	Ready(context.Context, ReadyEvent)
	Message(context.Context, MessageEvent) error
}
