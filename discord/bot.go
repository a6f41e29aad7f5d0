package discord

import (
	"context"

	"go.uber.org/zap"

	"github.com/fgrosse/shell"
)

// Bot is the shell.ChatHandler of the chat bot shell.
type Bot struct {
	GuildID string // guild the bot serves, retained but not used yet

	logger *zap.Logger
}

// NewBot creates a new Bot for the given guild. If the passed logger is nil it
// will fallback to the zap.NewNop() logger.
func NewBot(guildID string, logger *zap.Logger) *Bot {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Bot{GuildID: guildID, logger: logger}
}

// Ready implements the shell.ChatHandler interface by logging that the bot is
// listening for events.
func (b *Bot) Ready(context.Context, shell.ReadyEvent) {
	b.logger.Info("The bot has successfully started and is now listening events...")
}

// Message implements the shell.ChatHandler interface. Handling messages does
// not exist yet so it always returns shell.ErrNotImplemented.
func (*Bot) Message(context.Context, shell.MessageEvent) error {
	return shell.ErrNotImplemented
}
