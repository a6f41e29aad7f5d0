package discord

import (
	"github.com/fgrosse/shell"
)

// Names of the secrets the chat bot shell requires.
const (
	SecretToken   = "DISCORD_TOKEN"
	SecretGuildID = "GUILD_ID"
)

// Component is the shell.Component of the chat bot shell.
type Component struct{}

// NewComponent creates a new discord Component.
func NewComponent() *Component {
	return new(Component)
}

// Name implements the shell.Component interface.
func (*Component) Name() string {
	return "discord-bot"
}

// RequiredSecrets implements the shell.Component interface.
func (*Component) RequiredSecrets() []string {
	return []string{SecretToken, SecretGuildID}
}

// Build implements the shell.Component interface by creating the Bot and the
// gateway Client.
func (*Component) Build(secrets shell.Secrets, conf *shell.Config) (shell.Runtime, error) {
	bot := NewBot(secrets.Get(SecretGuildID), conf.Logger("bot"))
	client, err := NewClient(secrets.Get(SecretToken), bot, conf.Dispatcher("events"), conf.Logger("discord"))
	if err != nil {
		return nil, err
	}

	return client, nil
}
