// Command discord-bot runs the chat bot shell on the Discord gateway.
package main

import (
	"github.com/fgrosse/shell"
	"github.com/fgrosse/shell/discord"
	"github.com/fgrosse/shell/internal/bootstrap"
)

func main() {
	bootstrap.Main(func(shell.Settings) shell.Component {
		return discord.NewComponent()
	})
}
