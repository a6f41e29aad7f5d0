// Command web runs the web shell which answers GET / with a static greeting.
package main

import (
	"github.com/fgrosse/shell"
	"github.com/fgrosse/shell/internal/bootstrap"
	"github.com/fgrosse/shell/web"
)

func main() {
	bootstrap.Main(func(s shell.Settings) shell.Component {
		return web.NewComponent(s.ListenAddr)
	})
}
