package web

import (
	"github.com/fgrosse/shell"
)

// Names of the secrets the web shell requires.
const (
	SecretOAuthClientID     = "OAUTH_CLIENT_ID"
	SecretOAuthClientSecret = "OAUTH_CLIENT_SECRET"
)

// Component is the shell.Component of the web shell.
type Component struct {
	Addr string // listen address of the HTTP server
}

// NewComponent creates a new web Component listening on addr.
func NewComponent(addr string) *Component {
	return &Component{Addr: addr}
}

// Name implements the shell.Component interface.
func (*Component) Name() string {
	return "web"
}

// RequiredSecrets implements the shell.Component interface.
func (*Component) RequiredSecrets() []string {
	return []string{SecretOAuthClientID, SecretOAuthClientSecret}
}

// Build implements the shell.Component interface.
func (c *Component) Build(secrets shell.Secrets, conf *shell.Config) (shell.Runtime, error) {
	oauth := OAuthCredentials{
		ClientID:     secrets.Get(SecretOAuthClientID),
		ClientSecret: secrets.Get(SecretOAuthClientSecret),
	}

	router := NewRouter(oauth, conf.Logger("router"))
	return NewServer(c.Addr, router, conf.Logger("http")), nil
}
