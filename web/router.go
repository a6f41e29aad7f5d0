// Package web implements the web shell: a single static route served by
// gorilla/mux behind a net/http server.
package web

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Greeting is the body of every response of the Responder.
const Greeting = "Hello, world!"

// OAuthCredentials are the OAuth client secrets of the web shell. They are
// required on startup but not used by any handler yet.
type OAuthCredentials struct {
	ClientID     string
	ClientSecret string
}

// The Responder answers every request with the static Greeting.
type Responder struct {
	logger *zap.Logger
}

// NewRouter creates the router of the web shell with exactly one route: GET /.
func NewRouter(oauth OAuthCredentials, logger *zap.Logger) *mux.Router {
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Debug("Creating router", zap.Bool("oauth_client_configured", oauth.ClientID != ""))

	h := &Responder{logger: logger}
	r := mux.NewRouter()
	r.Methods(http.MethodGet).Path("/").Name("hello_world").HandlerFunc(h.ServeHTTP)

	return r
}

// ServeHTTP implements the http.Handler interface.
func (h *Responder) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	_, err := io.WriteString(w, Greeting)
	if err != nil {
		h.logger.Debug("Failed to write response", zap.Error(err))
	}
}
