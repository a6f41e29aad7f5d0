package web

import (
	"context"
	"net"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/fgrosse/shell"
)

const (
	defaultReadTimeout     = 30 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 5 * time.Second
)

// Server is the shell.Runtime of the web shell.
type Server struct {
	logger   *zap.Logger
	router   *mux.Router
	http     *http.Server
	listener net.Listener // optional, used instead of http.Server.Addr
	regs     []shell.Registration
}

// NewServer creates a Server that serves the router on addr.
func NewServer(addr string, router *mux.Router, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Server{
		logger: logger,
		router: router,
		regs:   routes(router),
		http: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  defaultReadTimeout,
			WriteTimeout: defaultWriteTimeout,
			IdleTimeout:  defaultIdleTimeout,
			ErrorLog:     zap.NewStdLog(logger),
		},
	}
}

// Serve makes the Server accept connections on l instead of listening on its
// address when it is run.
func (s *Server) Serve(l net.Listener) *Server {
	s.listener = l
	return s
}

// Handler returns the root http.Handler of the Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Registrations implements the shell.Runtime interface by listing one
// Registration per method and path template of the router.
func (s *Server) Registrations() []shell.Registration {
	regs := make([]shell.Registration, len(s.regs))
	copy(regs, s.regs)
	return regs
}

// Run starts the HTTP server and blocks until ctx is done or the server fails.
// When ctx is done the server is shut down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errs := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", zap.String("addr", s.addr()))

		var err error
		if s.listener != nil {
			err = s.http.Serve(s.listener)
		} else {
			err = s.http.ListenAndServe()
		}

		if err == http.ErrServerClosed {
			err = nil
		}
		errs <- err
	}()

	select {
	case err := <-errs:
		return errors.Wrap(err, "HTTP server failed")
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()

	err := s.http.Shutdown(shutdownCtx)
	if err != nil {
		return errors.Wrap(err, "failed to shutdown HTTP server")
	}

	return errors.Wrap(<-errs, "HTTP server failed")
}

func (s *Server) addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.http.Addr
}

func routes(router *mux.Router) []shell.Registration {
	var regs []shell.Registration
	_ = router.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		path, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}

		methods, err := route.GetMethods()
		if err != nil {
			methods = []string{"ANY"}
		}

		name := route.GetName()
		for _, m := range methods {
			regs = append(regs, shell.Registration{
				Trigger: strings.ToUpper(m) + " " + path,
				Handler: name,
			})
		}
		return nil
	})

	sort.Slice(regs, func(i, j int) bool {
		return regs[i].Trigger < regs[j].Trigger
	})

	return regs
}
