// Package callback runs the ephemeral loopback server that captures a single
// identity provider redirect for one interactive login.
package callback

import (
	"net"
	"net/http"
	"sync"

	"github.com/jrsteele09/go-auth-cli/credential"
	"github.com/jrsteele09/go-auth-cli/internal/config"
	"github.com/jrsteele09/go-auth-cli/internal/errors"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

// Session describes the login attempt a server instance is bound to. It
// lives only until the flow settles and is never persisted.
type Session struct {
	ID          string
	ClientID    string
	Scope       string
	RedirectURI string
}

// Result is the terminal outcome of a capture: a credential or the reason
// the flow failed.
type Result struct {
	Credential credential.Credential
	Err        error
}

// Server is the live loopback listener for one login attempt. It is
// single-shot: the first qualifying request settles the result, and later
// settlement attempts are no-ops.
type Server struct {
	session  Session
	listener net.Listener
	httpSrv  *http.Server
	results  chan Result
	settle   sync.Once
	closer   sync.Once
	closeErr error
}

// Start binds a listener on an OS-assigned loopback port and begins serving.
// It returns only after the listener is bound, so Port is valid immediately.
func Start(session Session, env config.Environment) (*Server, error) {
	origin, err := env.Origin()
	if err != nil {
		return nil, err
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, errors.Wrapf(errors.ErrNetworkBind, "[Start] %v", err)
	}

	s := &Server{
		session:  session,
		listener: listener,
		results:  make(chan Result, 1),
	}

	// The browser calls the loopback server from the provider's page, so
	// only that environment's origin is allowed, never a wildcard.
	corsPolicy := cors.New(cors.Options{
		AllowedOrigins: []string{origin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.CaptureHandler())

	s.httpSrv = &http.Server{Handler: corsPolicy.Handler(mux)}
	go func() {
		if err := s.httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Debug().Err(err).Msg("callback server stopped")
		}
	}()

	return s, nil
}

// Port returns the OS-assigned port, for embedding into the redirect URI.
func (s *Server) Port() int {
	return s.listener.Addr().(*net.TCPAddr).Port
}

// Results delivers the single terminal outcome. The channel is buffered so a
// handler never blocks on a caller that has already given up.
func (s *Server) Results() <-chan Result {
	return s.results
}

// Close tears down the listener and any in-flight connections. It is
// idempotent and safe to call after an error; a request racing a close is
// dropped, not an error.
func (s *Server) Close() error {
	s.closer.Do(func() {
		s.closeErr = s.httpSrv.Close()
	})
	return s.closeErr
}

// settleResult fulfils the single-shot result. Settling an already-settled
// server is a no-op, which covers the request-vs-timeout race.
func (s *Server) settleResult(res Result) {
	s.settle.Do(func() {
		s.results <- res
	})
}
