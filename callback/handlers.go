package callback

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-auth-cli/credential"
	"github.com/jrsteele09/go-auth-cli/internal/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const contentTypeHTML = "text/html; charset=utf-8"

const successPage = `<!DOCTYPE html>
<html><body>
<h2>Signed in</h2>
<p>You can close this tab and return to the terminal.</p>
</body></html>`

const failurePage = `<!DOCTYPE html>
<html><body>
<h2>Sign in failed</h2>
<p>Please return to the terminal and try again.</p>
</body></html>`

// CaptureHandler dispatches by method. Only GET and a completed POST body
// are terminal events; OPTIONS pre-flights and unsupported methods are
// answered without touching the pending result, so the flow keeps waiting
// bounded by its timeout.
func (s *Server) CaptureHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With().
			Str("request_id", uuid.NewString()).
			Str("method", r.Method).
			Logger()

		switch r.Method {
		case http.MethodGet:
			s.capture(w, r.URL.Query(), logger)
		case http.MethodPost:
			// The body may arrive in any number of chunks; ReadAll
			// consumes up to EOF before any parsing starts.
			body, err := io.ReadAll(r.Body)
			if err != nil {
				logger.Warn().Err(err).Msg("reading callback body")
				s.writePage(w, failurePage, logger)
				s.settleResult(Result{Err: errors.Wrapf(err, "[CaptureHandler] reading request body")})
				return
			}
			values, err := url.ParseQuery(string(body))
			if err != nil {
				logger.Warn().Err(err).Msg("decoding callback body")
				s.writePage(w, failurePage, logger)
				s.settleResult(Result{Err: errors.Wrapf(err, "[CaptureHandler] decoding request body")})
				return
			}
			s.capture(w, values, logger)
		case http.MethodOptions:
			// Pre-flight only, the browser retries with the real method.
			w.WriteHeader(http.StatusOK)
			logger.Debug().Msg("answered pre-flight request")
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
			logger.Debug().Msg("rejected unsupported method")
		}
	}
}

// capture applies the session validation rule shared by GET and POST:
// success requires a non-empty code and a state whose id matches the
// session. Anything else is a terminal failure that still answers the
// browser before the server closes.
func (s *Server) capture(w http.ResponseWriter, values url.Values, logger zerolog.Logger) {
	code := values.Get("code")

	var state struct {
		ID string `json:"id"`
	}
	stateErr := json.Unmarshal([]byte(values.Get("state")), &state)

	if code == "" || stateErr != nil || state.ID != s.session.ID {
		logger.Warn().Str("code", code).Msg("callback did not correlate with the session")
		s.writePage(w, failurePage, logger)
		s.settleResult(Result{Err: &errors.CorrelationError{Code: code}})
		return
	}

	cred, err := credential.Transform(code, credential.Type(values.Get("code_type")))
	if err != nil {
		logger.Warn().Err(err).Msg("transforming captured code")
		s.writePage(w, failurePage, logger)
		s.settleResult(Result{Err: err})
		return
	}

	logger.Info().Msg("captured login credential")
	s.writePage(w, successPage, logger)
	s.settleResult(Result{Credential: cred})
}

// writePage answers the browser tab. A write failure must not keep the
// server open, so it is logged and otherwise ignored.
func (s *Server) writePage(w http.ResponseWriter, page string, logger zerolog.Logger) {
	w.Header().Set("Content-Type", contentTypeHTML)
	if _, err := fmt.Fprint(w, page); err != nil {
		logger.Debug().Err(err).Msg("writing callback response")
	}
}
