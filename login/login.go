// Package login orchestrates the one-shot browser-mediated login flow:
// start a loopback callback server, send the browser to the provider, and
// wait for the single terminal callback or a timeout.
package login

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/cli/browser"
	"github.com/jrsteele09/go-auth-cli/authurl"
	"github.com/jrsteele09/go-auth-cli/callback"
	"github.com/jrsteele09/go-auth-cli/credential"
	"github.com/jrsteele09/go-auth-cli/identifier"
	"github.com/jrsteele09/go-auth-cli/internal/config"
	"github.com/jrsteele09/go-auth-cli/internal/errors"
	"github.com/jrsteele09/go-auth-cli/internal/utils"
	"github.com/rs/zerolog/log"
)

// Options configures one login attempt. The zero value is usable: it
// resolves to the configured (or production) environment and the default
// timeout.
type Options struct {
	ClientID    string
	Scope       string
	RedirectURI string

	// Environment overrides the configured CLI environment when set.
	Environment string

	// ForceLogout routes the browser through the provider's logout endpoint
	// before the login page.
	ForceLogout bool

	// Timeout bounds the wait for the browser callback. Zero means the
	// configured AUTH_CLI_TIMEOUT, which defaults to 120 seconds.
	Timeout time.Duration

	// OpenBrowser launches the system browser. Nil means browser.OpenURL.
	OpenBrowser func(url string) error

	// Prompt receives the user-facing instructions. Nil means stdout.
	Prompt io.Writer
}

// Run performs the end-to-end flow and returns the captured credential. The
// callback server is closed exactly once on every path. Cancelling ctx is an
// abort path equivalent to the timeout.
func Run(ctx context.Context, opts Options) (credential.Credential, error) {
	cliConfig, err := config.LoadCLIConfig()
	if err != nil {
		return credential.Credential{}, err
	}

	env, err := config.Resolve(opts.Environment, cliConfig.Environment)
	if err != nil {
		return credential.Credential{}, err
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Duration(cliConfig.TimeoutSeconds) * time.Second
	}

	session := callback.Session{
		ID:          identifier.New(),
		ClientID:    opts.ClientID,
		Scope:       opts.Scope,
		RedirectURI: opts.RedirectURI,
	}

	server, err := callback.Start(session, env)
	if err != nil {
		return credential.Credential{}, err
	}
	defer server.Close()

	flowURL := buildFlowURL(env, session, server.Port(), opts.ForceLogout)
	log.Debug().Str("environment", string(env)).Int("port", server.Port()).Msg("starting login flow")

	prompt := opts.Prompt
	if prompt == nil {
		prompt = os.Stdout
	}
	fmt.Fprintf(prompt, "Opening your browser to sign in. If nothing happens, visit:\n\n  %s\n\n", flowURL)

	openBrowser := opts.OpenBrowser
	if openBrowser == nil {
		openBrowser = browser.OpenURL
	}
	if err := openBrowser(flowURL); err != nil {
		// Not fatal, the URL has already been printed for manual use.
		log.Warn().Err(err).Msg("could not open the browser")
	}

	select {
	case result := <-server.Results():
		if result.Err != nil {
			return credential.Credential{}, result.Err
		}
		return result.Credential, nil
	case <-time.After(timeout):
		return credential.Credential{}, errors.Wrapf(errors.ErrTimeout, "[Run] after %s", timeout)
	case <-ctx.Done():
		return credential.Credential{}, ctx.Err()
	}
}

// buildFlowURL composes the authorization URL, omitting absent parameters,
// and wraps it in the logout endpoint when a forced logout is requested.
func buildFlowURL(env config.Environment, session callback.Session, port int, forceLogout bool) string {
	authURL := authurl.BuildAuthURL(env.Endpoints().AuthURL, []authurl.Param{
		{Key: "id", Value: utils.Ptr(session.ID)},
		{Key: "port", Value: utils.Ptr(strconv.Itoa(port))},
		{Key: "client_id", Value: utils.OptionalPtr(session.ClientID)},
		{Key: "scope", Value: utils.OptionalPtr(session.Scope)},
		{Key: "redirect_uri", Value: utils.OptionalPtr(session.RedirectURI)},
	})
	if forceLogout {
		return authurl.BuildLogoutURL(env.Endpoints().LogoutURL, authURL)
	}
	return authURL
}
