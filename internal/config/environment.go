package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/jrsteele09/go-auth-cli/internal/errors"
)

// Environment identifies the deployment of the identity provider a login
// flow talks to.
type Environment string

const (
	Stage Environment = "STAGE"
	Prod  Environment = "PROD"
)

// Endpoints holds the provider URLs for one environment.
type Endpoints struct {
	AuthURL   string
	LogoutURL string
}

// endpointSets is static configuration data, never mutated at runtime.
var endpointSets = map[Environment]Endpoints{
	Stage: {
		AuthURL:   "https://auth.stage.jsauth.dev/cli/authorize",
		LogoutURL: "https://auth.stage.jsauth.dev/cli/logout?redirect_uri=",
	},
	Prod: {
		AuthURL:   "https://auth.jsauth.dev/cli/authorize",
		LogoutURL: "https://auth.jsauth.dev/cli/logout?redirect_uri=",
	},
}

// Resolve picks the environment for a login flow. An explicit value wins over
// the configured one, which wins over the Prod default. Unrecognised values
// fail with ErrConfiguration rather than silently falling back.
func Resolve(explicit, configured string) (Environment, error) {
	for _, candidate := range []string{explicit, configured} {
		if candidate == "" {
			continue
		}
		env := Environment(strings.ToUpper(candidate))
		if _, ok := endpointSets[env]; !ok {
			return "", errors.Wrapf(errors.ErrConfiguration, "[Resolve] %q", candidate)
		}
		return env, nil
	}
	return Prod, nil
}

// Endpoints returns the provider URLs for the environment.
func (e Environment) Endpoints() Endpoints {
	return endpointSets[e]
}

// Origin returns the scheme+host+port component of the environment's
// authorization URL. This is the only origin the callback server allows.
func (e Environment) Origin() (string, error) {
	endpoints, ok := endpointSets[e]
	if !ok {
		return "", errors.Wrapf(errors.ErrConfiguration, "[Origin] %q", string(e))
	}
	u, err := url.Parse(endpoints.AuthURL)
	if err != nil {
		return "", fmt.Errorf("[Origin] parsing auth URL for %q: %w", string(e), err)
	}
	return u.Scheme + "://" + u.Host, nil
}
