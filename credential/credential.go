// Package credential normalizes the payload captured from an identity
// provider callback by grant type.
package credential

import (
	"encoding/json"

	"github.com/jrsteele09/go-auth-cli/internal/errors"
	"golang.org/x/oauth2"
)

// Type is the shape of credential a provider hands back: a bare
// authorization code to be exchanged later, or a ready token payload.
type Type string

const (
	TypeAuthCode    Type = "auth_code"
	TypeAccessToken Type = "access_token"
)

// Credential is the outcome of one login. Exactly one of Raw and Token is
// set: Raw for auth_code grants, Token for access_token grants.
type Credential struct {
	Raw   string
	Token *oauth2.Token
}

// IsToken reports whether the credential is a structured token payload.
func (c Credential) IsToken() bool {
	return c.Token != nil
}

// Secret returns the value a caller would exchange or present: the bare code
// or the access token.
func (c Credential) Secret() string {
	if c.Token != nil {
		return c.Token.AccessToken
	}
	return c.Raw
}

// Transform normalizes the raw code field from a callback. Bare codes pass
// through unchanged. Token payloads are parsed strictly: invalid JSON is
// ErrMalformedCredential, never an empty token. This intentionally does not
// share the lenient policy of utils.LenientJSON.
func Transform(rawCode string, codeType Type) (Credential, error) {
	if codeType != TypeAccessToken {
		return Credential{Raw: rawCode}, nil
	}
	var token oauth2.Token
	if err := json.Unmarshal([]byte(rawCode), &token); err != nil {
		return Credential{}, errors.Wrapf(errors.ErrMalformedCredential, "[Transform] %v", err)
	}
	// Providers attach fields the token struct does not define (id_token,
	// sub, ...); keep the whole payload reachable through Token.Extra.
	var extra map[string]any
	if err := json.Unmarshal([]byte(rawCode), &extra); err != nil {
		return Credential{}, errors.Wrapf(errors.ErrMalformedCredential, "[Transform] %v", err)
	}
	return Credential{Token: token.WithExtra(extra)}, nil
}
