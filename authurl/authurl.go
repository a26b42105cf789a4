// Package authurl composes the provider URLs a login flow sends the browser
// to.
package authurl

import (
	"net/url"
	"strings"
)

// Param is one query parameter. A nil Value marks the parameter as absent:
// it is skipped entirely rather than emitted as an empty or "null" value.
type Param struct {
	Key   string
	Value *string
}

// BuildAuthURL appends params to baseURL as a query string, preserving the
// declaration order so outputs are reproducible.
func BuildAuthURL(baseURL string, params []Param) string {
	var sb strings.Builder
	sb.WriteString(baseURL)
	sep := byte('?')
	for _, p := range params {
		if p.Value == nil {
			continue
		}
		sb.WriteByte(sep)
		sb.WriteString(url.QueryEscape(p.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(*p.Value))
		sep = '&'
	}
	return sb.String()
}

// BuildLogoutURL wraps an authorization URL in the provider's logout
// endpoint, forcing a logout-then-login round trip.
func BuildLogoutURL(logoutBase, authURL string) string {
	return logoutBase + url.QueryEscape(authURL)
}
