package utils

import "encoding/json"

// LenientJSON decodes s as JSON on a best-effort basis, returning the decoded
// value when s is valid and the original string otherwise. This leniency is
// only correct for generic config values; credential payloads go through the
// strict parser in the credential package instead.
func LenientJSON(s string) any {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s
	}
	return v
}
