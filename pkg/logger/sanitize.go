package logger

import (
	"net/url"
	"strings"
)

// sensitiveParams are query parameter names that must never reach logs.
var sensitiveParams = map[string]bool{
	"token":    true,
	"session":  true,
	"password": true,
	"secret":   true,
}

// SanitizeQueryString reports whether a raw query string contains a
// sensitive parameter and should be redacted from request logs.
func SanitizeQueryString(rawQuery string) bool {
	if rawQuery == "" {
		return false
	}

	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		// Unparseable query strings are redacted wholesale
		return true
	}

	for name := range values {
		if sensitiveParams[strings.ToLower(name)] {
			return true
		}
	}

	return false
}
