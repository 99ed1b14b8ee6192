// Package redact masks personal data before it is printed.
package redact

import "strings"

// RedactedDomain replaces email domains in aggregate output when redaction is on.
const RedactedDomain = "redacted-domain"

// Email masks the local part of an email address, keeping its first
// character and the domain as-is: "alice@Example.com" -> "a***@Example.com".
// An empty local part gives "***@domain". Strings without "@" are returned
// unchanged.
func Email(s string) string {
	user, domain, ok := strings.Cut(s, "@")
	if !ok {
		return s
	}
	if user == "" {
		return "***@" + domain
	}
	first := []rune(user)[0]
	return string(first) + "***@" + domain
}

// Domain returns RedactedDomain when enabled, otherwise d.
func Domain(d string, enabled bool) string {
	if enabled {
		return RedactedDomain
	}
	return d
}
