// Package redact provides utilities for redacting sensitive information
// from strings before they are logged or returned in error responses.
// The system holds plaintext credentials and numeric passcodes, so any
// error text that might embed one must pass through here on its way to
// a log line or an HTTP response.
package redact

import (
	"regexp"
)

// Constants for redaction placeholders
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
)

// Precompiled regex patterns
var (
	// password=..., password: ..., pwd '...' fragments
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{1,}`)

	// passcode=1234 style fragments from family calendar errors
	passcodeRegex = regexp.MustCompile(`(?i)(passcode)([=:\s]?['"]?)\d+`)

	// username,password credential lines from the bootstrap file format
	credentialLineRegex = regexp.MustCompile(`(?m)^[^,\s]+,[^,\s]+$`)

	// File paths, e.g. from bootstrap loader errors
	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)

	patternPlaceholders = []struct {
		pattern     *regexp.Regexp
		placeholder string
	}{
		{passwordRegex, RedactedCredentialPlaceholder},
		{passcodeRegex, RedactedCredentialPlaceholder},
		{credentialLineRegex, RedactedCredentialPlaceholder},
		{unixPathRegex, RedactedPathPlaceholder},
	}
)

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, pp := range patternPlaceholders {
		result = pp.pattern.ReplaceAllString(result, pp.placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
