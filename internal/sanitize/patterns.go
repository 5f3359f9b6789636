// Package sanitize redacts credentials from IPC payloads before they are
// written to logs.
package sanitize

import "regexp"

// Pattern represents a compiled regex pattern for secret detection
type Pattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// secretPatterns match credentials that can appear in presence host frames:
// OAuth exchange fields in AUTHORIZE/AUTHENTICATE payloads and bearer tokens.
var secretPatterns = []Pattern{
	{
		Name:        "JSON Credential Field",
		Regex:       regexp.MustCompile(`"(access_token|refresh_token|client_secret|code|token)"\s*:\s*"[^"]*"`),
		Replacement: `"$1":"[REDACTED]"`,
	},
	{
		Name:        "JWT Token",
		Regex:       regexp.MustCompile(`eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`),
		Replacement: "[JWT_REDACTED]",
	},
	{
		Name:        "Bearer Token",
		Regex:       regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9._~+/-]{20,}=*`),
		Replacement: "Bearer [TOKEN_REDACTED]",
	},
}

// GetSecretPatterns returns a copy of the secret detection patterns list.
func GetSecretPatterns() []Pattern {
	result := make([]Pattern, len(secretPatterns))
	copy(result, secretPatterns)
	return result
}
