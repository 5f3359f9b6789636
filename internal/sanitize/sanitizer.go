package sanitize

import "strconv"

// MaxPayloadLog caps how many bytes of a payload are rendered.
const MaxPayloadLog = 512

// Sanitizer redacts secrets from text
type Sanitizer struct {
	patterns []Pattern
}

// NewSanitizer creates a new Sanitizer with default patterns
func NewSanitizer() *Sanitizer {
	return &Sanitizer{
		patterns: GetSecretPatterns(),
	}
}

// Sanitize replaces every pattern match in input with its placeholder.
func (s *Sanitizer) Sanitize(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, p := range s.patterns {
		result = p.Regex.ReplaceAllString(result, p.Replacement)
	}
	return result
}

// Payload renders raw pipe bytes for a log line. Secrets are redacted over
// the whole payload before the result is cut to MaxPayloadLog bytes, then
// frame headers and other binary bytes are escaped.
func (s *Sanitizer) Payload(data []byte) string {
	clean := s.Sanitize(string(data))

	truncated := len(clean) > MaxPayloadLog
	if truncated {
		clean = clean[:MaxPayloadLog]
	}

	quoted := strconv.Quote(clean)
	if truncated {
		return quoted + "..."
	}
	return quoted
}

// DefaultSanitizer is a package-level sanitizer for convenience
var DefaultSanitizer = NewSanitizer()

// Sanitize uses the default sanitizer to sanitize input
func Sanitize(input string) string {
	return DefaultSanitizer.Sanitize(input)
}

// Payload uses the default sanitizer to render data for logging
func Payload(data []byte) string {
	return DefaultSanitizer.Payload(data)
}
