package httpclient

import (
	"mime"
	"strings"
)

// AcceptableMimeType reports whether mimeType satisfies any of the Accept
// patterns. A pattern is "*" or "type/subtype" where either segment may be
// "*". Patterns carrying parameters (";q=0.9") are not supported and yield a
// GeneratedClientError regardless of mimeType. A mimeType that is not of the
// form "type/subtype" yields an InvalidUserInputError.
func AcceptableMimeType(acceptPatterns []string, mimeType string) (bool, error) {
	for _, pattern := range acceptPatterns {
		if strings.Contains(pattern, ";") {
			return false, NewGeneratedClientError("MIME patterns with parameter unsupported", pattern)
		}
	}

	major, minor, ok := splitMimeType(mimeType)
	if !ok {
		return false, NewInvalidUserInputError("invalid MIME type "+mimeType, "", nil)
	}
	for _, pattern := range acceptPatterns {
		if mimeTypeMatches(pattern, major, minor) {
			return true, nil
		}
	}
	return false, nil
}

func mimeTypeMatches(pattern, major, minor string) bool {
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	if pattern == "*" {
		return true
	}

	patternMajor, patternMinor, ok := strings.Cut(pattern, "/")
	if !ok {
		return false
	}
	return (patternMajor == "*" || patternMajor == major) &&
		(patternMinor == "*" || patternMinor == minor)
}

// splitMimeType lower-cases a concrete media type and splits it into type and
// subtype. Parameters on the concrete type are dropped. ok is false unless
// both segments are present.
func splitMimeType(mimeType string) (major, minor string, ok bool) {
	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(mimeType))
	}
	major, minor, ok = strings.Cut(mediaType, "/")
	return major, minor, ok && major != "" && minor != ""
}
