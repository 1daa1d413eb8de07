package extract

import "strings"

// Normalize makes candidate absolute against base:
// http:// and https:// URLs are returned unchanged, a leading slash is
// appended to base as is, anything else is joined to base with a slash.
func Normalize(base, candidate string) string {
	switch {
	case strings.HasPrefix(candidate, "http://"), strings.HasPrefix(candidate, "https://"):
		return candidate
	case strings.HasPrefix(candidate, "/"):
		return base + candidate
	default:
		return base + "/" + candidate
	}
}

// absolute normalizes a non-empty attribute value. Absent values stay empty.
func (e *Extractor) absolute(value string) string {
	if value == "" {
		return ""
	}
	return Normalize(e.base, value)
}
