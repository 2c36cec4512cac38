package resources

import (
	"strings"

	"github.com/goliatone/go-slug"
)

// CanonicalSlug reduces caller-supplied slug input to its canonical lookup
// form: trimmed, lowercased, and normalized to the default slug rules. The
// second return is false when the input cannot become a valid slug.
func CanonicalSlug(value string) (string, bool) {
	normalized, err := slug.Normalize(strings.TrimSpace(value))
	if err != nil || !slug.IsValid(normalized) {
		return "", false
	}
	return normalized, true
}

// IsValidSlug reports whether the slug matches the default rules.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}
