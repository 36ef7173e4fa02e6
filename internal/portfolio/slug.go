package portfolio

import "github.com/goliatone/go-slug"

// NormalizeSlug applies the default slug normalization rules to item and term
// slugs. Filter data attributes depend on slugs being whitespace-free, so
// everything stored goes through this step.
func NormalizeSlug(value string) (string, error) {
	return slug.Normalize(value)
}

// IsValidSlug reports whether the slug matches the default rules.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}
