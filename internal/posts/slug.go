package posts

import "github.com/goliatone/go-slug"

// SlugNormalizer normalizes post and term slugs. Post slugs come from the
// content filename after the date prefix is stripped, term slugs from the
// category and tag names in front matter.
type SlugNormalizer = slug.Normalizer

// DefaultSlugNormalizer returns the normalizer used for URL routes.
func DefaultSlugNormalizer() SlugNormalizer {
	return slug.Default()
}

// NormalizeSlug lowercases the value and reduces it to URL-safe characters.
// Posts with a slug that cannot be normalized are rejected at load time.
func NormalizeSlug(value string) (string, error) {
	return slug.Normalize(value)
}

// IsValidSlug reports whether the value is already a well-formed route slug.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}
