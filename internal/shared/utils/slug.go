package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphens = regexp.MustCompile(`-+`)
)

// GenerateSlug turns "Creamy Chicken & Rice!" into "creamy-chicken-rice".
// Uniqueness against the store is the caller's job (suffix loop in the
// services).
func GenerateSlug(input string) string {
	lower := strings.ToLower(input)
	hyphenated := strings.ReplaceAll(lower, " ", "-")
	cleaned := slugInvalid.ReplaceAllString(hyphenated, "")
	normalized := slugHyphens.ReplaceAllString(cleaned, "-")
	return strings.Trim(normalized, "-")
}
