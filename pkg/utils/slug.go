package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a title into a URL-friendly slug: lowercase, runs of
// non-alphanumeric characters collapsed into single hyphens, no leading
// or trailing hyphen.
func Slugify(input string) string {
	slug := strings.ToLower(input)
	slug = nonAlnum.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// UniqueSlug probes base, base-1, base-2, ... until exists reports false.
// Collisions are rare in practice so the linear scan is fine.
func UniqueSlug(base string, exists func(slug string) bool) string {
	slug := base
	for attempt := 1; exists(slug); attempt++ {
		slug = fmt.Sprintf("%s-%d", base, attempt)
	}
	return slug
}
