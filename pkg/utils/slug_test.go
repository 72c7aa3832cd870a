package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hello-world-123", Slugify("Hello, World!! 123"))
	assert.Equal(t, "dark-mode", Slugify("  Dark Mode  "))
	assert.Equal(t, "api-v2-support", Slugify("API v2 Support"))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestUniqueSlug_NoCollision(t *testing.T) {
	slug := UniqueSlug("dark-mode", func(s string) bool { return false })
	assert.Equal(t, "dark-mode", slug)
}

func TestUniqueSlug_Probing(t *testing.T) {
	taken := map[string]bool{
		"hello-world":   true,
		"hello-world-1": true,
	}
	slug := UniqueSlug("hello-world", func(s string) bool { return taken[s] })
	assert.Equal(t, "hello-world-2", slug)
}
