package service

import (
	"regexp"
	"strings"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL slug from a title: lowercase, every run of
// non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens trimmed. "Hello, World! 2024" becomes "hello-world-2024".
func Slugify(title string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
