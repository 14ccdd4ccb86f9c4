package domain

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier from a display name: lowercase,
// runs of non-alphanumeric characters collapsed to a single dash, edges
// trimmed. "Grand Vista" -> "grand-vista".
func Slugify(name string) string {
	s := nonAlnum.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}

// SectionKeyOf derives the stored section_key from a section title using
// the same rules as hotel slugs.
func SectionKeyOf(title string) string { return Slugify(title) }
