package models

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParsePublishedTime parses the free-form date written in frontmatter.
// Missing or unparseable dates return the zero time, which sorts before every real date.
func ParsePublishedTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}
	}
	return t
}

// PublishedAt returns the parsed publishedTime of the post.
func (p PostItem) PublishedAt() time.Time {
	return ParsePublishedTime(p.PublishedTime)
}
