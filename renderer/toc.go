package renderer

import (
	"regexp"
	"strings"
)

// TOCEntry is one heading of a post's table of contents.
type TOCEntry struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

var (
	atxHeading    = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	slugPunct     = regexp.MustCompile("[`~!@#$%^&*()\\-=+\\[\\]{}|;:'\",.<>/?\\\\]")
	slugSpaceRuns = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}]+`)
)

// Slugify builds a heading id: trimmed, lowercased, punctuation removed,
// whitespace runs collapsed to "-". Non-ASCII letters are kept.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugPunct.ReplaceAllString(s, "")
	return slugSpaceRuns.ReplaceAllString(s, "-")
}

// ExtractTOC collects level 1-3 ATX headings outside fenced code blocks.
// Headings whose id would be empty are skipped; repeated ids are kept as is.
func ExtractTOC(markdown string) []TOCEntry {
	entries := []TOCEntry{}
	inFence := false
	fence := ""

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		if marker := fenceMarker(trimmed); marker != "" {
			switch {
			case !inFence:
				inFence, fence = true, marker
			case marker == fence:
				inFence, fence = false, ""
			}
			continue
		}
		if inFence {
			continue
		}

		m := atxHeading.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		level := len(m[1])
		if level > 3 {
			continue
		}
		text := strings.TrimSpace(m[2])
		id := Slugify(text)
		if id == "" {
			continue
		}
		entries = append(entries, TOCEntry{ID: id, Text: text, Level: level})
	}
	return entries
}

func fenceMarker(trimmed string) string {
	switch {
	case strings.HasPrefix(trimmed, "```"):
		return "```"
	case strings.HasPrefix(trimmed, "~~~"):
		return "~~~"
	default:
		return ""
	}
}
