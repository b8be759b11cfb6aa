package renderer

import (
	"regexp"
	"strings"
	"unicode"
)

var tabHeader = regexp.MustCompile(`^===\s+"([^"]+)"\s*$`)

var labelEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")

type tabBlock struct {
	label string
	body  []string
}

// TransformTabs rewrites runs of `=== "Label"` blocks into <tabs>/<tab label="..."> markup.
// A tab body runs until the next header or the end of the document. One blank line
// right after a header is dropped and the body's common indentation is stripped.
func TransformTabs(markdown string) string {
	lines := strings.Split(markdown, "\n")
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); {
		if !isTabHeader(lines[i]) {
			out = append(out, lines[i])
			i++
			continue
		}

		var tabs []tabBlock
		for i < len(lines) {
			m := tabHeader.FindStringSubmatch(strings.TrimSpace(lines[i]))
			if m == nil {
				break
			}
			i++
			if i < len(lines) && strings.TrimSpace(lines[i]) == "" {
				i++
			}

			var body []string
			for i < len(lines) && !isTabHeader(lines[i]) {
				body = append(body, lines[i])
				i++
			}
			tabs = append(tabs, tabBlock{label: m[1], body: stripIndent(body)})
		}

		out = append(out, "<tabs>")
		for _, t := range tabs {
			out = append(out, `<tab label="`+labelEscaper.Replace(t.label)+`">`, "")
			out = append(out, t.body...)
			out = append(out, "", "</tab>")
		}
		out = append(out, "</tabs>")
	}

	return strings.Join(out, "\n")
}

func isTabHeader(line string) bool {
	return tabHeader.MatchString(strings.TrimSpace(line))
}

// stripIndent removes the smallest leading indentation of the non-blank lines.
// Any unindented line leaves the block as is.
func stripIndent(lines []string) []string {
	minIndent := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		n := len(l) - len(strings.TrimLeftFunc(l, unicode.IsSpace))
		if minIndent < 0 || n < minIndent {
			minIndent = n
		}
	}
	if minIndent <= 0 {
		return lines
	}

	prefix := strings.Repeat(" ", minIndent)
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimPrefix(l, prefix)
	}
	return out
}
