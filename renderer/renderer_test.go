package renderer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yospace/renderer"
)

func TestTransformTabs(t *testing.T) {
	in := "=== \"A\"\n    line1\n=== \"B\"\n    line2"

	out := renderer.TransformTabs(in)

	flat := strings.ReplaceAll(out, "\n", "")
	assert.Contains(t, flat, `<tabs><tab label="A">line1</tab><tab label="B">line2</tab></tabs>`)
	assert.Equal(t, "<tabs>\n<tab label=\"A\">\n\nline1\n\n</tab>\n<tab label=\"B\">\n\nline2\n\n</tab>\n</tabs>", out)
}

func TestTransformTabs_Cases(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "no tabs",
			in:   "# Title\n\ntext",
			want: "# Title\n\ntext",
		},
		{
			name: "blank line after header is skipped",
			in:   "intro\n=== \"Go\"\n\n    fmt.Println()\n",
			want: "intro\n<tabs>\n<tab label=\"Go\">\n\nfmt.Println()\n\n\n</tab>\n</tabs>",
		},
		{
			name: "unindented line keeps indentation",
			in:   "=== \"X\"\n  a\nb",
			want: "<tabs>\n<tab label=\"X\">\n\n  a\nb\n\n</tab>\n</tabs>",
		},
		{
			name: "empty tab",
			in:   "=== \"Only\"",
			want: "<tabs>\n<tab label=\"Only\">\n\n\n</tab>\n</tabs>",
		},
		{
			name: "label is escaped",
			in:   "=== \"a<b & c\"\n    x",
			want: "<tabs>\n<tab label=\"a&lt;b &amp; c\">\n\nx\n\n</tab>\n</tabs>",
		},
		{
			name: "header needs a quoted label",
			in:   "=== A\n    x",
			want: "=== A\n    x",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, renderer.TransformTabs(tc.in))
		})
	}
}

func TestExtractTOC(t *testing.T) {
	t.Run("fenced headings are ignored", func(t *testing.T) {
		got := renderer.ExtractTOC("```\n# Fake\n```\n## Real")
		assert.Equal(t, []renderer.TOCEntry{{ID: "real", Text: "Real", Level: 2}}, got)
	})

	t.Run("levels above three are ignored", func(t *testing.T) {
		got := renderer.ExtractTOC("# One\n#### Four\n### Three\n###### Six")
		require.Len(t, got, 2)
		for _, e := range got {
			assert.LessOrEqual(t, e.Level, 3)
		}
	})

	t.Run("fence markers must match", func(t *testing.T) {
		got := renderer.ExtractTOC("~~~\n```\n# Still code\n~~~\n# Out")
		assert.Equal(t, []renderer.TOCEntry{{ID: "out", Text: "Out", Level: 1}}, got)
	})

	t.Run("duplicates kept and empty ids skipped", func(t *testing.T) {
		got := renderer.ExtractTOC("## Setup\n## Setup\n## ???\n#NoSpace")
		assert.Equal(t, []renderer.TOCEntry{
			{ID: "setup", Text: "Setup", Level: 2},
			{ID: "setup", Text: "Setup", Level: 2},
		}, got)
	})
}

func TestSlugify(t *testing.T) {
	testCases := map[string]string{
		"Hello World":          "hello-world",
		"  Go: the  Good Parts": "go-the-good-parts",
		"What's new?":          "whats-new",
		"你好 世界":                "你好-世界",
		"a-b":                  "ab",
	}
	for in, want := range testCases {
		assert.Equal(t, want, renderer.Slugify(in), in)
	}
}

func TestTransformURL(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"javascript:alert(1)", ""},
		{"  JavaScript:void(0)", ""},
		{"#section", "#section"},
		{"/blog/hello world", "/blog/hello%20world"},
		{"/already%20encoded", "/already%20encoded"},
		{"https://example.com/a b?q=1", "https://example.com/a%20b?q=1"},
		{"mailto:me@example.com", "mailto:me@example.com"},
		{"images/cat 1.png", "images/cat%201.png"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, renderer.TransformURL(tc.in))
		})
	}
}

func TestCalloutTitle(t *testing.T) {
	assert.Equal(t, "Note", renderer.CalloutTitle("note", "en"))
	assert.Equal(t, "说明", renderer.CalloutTitle("note", "zh-CN"))
	assert.Equal(t, "注意", renderer.CalloutTitle("caution", "zh-Hans"))
}

func TestRender(t *testing.T) {
	r := renderer.New()

	md := strings.Join([]string{
		"# Hello World",
		"",
		"> [!WARNING]",
		"> Be careful.",
		"",
		"> plain quote",
		"",
		"[site](https://example.com) [local](/blog/other) [bad](javascript:alert(1))",
		"",
		"![cat](/img/cat.png)",
		"",
		"=== \"A\"",
		"    tab one",
		"=== \"B\"",
		"    tab two",
	}, "\n")

	out, err := r.Render(md, "en")
	require.NoError(t, err)

	assert.Contains(t, out.HTML, `<h1 id="hello-world">Hello World</h1>`)
	assert.Contains(t, out.HTML, `class="callout callout-warning"`)
	assert.Contains(t, out.HTML, `Warning`)
	assert.Contains(t, out.HTML, `Be careful.`)
	assert.NotContains(t, out.HTML, `[!WARNING]`)
	assert.Contains(t, out.HTML, `<blockquote>`)
	assert.Contains(t, out.HTML, `target="_blank"`)
	assert.Contains(t, out.HTML, `rel="noopener noreferrer"`)
	assert.Contains(t, out.HTML, `href="/blog/other"`)
	assert.NotContains(t, out.HTML, `javascript:`)
	assert.Contains(t, out.HTML, `loading="lazy"`)
	assert.Contains(t, out.HTML, "<tabs>\n<tab label=\"A\">")
	assert.Contains(t, out.HTML, "</tab>\n</tabs>")
	assert.Contains(t, out.HTML, `tab two`)

	assert.Equal(t, []renderer.TOCEntry{{ID: "hello-world", Text: "Hello World", Level: 1}}, out.TOC)
}

func TestRender_KeepsSeparateTabGroups(t *testing.T) {
	md := "=== \"A\"\n    one\n=== \"B\"\n    two\n\nbetween\n\n=== \"C\"\n    three\n"
	out, err := renderer.New().Render(md, "en")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out.HTML, "<tabs>"))
	assert.Equal(t, 2, strings.Count(out.HTML, "</tabs>"))
	assert.Less(t, strings.Index(out.HTML, "</tabs>"), strings.Index(out.HTML, "between"))
}

func TestRender_CalloutMarkerInsideEmphasis(t *testing.T) {
	out, err := renderer.New().Render("> **[!NOTE]** hi\n", "en")
	require.NoError(t, err)

	assert.Contains(t, out.HTML, `class="callout callout-note"`)
	assert.Contains(t, out.HTML, "<p>hi</p>")
	assert.NotContains(t, out.HTML, "[!NOTE]")
	assert.NotContains(t, out.HTML, "<strong></strong>")
	assert.NotContains(t, out.HTML, "<blockquote>")
}

func TestRender_CodeSpanMarkerIsNotCallout(t *testing.T) {
	out, err := renderer.New().Render("> `[!NOTE]` literal\n", "en")
	require.NoError(t, err)

	assert.Contains(t, out.HTML, "<blockquote>")
	assert.Contains(t, out.HTML, "[!NOTE]")
}

func TestRender_ChineseCallout(t *testing.T) {
	out, err := renderer.New().Render("> [!tip] 小技巧", "zh-CN")
	require.NoError(t, err)

	assert.Contains(t, out.HTML, "callout-tip")
	assert.Contains(t, out.HTML, "提示")
	assert.Contains(t, out.HTML, "小技巧")
}

func TestRender_SanitizesScripts(t *testing.T) {
	out, err := renderer.New().Render("<script>alert(1)</script>\n\n<div onclick=\"x()\">hi</div>", "en")
	require.NoError(t, err)

	assert.NotContains(t, out.HTML, "<script")
	assert.NotContains(t, out.HTML, "onclick")
}

func TestRender_HighlightsCode(t *testing.T) {
	r := renderer.New()
	out, err := r.Render("```go\nfunc main() {}\n```", "en")
	require.NoError(t, err)
	assert.Contains(t, out.HTML, `class="chroma"`)

	css, err := r.StylesheetCSS()
	require.NoError(t, err)
	assert.Contains(t, css, ".chroma")
}

func TestRender_Cache(t *testing.T) {
	r := renderer.New(renderer.WithCache(8, time.Minute))

	first, err := r.Render("## Cached", "en")
	require.NoError(t, err)
	second, err := r.Render("## Cached", "en")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
