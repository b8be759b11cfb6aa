package renderer

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

const DefaultHighlightStyle = "github"

// Rendered is the HTML of a post body plus its table of contents.
type Rendered struct {
	HTML string     `json:"html"`
	TOC  []TOCEntry `json:"toc"`
}

type Option func(*options)

type options struct {
	cacheSize int
	cacheTTL  time.Duration
	style     string
}

// WithCache keeps up to size rendered bodies for ttl, keyed by content hash.
func WithCache(size int, ttl time.Duration) Option {
	return func(o *options) {
		o.cacheSize = size
		o.cacheTTL = ttl
	}
}

// WithHighlightStyle picks the chroma style used for the exported stylesheet.
func WithHighlightStyle(name string) Option {
	return func(o *options) {
		o.style = name
	}
}

// Renderer turns post Markdown into sanitized HTML. It is safe for concurrent use.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	style  string
	cache  *expirable.LRU[string, Rendered]
}

func New(opts ...Option) *Renderer {
	o := options{style: DefaultHighlightStyle}
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Footnote,
				highlighting.NewHighlighting(
					highlighting.WithStyle(o.style),
					highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
				),
				dialect{},
			),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			// raw HTML (tabs 마크업 포함)은 bluemonday 에서 정리한다
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
		policy: newPolicy(),
		style:  o.style,
	}
	if o.cacheSize > 0 && o.cacheTTL > 0 {
		r.cache = expirable.NewLRU[string, Rendered](o.cacheSize, nil, o.cacheTTL)
	}
	return r
}

// Render converts a post body. The locale selects callout titles.
func (r *Renderer) Render(markdown, locale string) (Rendered, error) {
	key := cacheKey(markdown, locale)
	if r.cache != nil {
		if out, ok := r.cache.Get(key); ok {
			return out, nil
		}
	}

	pc := parser.NewContext(parser.WithIDs(headingIDs{}))
	pc.Set(localeKey, locale)

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(TransformTabs(markdown)), &buf, parser.WithContext(pc)); err != nil {
		return Rendered{}, fmt.Errorf("convert markdown: %w", err)
	}

	html, err := postProcess(r.policy.SanitizeBytes(buf.Bytes()))
	if err != nil {
		return Rendered{}, err
	}

	out := Rendered{HTML: html, TOC: ExtractTOC(markdown)}
	if r.cache != nil {
		r.cache.Add(key, out)
	}
	return out, nil
}

// StylesheetCSS returns the chroma CSS matching the classes emitted for code blocks.
func (r *Renderer) StylesheetCSS() (string, error) {
	var buf bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	if err := formatter.WriteCSS(&buf, styles.Get(r.style)); err != nil {
		return "", fmt.Errorf("write css: %w", err)
	}
	return buf.String(), nil
}

func cacheKey(markdown, locale string) string {
	h := sha256.New()
	h.Write([]byte(locale))
	h.Write([]byte{0})
	h.Write([]byte(markdown))
	return hex.EncodeToString(h.Sum(nil))
}

var (
	anchorID   = regexp.MustCompile(`^[^\s"'<>&]+$`)
	classNames = regexp.MustCompile(`^[A-Za-z0-9 _:-]+$`)
)

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(false)

	p.AllowNoAttrs().OnElements("tabs")
	p.AllowAttrs("label").OnElements("tab")

	p.AllowAttrs("id").Matching(anchorID).OnElements("h1", "h2", "h3", "h4", "h5", "h6", "li", "sup", "div")
	p.AllowAttrs("class").Matching(classNames).OnElements("div", "p", "pre", "code", "span", "a", "sup", "section", "li", "ol", "hr")

	p.AllowAttrs("type").Matching(regexp.MustCompile(`^checkbox$`)).OnElements("input")
	p.AllowAttrs("checked", "disabled").OnElements("input")
	return p
}

// postProcess opens external links in a new tab and lazy-loads images.
func postProcess(sanitized []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(sanitized))
	if err != nil {
		return "", fmt.Errorf("parse rendered html: %w", err)
	}

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		lower := strings.ToLower(href)
		if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
			a.SetAttr("target", "_blank")
			a.SetAttr("rel", "noopener noreferrer")
		}
	})
	doc.Find("img").SetAttr("loading", "lazy")

	body, err := doc.Find("body").Html()
	if err != nil {
		return "", fmt.Errorf("serialize rendered html: %w", err)
	}
	return body, nil
}
