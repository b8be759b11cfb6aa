package renderer

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	gmrenderer "github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// KindCallout is the node kind of a converted `> [!NOTE]` blockquote.
var KindCallout = ast.NewNodeKind("Callout")

// Callout is a blockquote that started with a [!VARIANT] marker.
type Callout struct {
	ast.BaseBlock
	Variant string
	Title   string
}

func (n *Callout) Kind() ast.NodeKind {
	return KindCallout
}

func (n *Callout) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Variant": n.Variant, "Title": n.Title}, nil)
}

var calloutMarker = regexp.MustCompile(`(?i)^\s*\[!(NOTE|TIP|WARNING|IMPORTANT|CAUTION)\]\s*`)

// title[0] 은 영어, title[1] 은 중국어 라벨
var calloutTitles = map[string][2]string{
	"note":      {"Note", "说明"},
	"tip":       {"Tip", "提示"},
	"warning":   {"Warning", "警告"},
	"important": {"Important", "重要"},
	"caution":   {"Caution", "注意"},
}

// CalloutTitle returns the localized heading shown above a callout.
func CalloutTitle(variant, locale string) string {
	titles, ok := calloutTitles[variant]
	if !ok {
		return variant
	}
	if strings.HasPrefix(strings.ToLower(locale), "zh") {
		return titles[1]
	}
	return titles[0]
}

var localeKey = parser.NewContextKey()

type calloutTransformer struct{}

func (t *calloutTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	source := reader.Source()
	locale, _ := pc.Get(localeKey).(string)

	var quotes []*ast.Blockquote
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if bq, ok := n.(*ast.Blockquote); ok && entering {
			quotes = append(quotes, bq)
		}
		return ast.WalkContinue, nil
	})

	for _, bq := range quotes {
		variant, ok := stripCalloutMarker(bq, source)
		if !ok {
			continue
		}

		callout := &Callout{Variant: variant, Title: CalloutTitle(variant, locale)}
		parent := bq.Parent()
		parent.ReplaceChild(parent, bq, callout)
		for c := bq.FirstChild(); c != nil; {
			next := c.NextSibling()
			callout.AppendChild(callout, c)
			c = next
		}
	}
}

// stripCalloutMarker matches the marker against the first text of the blockquote's
// first paragraph and removes it. The first text may sit inside emphasis and the
// line may be split over several text nodes.
func stripCalloutMarker(bq *ast.Blockquote, source []byte) (string, bool) {
	para, ok := bq.FirstChild().(*ast.Paragraph)
	if !ok {
		return "", false
	}

	// 첫 텍스트 노드까지 내려간다 (**[!NOTE]** 처럼 감싼 경우)
	var container ast.Node = para
	for {
		first := container.FirstChild()
		if first == nil {
			return "", false
		}
		if _, isText := first.(*ast.Text); isText {
			break
		}
		if _, isEmph := first.(*ast.Emphasis); !isEmph {
			return "", false
		}
		container = first
	}

	var line []byte
	var texts []*ast.Text
	for c := container.FirstChild(); c != nil; c = c.NextSibling() {
		t, ok := c.(*ast.Text)
		if !ok {
			break
		}
		line = append(line, t.Segment.Value(source)...)
		texts = append(texts, t)
		if t.SoftLineBreak() || t.HardLineBreak() {
			break
		}
	}

	m := calloutMarker.FindSubmatchIndex(line)
	if m == nil {
		return "", false
	}
	variant := strings.ToLower(string(line[m[2]:m[3]]))

	consume := m[1]
	for _, t := range texts {
		if consume <= 0 {
			break
		}
		n := t.Segment.Len()
		if consume >= n {
			container.RemoveChild(container, t)
			consume -= n
			continue
		}
		t.Segment = t.Segment.WithStart(t.Segment.Start + consume)
		consume = 0
	}

	// 비어버린 강조 노드를 지우고 뒤따르는 공백을 정리한다
	unwrapped := false
	for n := container; n != ast.Node(para) && n.ChildCount() == 0; {
		parent := n.Parent()
		parent.RemoveChild(parent, n)
		n = parent
		unwrapped = true
	}
	if unwrapped {
		if t, ok := para.FirstChild().(*ast.Text); ok {
			seg := t.Segment
			for seg.Len() > 0 && (source[seg.Start] == ' ' || source[seg.Start] == '\t') {
				seg = seg.WithStart(seg.Start + 1)
			}
			t.Segment = seg
		}
	}

	if para.ChildCount() == 0 {
		bq.RemoveChild(bq, para)
	}
	return variant, true
}

type calloutHTMLRenderer struct{}

func (r *calloutHTMLRenderer) RegisterFuncs(reg gmrenderer.NodeRendererFuncRegisterer) {
	reg.Register(KindCallout, r.renderCallout)
}

func (r *calloutHTMLRenderer) renderCallout(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*Callout)
	if entering {
		_, _ = w.WriteString(`<div class="callout callout-` + n.Variant + `">` + "\n")
		_, _ = w.WriteString(`<p class="callout-title">`)
		_, _ = w.Write(util.EscapeHTML([]byte(n.Title)))
		_, _ = w.WriteString("</p>\n")
		return ast.WalkContinue, nil
	}
	_, _ = w.WriteString("</div>\n")
	return ast.WalkContinue, nil
}

// urlPolicyTransformer rewrites link and image destinations with TransformURL.
type urlPolicyTransformer struct{}

func (t *urlPolicyTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch v := n.(type) {
		case *ast.Link:
			v.Destination = []byte(TransformURL(string(v.Destination)))
		case *ast.Image:
			v.Destination = []byte(TransformURL(string(v.Destination)))
		}
		return ast.WalkContinue, nil
	})
}

// dialect bundles the blog's Markdown extensions as a goldmark extender.
type dialect struct{}

func (dialect) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(&calloutTransformer{}, 100),
		util.Prioritized(&urlPolicyTransformer{}, 200),
	))
	m.Renderer().AddOptions(gmrenderer.WithNodeRenderers(
		util.Prioritized(&calloutHTMLRenderer{}, 500),
	))
}

// headingIDs generates heading ids with Slugify so rendered anchors match ExtractTOC.
type headingIDs struct{}

func (headingIDs) Generate(value []byte, kind ast.NodeKind) []byte {
	return []byte(Slugify(string(value)))
}

func (headingIDs) Put(value []byte) {}
