package parser

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// ErrMalformedFrontMatter is returned when a frontmatter block exists but cannot be decoded.
var ErrMalformedFrontMatter = errors.New("malformed frontmatter")

// Document is a Markdown file split into its metadata block and body.
type Document struct {
	Metadata map[string]any
	Body     string
}

var formats = []*frontmatter.Format{
	frontmatter.NewFormat("---", "---", yaml.Unmarshal),
	frontmatter.NewFormat("+++", "+++", toml.Unmarshal),
}

// ParseFrontMatter splits raw file bytes into metadata and body.
// No type checks are done here; the content store owns coercion and defaults.
// Input without a frontmatter block yields empty metadata and the whole input as body.
func ParseFrontMatter(raw []byte) (Document, error) {
	meta := map[string]any{}

	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta, formats...)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrMalformedFrontMatter, err)
	}
	// "---\n---" 처럼 비어 있는 블록은 nil 맵으로 디코딩된다.
	if meta == nil {
		meta = map[string]any{}
	}

	return Document{Metadata: meta, Body: string(body)}, nil
}
