package repositories

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"yospace/config"
	"yospace/models"
	"yospace/parser"
)

// PostRepository reads posts from a flat directory of Markdown files.
// The directory is read-only at runtime, so the repository is safe for concurrent use.
type PostRepository struct {
	fsys    fs.FS
	locales LocaleResolver
	// index 는 locale 별 정렬된 목록 캐시이다. nil 이면 매 요청마다 디렉터리를 스캔한다.
	index *expirable.LRU[string, []models.PostItem]
}

// NewPostRepository creates a repository over fsys. A positive cacheTTL keeps each
// locale's sorted index for that long before the directory is scanned again.
func NewPostRepository(fsys fs.FS, locales LocaleResolver, cacheTTL time.Duration) *PostRepository {
	r := &PostRepository{fsys: fsys, locales: locales}
	if cacheTTL > 0 {
		r.index = expirable.NewLRU[string, []models.PostItem](16, nil, cacheTTL)
	}
	return r
}

// Locales exposes the resolver so callers can normalize query locales the same way.
func (r *PostRepository) Locales() LocaleResolver {
	return r.locales
}

// List returns one page of the locale's posts sorted by publishedTime desc.
// offset is a zero-based page index: the page is [offset*limit, (offset+1)*limit).
func (r *PostRepository) List(ctx context.Context, offset, limit int, locale string) (models.PostList, error) {
	all, err := r.All(ctx, locale)
	if err != nil {
		return models.PostList{}, err
	}

	out := models.PostList{Items: []models.PostItem{}, Total: len(all)}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		return out, nil
	}

	// offset*limit 이 넘치지 않도록 페이지 번호로 먼저 비교한다
	if len(all) == 0 || offset > (len(all)-1)/limit {
		return out, nil
	}
	start := offset * limit
	end := min(start+limit, len(all))
	out.Items = append(out.Items, all[start:end]...)
	return out, nil
}

// All returns every post of the locale, sorted by publishedTime desc.
// Files that cannot be read or parsed are skipped and logged.
func (r *PostRepository) All(ctx context.Context, locale string) ([]models.PostItem, error) {
	locale = r.locales.Normalize(locale)

	if r.index != nil {
		if items, ok := r.index.Get(locale); ok {
			return slices.Clone(items), nil
		}
	}

	names, err := r.markdownFiles()
	if err != nil {
		return nil, err
	}

	items := make([]models.PostItem, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !MatchesLocale(name, locale, r.locales.Default) {
			continue
		}

		doc, err := r.readDocument(name)
		if err != nil {
			config.WarnWithFields("skipping content file", config.Fields{
				"file":  name,
				"error": err.Error(),
			})
			continue
		}
		slug, fileLocale := ParseFileName(name, r.locales.Default)
		items = append(items, normalizePost(slug, fileLocale, doc.Metadata))
	}

	sortByPublishedDesc(items)

	if r.index != nil {
		r.index.Add(locale, items)
		return slices.Clone(items), nil
	}
	return items, nil
}

// Get resolves slug through the locale fallback chain and returns the first file found.
// The returned Locale is the locale actually served.
func (r *PostRepository) Get(ctx context.Context, slug, locale string) (models.PostContent, error) {
	if locale == "" {
		locale = r.locales.Default
	}
	if !validSlug(slug) {
		return models.PostContent{}, &NotFoundError{Slug: slug, Locale: locale}
	}

	for _, candidate := range r.locales.Candidates(locale) {
		if err := ctx.Err(); err != nil {
			return models.PostContent{}, err
		}

		name := FileName(slug, candidate, r.locales.Default)
		doc, err := r.readDocument(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return models.PostContent{}, err
		}

		return models.PostContent{
			PostItem: normalizePost(slug, candidate, doc.Metadata),
			Content:  doc.Body,
		}, nil
	}

	return models.PostContent{}, &NotFoundError{Slug: slug, Locale: locale}
}

// Slugs returns every distinct slug across all locale variants, sorted.
func (r *PostRepository) Slugs(ctx context.Context) ([]string, error) {
	names, err := r.markdownFiles()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(names))
	slugs := make([]string, 0, len(names))
	for _, name := range names {
		slug, _ := ParseFileName(name, r.locales.Default)
		if _, ok := seen[slug]; ok {
			continue
		}
		seen[slug] = struct{}{}
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs, nil
}

// Ping reports whether the content directory can be listed.
func (r *PostRepository) Ping() error {
	_, err := fs.ReadDir(r.fsys, ".")
	return err
}

// markdownFiles lists .md files in directory order. A missing directory is treated as empty.
func (r *PostRepository) markdownFiles() ([]string, error) {
	entries, err := fs.ReadDir(r.fsys, ".")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read content dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), markdownExt) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

func (r *PostRepository) readDocument(name string) (parser.Document, error) {
	raw, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return parser.Document{}, fmt.Errorf("read %s: %w", name, err)
	}
	doc, err := parser.ParseFrontMatter(raw)
	if err != nil {
		return parser.Document{}, fmt.Errorf("parse %s: %w", name, err)
	}
	return doc, nil
}

func sortByPublishedDesc(items []models.PostItem) {
	type keyed struct {
		at   time.Time
		item models.PostItem
	}
	ks := make([]keyed, len(items))
	for i, it := range items {
		ks[i] = keyed{at: it.PublishedAt(), item: it}
	}
	slices.SortStableFunc(ks, func(a, b keyed) int {
		return b.at.Compare(a.at)
	})
	for i := range ks {
		items[i] = ks[i].item
	}
}

// validSlug rejects anything that could escape the flat content directory or
// change how the file name is split.
func validSlug(slug string) bool {
	if slug == "" {
		return false
	}
	return !strings.ContainsAny(slug, `./\`)
}
