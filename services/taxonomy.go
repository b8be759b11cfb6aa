package services

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"yospace/models"
)

// LabelStrategy decides where a category's display label comes from.
type LabelStrategy string

const (
	// LabelI18nFirst prefers the configured dictionary, then the frontmatter label, then the id.
	LabelI18nFirst LabelStrategy = "i18n-first"
	// LabelFrontmatterFirst prefers the frontmatter label, then the dictionary, then the id.
	LabelFrontmatterFirst LabelStrategy = "frontmatter-first"
)

// LabelDictionary maps category id -> locale -> label.
type LabelDictionary map[string]map[string]string

// TaxonomySummary is one category or tag with the number of posts carrying it.
type TaxonomySummary struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Categories groups posts by category id. Posts without a category are skipped.
func Categories(posts []models.PostItem, locale string, strategy LabelStrategy, dict LabelDictionary) []TaxonomySummary {
	byID := map[string]*TaxonomySummary{}
	var order []string

	for _, p := range posts {
		if p.Category == nil || p.Category.ID == "" {
			continue
		}
		s, ok := byID[p.Category.ID]
		if !ok {
			s = &TaxonomySummary{ID: p.Category.ID, Label: CategoryLabel(*p.Category, locale, strategy, dict)}
			byID[p.Category.ID] = s
			order = append(order, p.Category.ID)
		}
		s.Count++
	}

	return sortSummaries(collect(byID, order), locale)
}

// Tags groups posts by each of their tags. The label is the tag itself.
func Tags(posts []models.PostItem, locale string) []TaxonomySummary {
	byName := map[string]*TaxonomySummary{}
	var order []string

	for _, p := range posts {
		for _, tag := range p.Tags {
			s, ok := byName[tag]
			if !ok {
				s = &TaxonomySummary{ID: tag, Label: tag}
				byName[tag] = s
				order = append(order, tag)
			}
			s.Count++
		}
	}

	return sortSummaries(collect(byName, order), locale)
}

// CategoryLabel resolves the display label of a category for the viewer locale.
func CategoryLabel(c models.PostCategory, locale string, strategy LabelStrategy, dict LabelDictionary) string {
	fromFrontmatter := c.LabelEn
	if isChinese(locale) {
		fromFrontmatter = c.LabelZh
	}
	fromDict := dict.lookup(c.ID, locale)

	var first, second string
	switch strategy {
	case LabelFrontmatterFirst:
		first, second = fromFrontmatter, fromDict
	default:
		first, second = fromDict, fromFrontmatter
	}

	switch {
	case first != "":
		return first
	case second != "":
		return second
	default:
		return c.ID
	}
}

func (d LabelDictionary) lookup(id, locale string) string {
	labels, ok := d[id]
	if !ok {
		return ""
	}
	if l := labels[locale]; l != "" {
		return l
	}
	// zh-CN 이 없으면 zh 처럼 언어 코드만으로도 찾는다
	if base, _, found := strings.Cut(locale, "-"); found {
		return labels[base]
	}
	return ""
}

func isChinese(locale string) bool {
	return strings.HasPrefix(strings.ToLower(locale), "zh")
}

func collect(m map[string]*TaxonomySummary, order []string) []TaxonomySummary {
	out := make([]TaxonomySummary, 0, len(order))
	for _, k := range order {
		out = append(out, *m[k])
	}
	return out
}

// sortSummaries orders by count desc, then label asc using the locale's collation rules.
func sortSummaries(items []TaxonomySummary, locale string) []TaxonomySummary {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	col := collate.New(tag)

	slices.SortStableFunc(items, func(a, b TaxonomySummary) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		if c := col.CompareString(a.Label, b.Label); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return items
}
