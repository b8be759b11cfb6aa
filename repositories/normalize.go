package repositories

import (
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"

	"yospace/models"
)

// normalizePost turns loosely typed frontmatter into a PostItem.
// Nothing downstream of this function sees raw metadata values.
func normalizePost(slug, locale string, meta map[string]any) models.PostItem {
	item := models.PostItem{
		Slug:          slug,
		Locale:        locale,
		Title:         toText(meta["title"]),
		Description:   toText(meta["description"]),
		PublishedTime: toDateText(firstPresent(meta, "date", "publishedTime")),
		IsPinned:      toBool(meta["isPinned"]),
		PinnedRank:    toRank(meta["pinnedRank"]),
		IsRecommended: toBool(meta["isRecommended"]),
		RecommendRank: toRank(meta["recommendRank"]),
		Category:      toCategory(meta["category"]),
		Tags:          toTags(meta["tags"]),
		Series:        toSeries(meta["series"]),
	}
	if item.Title == "" {
		item.Title = slug
	}
	return item
}

func firstPresent(meta map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := meta[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func toText(v any) string {
	if v == nil {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

// toDateText keeps string dates as written; TOML and other typed dates are rendered as RFC3339.
func toDateText(v any) string {
	switch d := v.(type) {
	case nil:
		return ""
	case time.Time:
		return d.Format(time.RFC3339)
	case *time.Time:
		if d == nil {
			return ""
		}
		return d.Format(time.RFC3339)
	default:
		return toText(v)
	}
}

func toBool(v any) bool {
	if v == nil {
		return false
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false
	}
	return b
}

// toRank accepts numbers and numeric strings. Anything else, including NaN and
// infinities, is treated as absent.
func toRank(v any) *int {
	switch r := v.(type) {
	case nil, bool:
		return nil
	case string:
		r = strings.TrimSpace(r)
		if r == "" {
			return nil
		}
		v = r
	}

	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	n, err := cast.ToIntE(math.Trunc(f))
	if err != nil {
		return nil
	}
	return &n
}

func toCategory(v any) *models.PostCategory {
	switch c := v.(type) {
	case string:
		if id := strings.TrimSpace(c); id != "" {
			return &models.PostCategory{ID: id}
		}
	case map[string]any:
		id := toText(c["id"])
		if id == "" {
			return nil
		}
		return &models.PostCategory{
			ID:      id,
			LabelZh: toText(c["labelZh"]),
			LabelEn: toText(c["labelEn"]),
		}
	}
	return nil
}

// toTags accepts a list or a comma separated string.
func toTags(v any) []string {
	var raw []string
	switch t := v.(type) {
	case nil:
	case string:
		raw = strings.Split(t, ",")
	case []string:
		raw = t
	default:
		list, err := cast.ToSliceE(v)
		if err != nil {
			return []string{}
		}
		for _, e := range list {
			raw = append(raw, toText(e))
		}
	}

	tags := make([]string, 0, len(raw))
	for _, tag := range raw {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func toSeries(v any) *models.PostSeries {
	s, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	id := toText(s["id"])
	if id == "" {
		return nil
	}
	return &models.PostSeries{
		ID:    id,
		Label: toText(s["label"]),
		Index: toRank(s["index"]),
	}
}
