package repositories

import (
	"errors"
	"fmt"
	"strings"
)

const markdownExt = ".md"

// ErrPostNotFound matches every *NotFoundError via errors.Is.
var ErrPostNotFound = errors.New("post not found")

// NotFoundError names the (slug, locale) pair that could not be resolved to a file.
type NotFoundError struct {
	Slug   string
	Locale string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("post not found: %s (%s)", e.Slug, e.Locale)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrPostNotFound
}

// ParseFileName splits a content file name into slug and locale.
// The first dot-segment is the slug; whatever sits between it and the trailing
// "md" segment is the locale, so locale tokens may themselves contain dots.
func ParseFileName(name, defaultLocale string) (slug, locale string) {
	base := strings.TrimSuffix(name, markdownExt)
	slug, rest, found := strings.Cut(base, ".")
	if !found || rest == "" {
		return slug, defaultLocale
	}
	return slug, rest
}

// FileName is the inverse of ParseFileName.
func FileName(slug, locale, defaultLocale string) string {
	if locale == "" || locale == defaultLocale {
		return slug + markdownExt
	}
	return slug + "." + locale + markdownExt
}

// MatchesLocale reports whether a file belongs to the locale's listing.
// The default locale only takes the bare "{slug}.md" form (exactly two dot-segments).
func MatchesLocale(name, locale, defaultLocale string) bool {
	if !strings.HasSuffix(name, markdownExt) {
		return false
	}
	if locale == defaultLocale {
		return len(strings.Split(name, ".")) == 2
	}
	return strings.HasSuffix(name, "."+locale+markdownExt)
}

// LocaleResolver holds the locale set used for fallback lookups.
type LocaleResolver struct {
	Default   string
	Secondary []string
	// Aliases maps a legacy tag to the locale suffix used on disk.
	Aliases map[string]string
}

// Normalize maps an alias to its current locale; empty input becomes the default locale.
func (r LocaleResolver) Normalize(locale string) string {
	if locale == "" {
		return r.Default
	}
	if alias, ok := r.Aliases[locale]; ok {
		return alias
	}
	return locale
}

// Candidates returns the locales to try for a single-post lookup, in priority order:
// requested, alias-normalized, default, then secondary locales. Duplicates are dropped.
func (r LocaleResolver) Candidates(locale string) []string {
	if locale == "" {
		locale = r.Default
	}

	ordered := make([]string, 0, 3+len(r.Secondary))
	ordered = append(ordered, locale, r.Normalize(locale), r.Default)
	ordered = append(ordered, r.Secondary...)

	seen := make(map[string]struct{}, len(ordered))
	out := make([]string, 0, len(ordered))
	for _, l := range ordered {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}
