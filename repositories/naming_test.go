package repositories_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"yospace/repositories"
)

func TestParseFileName(t *testing.T) {
	testCases := []struct {
		name       string
		file       string
		wantSlug   string
		wantLocale string
	}{
		{"default locale", "hello.md", "hello", "en"},
		{"explicit locale", "hello.zh-CN.md", "hello", "zh-CN"},
		{"dotted locale", "hello.zh.Hans.md", "hello", "zh.Hans"},
		{"no extension", "hello", "hello", "en"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			slug, locale := repositories.ParseFileName(tc.file, "en")
			assert.Equal(t, tc.wantSlug, slug)
			assert.Equal(t, tc.wantLocale, locale)
		})
	}
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "hello.md", repositories.FileName("hello", "en", "en"))
	assert.Equal(t, "hello.md", repositories.FileName("hello", "", "en"))
	assert.Equal(t, "hello.zh-CN.md", repositories.FileName("hello", "zh-CN", "en"))
}

func TestMatchesLocale(t *testing.T) {
	testCases := []struct {
		file   string
		locale string
		want   bool
	}{
		{"foo.md", "en", true},
		{"foo.zh-CN.md", "en", false},
		{"foo.zh-CN.md", "zh-CN", true},
		{"foo.md", "zh-CN", false},
		{"foo..md", "en", false},
		{"foo.txt", "en", false},
		{"foo.en.md", "en", false},
		{"foo.zh-CN.md", "CN", false},
	}

	for _, tc := range testCases {
		t.Run(tc.file+"/"+tc.locale, func(t *testing.T) {
			assert.Equal(t, tc.want, repositories.MatchesLocale(tc.file, tc.locale, "en"))
		})
	}
}

func TestLocaleResolver_Candidates(t *testing.T) {
	r := repositories.LocaleResolver{
		Default:   "en",
		Secondary: []string{"zh-CN"},
		Aliases:   map[string]string{"zh-Hans": "zh-CN"},
	}

	assert.Equal(t, []string{"zh-Hans", "zh-CN", "en"}, r.Candidates("zh-Hans"))
	assert.Equal(t, []string{"en", "zh-CN"}, r.Candidates("en"))
	assert.Equal(t, []string{"zh-CN", "en"}, r.Candidates("zh-CN"))
	assert.Equal(t, []string{"fr", "en", "zh-CN"}, r.Candidates("fr"))
	assert.Equal(t, []string{"en", "zh-CN"}, r.Candidates(""))
}

func TestNotFoundError(t *testing.T) {
	var err error = &repositories.NotFoundError{Slug: "missing", Locale: "en"}

	assert.True(t, errors.Is(err, repositories.ErrPostNotFound))
	assert.Contains(t, err.Error(), "missing")

	var nf *repositories.NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, "en", nf.Locale)
}
