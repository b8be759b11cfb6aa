package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yospace/cmd/api/dto"
	"yospace/cmd/api/router"
	"yospace/config"
	"yospace/models"
	"yospace/repositories"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const helloEN = `---
title: Hello
description: first post
date: 2024-01-01
isPinned: true
isRecommended: true
category:
  id: notes
  labelZh: 笔记
  labelEn: Notes
tags: [go, blog]
series:
  id: intro
  label: Intro
  index: 1
---
## Getting started

> [!TIP]
> read me

[docs](</docs/a b.md>)
`

const helloZH = `---
title: 你好
date: 2024-01-01
---
正文
`

const secondEN = `---
title: Second
date: 2024-03-01
isRecommended: true
tags: go
series:
  id: intro
  index: 2
---
body
`

func contentFS() fstest.MapFS {
	return fstest.MapFS{
		"hello.md":       {Data: []byte(helloEN)},
		"hello.zh-CN.md": {Data: []byte(helloZH)},
		"second.md":      {Data: []byte(secondEN)},
		"broken.md":      {Data: []byte("---\ntitle: [unterminated\n---\n")},
	}
}

type fixture struct {
	engine *gin.Engine
	music  *httptest.Server
}

func newFixture(t *testing.T, mutate func(*config.AppConfig)) fixture {
	t.Helper()

	music := httptest.NewServer(musicAPI())
	t.Cleanup(music.Close)

	cfg := *config.Default()
	cfg.Music.APIBase = music.URL
	cfg.Music.PlaylistID = "42"
	cfg.Profile = config.Profile{SiteName: "YoSpace", Names: []string{"Yo"}}
	cfg.Links = []config.FriendLink{{Title: "Friend", Link: "https://friend.example"}}
	if mutate != nil {
		mutate(&cfg)
	}

	repo := repositories.NewPostRepository(contentFS(), repositories.LocaleResolver{
		Default:   cfg.Content.DefaultLocale,
		Secondary: cfg.Content.SecondaryLocales(),
		Aliases:   cfg.Content.LocaleAliases,
	}, 0)

	r, deps, err := router.NewWithRepository(cfg, repo)
	require.NoError(t, err)
	require.NotNil(t, deps.Limiter)
	return fixture{engine: r, music: music}
}

func musicAPI() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/playlist/track/all", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":200,"songs":[
			{"id":1,"name":"One","ar":[{"name":"A"},{"name":"B"}],"al":{"name":"Alb","picUrl":"http://img.example/1.jpg"},"dt":1000},
			{"id":2,"name":"Two","artists":[],"album":{"name":"Other","picUrl":"https://img.example/2.jpg"},"duration":2000}
		]}`))
	})
	mux.HandleFunc("/check/music", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("id") == "1" {
			w.Write([]byte(`{"success":true}`))
			return
		}
		w.Write([]byte(`{"success":false}`))
	})
	mux.HandleFunc("/song/url/v1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":200,"data":[{"id":1,"url":"http://cdn.example/1.mp3"}]}`))
	})
	mux.HandleFunc("/echo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("echo " + r.URL.RawQuery))
	})
	return mux
}

func (f fixture) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	f.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestBlogList(t *testing.T) {
	f := newFixture(t, nil)

	w := f.get(t, "/api/blog/list?locale=en")
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[dto.PostListDTO](t, w)
	assert.Equal(t, 2, page.Total, "broken file is skipped")
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Second", page.Items[0].Title)
	assert.Equal(t, "Hello", page.Items[1].Title)

	w = f.get(t, "/api/blog/list?offset=1&limit=1")
	page = decode[dto.PostListDTO](t, w)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Hello", page.Items[0].Title)

	// malformed numbers fall back to defaults
	w = f.get(t, "/api/blog/list?offset=abc&limit=-3")
	require.Equal(t, http.StatusOK, w.Code)
	page = decode[dto.PostListDTO](t, w)
	assert.Len(t, page.Items, 2)

	// 아주 큰 offset 은 빈 페이지
	w = f.get(t, "/api/blog/list?offset=2305843009213693955&limit=4")
	require.Equal(t, http.StatusOK, w.Code)
	page = decode[dto.PostListDTO](t, w)
	assert.Equal(t, 2, page.Total)
	assert.Empty(t, page.Items)

	w = f.get(t, "/api/blog/list?locale=zh-CN")
	page = decode[dto.PostListDTO](t, w)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "你好", page.Items[0].Title)
}

func TestBlogPost(t *testing.T) {
	f := newFixture(t, nil)

	w := f.get(t, "/api/blog/post?slug=hello&locale=zh-CN")
	require.Equal(t, http.StatusOK, w.Code)
	post := decode[models.PostContent](t, w)
	assert.Equal(t, "你好", post.Title)
	assert.Contains(t, post.Content, "正文")

	// zh-CN falls back to the base locale file
	w = f.get(t, "/api/blog/post?slug=second&locale=zh-CN")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "en", decode[models.PostContent](t, w).Locale)

	w = f.get(t, "/api/blog/post")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing slug", decode[dto.ErrorResponseDTO](t, w).Message)

	for _, target := range []string{
		"/api/blog/post?slug=missing",
		"/api/blog/post?slug=broken",
		"/api/blog/post?slug=../etc/passwd",
	} {
		w = f.get(t, target)
		assert.Equal(t, http.StatusNotFound, w.Code, target)
		assert.JSONEq(t, `{"message":"Post not found"}`, w.Body.String(), target)
	}
}

func TestBlogRender(t *testing.T) {
	f := newFixture(t, nil)

	w := f.get(t, "/api/blog/render?slug=hello")
	require.Equal(t, http.StatusOK, w.Code)
	out := decode[dto.RenderedPostDTO](t, w)
	assert.Equal(t, "Hello", out.Title)
	assert.Contains(t, out.HTML, `<h2 id="getting-started">`)
	assert.Contains(t, out.HTML, `callout-tip`)
	assert.Contains(t, out.HTML, `href="/docs/a%20b.md"`)
	require.Len(t, out.TOC, 1)
	assert.Equal(t, "getting-started", out.TOC[0].ID)

	w = f.get(t, "/api/blog/render?slug=nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBlogDerivedViews(t *testing.T) {
	f := newFixture(t, nil)

	home := decode[dto.HomeDTO](t, f.get(t, "/api/blog/home?sort=recommend"))
	require.Len(t, home.Pinned, 1)
	assert.Equal(t, "hello", home.Pinned[0].Slug)
	require.Len(t, home.Normal, 1)

	cats := decode[dto.TaxonomyListDTO](t, f.get(t, "/api/blog/categories?locale=zh-CN"))
	assert.Empty(t, cats.Items, "zh-CN post has no category")
	cats = decode[dto.TaxonomyListDTO](t, f.get(t, "/api/blog/categories"))
	require.Len(t, cats.Items, 1)
	assert.Equal(t, "Notes", cats.Items[0].Label)

	cat := decode[dto.CategoryDetailDTO](t, f.get(t, "/api/blog/categories/notes"))
	assert.Equal(t, "Notes", cat.Label)
	assert.Len(t, cat.Items, 1)
	assert.Equal(t, http.StatusNotFound, f.get(t, "/api/blog/categories/none").Code)

	tags := decode[dto.TaxonomyListDTO](t, f.get(t, "/api/blog/tags"))
	require.NotEmpty(t, tags.Items)
	assert.Equal(t, "go", tags.Items[0].ID)
	assert.Equal(t, 2, tags.Items[0].Count)

	tag := decode[dto.TagDetailDTO](t, f.get(t, "/api/blog/tags/blog"))
	assert.Len(t, tag.Items, 1)
	assert.Equal(t, http.StatusNotFound, f.get(t, "/api/blog/tags/rust").Code)

	series := decode[dto.SeriesDTO](t, f.get(t, "/api/blog/series?slug=second"))
	require.NotNil(t, series.Series)
	assert.Equal(t, "intro", series.Series.ID)
	require.Len(t, series.Items, 2)
	assert.Equal(t, "hello", series.Items[0].Slug)
	assert.Equal(t, http.StatusNotFound, f.get(t, "/api/blog/series?slug=nope").Code)

	rec := decode[dto.ItemsDTO[models.PostItem]](t, f.get(t, "/api/blog/recommend?slug=hello"))
	require.Len(t, rec.Items, 1)
	assert.Equal(t, "second", rec.Items[0].Slug)

	search := decode[dto.SearchDTO](t, f.get(t, "/api/blog/search?q=FIRST"))
	assert.Equal(t, 1, search.Total)

	archive := decode[dto.ArchiveDTO](t, f.get(t, "/api/blog/archive"))
	require.Len(t, archive.Years, 1)
	assert.Equal(t, 2024, archive.Years[0].Year)
	assert.Equal(t, 3, archive.Years[0].Months[0].Month)

	slugs := decode[dto.SlugsDTO](t, f.get(t, "/api/blog/slugs"))
	assert.Equal(t, []string{"broken", "hello", "second"}, slugs.Slugs)
}

func TestHighlightCSS(t *testing.T) {
	f := newFixture(t, nil)

	w := f.get(t, "/api/blog/highlight.css")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/css")
	assert.Contains(t, w.Body.String(), ".chroma")
}

func TestSiteRoutes(t *testing.T) {
	f := newFixture(t, func(c *config.AppConfig) { c.Site.URL = "https://yo.example" })

	profile := decode[dto.ProfileDTO](t, f.get(t, "/api/profile"))
	assert.Equal(t, "YoSpace", profile.Profile.SiteName)
	require.Len(t, profile.Links, 1)

	// friends without a feed url are skipped
	feeds := decode[dto.FriendFeedsDTO](t, f.get(t, "/api/links/feeds"))
	assert.Empty(t, feeds.Items)

	w := f.get(t, "/sitemap.xml")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<loc>https://yo.example/blog/hello</loc>")

	w = f.get(t, "/robots.txt")
	assert.Contains(t, w.Body.String(), "Sitemap: https://yo.example/sitemap.xml")

	w = f.get(t, "/rss.xml")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/rss+xml")
	assert.Contains(t, w.Body.String(), "<title>Second</title>")
}

func TestMusicRoutes(t *testing.T) {
	f := newFixture(t, nil)

	w := f.get(t, "/api/music/playlist")
	require.Equal(t, http.StatusOK, w.Code)
	pl := decode[dto.PlaylistDTO](t, w)
	require.Len(t, pl.Tracks, 2)
	assert.Equal(t, "A, B", pl.Tracks[0].Artists)
	assert.Equal(t, "https://img.example/1.jpg", pl.Tracks[0].Cover)
	assert.Equal(t, "Unknown Artist", pl.Tracks[1].Artists)
	assert.Equal(t, "Other", pl.Tracks[1].Album)
	assert.Equal(t, int64(2000), pl.Tracks[1].Duration)

	w = f.get(t, "/api/music/songs/1/url")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://cdn.example/1.mp3", decode[dto.SongURLDTO](t, w).URL)

	assert.Equal(t, http.StatusNotFound, f.get(t, "/api/music/songs/2/url").Code)
	assert.Equal(t, http.StatusBadRequest, f.get(t, "/api/music/songs/abc/url").Code)
}

func TestMusicRoutes_UpstreamDown(t *testing.T) {
	f := newFixture(t, nil)
	f.music.Close()

	w := f.get(t, "/api/music/playlist")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestMusicProxy_RateLimited(t *testing.T) {
	f := newFixture(t, func(c *config.AppConfig) {
		c.Music.RequestsPerMinute = 1
		c.Music.Burst = 2
	})

	w := f.get(t, "/api/music-proxy/echo?x=1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "echo x=1", w.Body.String())

	assert.Equal(t, http.StatusOK, f.get(t, "/api/music-proxy/echo").Code)
	w = f.get(t, "/api/music-proxy/echo")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "Too many requests", decode[dto.ErrorResponseDTO](t, w).Message)
}

func TestHealthAndTrace(t *testing.T) {
	f := newFixture(t, nil)

	w := f.get(t, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[dto.HealthResponseDTO](t, w).Status)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	w = f.get(t, "/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	f := newFixture(t, func(c *config.AppConfig) {
		c.CORS.AllowedOrigins = []string{"https://yo.example"}
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/blog/list", nil)
	req.Header.Set("Origin", "https://yo.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://yo.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/blog/slugs", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.False(t, strings.Contains(w.Body.String(), "evil"))
}
