package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"yospace/config"
	"yospace/renderer"
	"yospace/repositories"
	"yospace/services"
)

// truncate returns s truncated to max runes.
func truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}

// content 디렉터리를 한 번 훑어 locale 별 목록을 출력하고,
// 모든 글을 실제로 렌더링해 깨진 frontmatter/본문을 찾는다.
// CONTENT_DIR 로 대상 디렉터리를 바꿀 수 있다.
func main() {
	config.InitApp()
	cfg := config.GetConfig()

	dir := cfg.Content.PostsDir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(config.GetBasePath(), dir)
	}

	repo := repositories.NewPostRepository(os.DirFS(dir), repositories.LocaleResolver{
		Default:   cfg.Content.DefaultLocale,
		Secondary: cfg.Content.SecondaryLocales(),
		Aliases:   cfg.Content.LocaleAliases,
	}, 0)
	rend := renderer.New()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := repo.Ping(); err != nil {
		config.Log.Errorf("content directory %s unreadable: %v", dir, err)
		os.Exit(1)
	}

	failures := 0
	for _, locale := range cfg.Content.Locales {
		posts, err := repo.All(ctx, locale)
		if err != nil {
			config.Log.Errorf("failed to list %s posts: %v", locale, err)
			os.Exit(1)
		}

		for i, item := range posts {
			fmt.Printf("%s \t%d. 제목: %s\n슬러그: %s\n게시일: %s\n", locale, i, item.Title, item.Slug, item.PublishedTime)
			if item.PublishedAt().IsZero() {
				fmt.Println("  ! publishedTime 을 해석할 수 없음")
			}

			post, err := repo.Get(ctx, item.Slug, locale)
			if err != nil {
				failures++
				config.ErrorWithFields("failed to load post", config.Fields{"slug": item.Slug, "locale": locale, "error": err.Error()})
				continue
			}
			out, err := rend.Render(post.Content, post.Locale)
			if err != nil {
				failures++
				config.ErrorWithFields("failed to render post", config.Fields{"slug": item.Slug, "locale": locale, "error": err.Error()})
				continue
			}
			fmt.Printf("목차: %d개, HTML: %d bytes\n미리보기: %s\n\n", len(out.TOC), len(out.HTML), truncate(post.Description, 80))
		}

		cats := services.Categories(posts, locale, services.LabelStrategy(cfg.Taxonomy.LabelStrategy), cfg.Taxonomy.Labels)
		tags := services.Tags(posts, locale)
		fmt.Printf("[%s] posts=%d categories=%d tags=%d\n\n", locale, len(posts), len(cats), len(tags))
	}

	if failures > 0 {
		config.Log.Errorf("%d post(s) failed", failures)
		os.Exit(1)
	}
}
