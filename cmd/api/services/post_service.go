package services

import (
	"context"
	"errors"
	"strings"

	"yospace/cmd/api/dto"
	"yospace/config"
	"yospace/models"
	"yospace/renderer"
	"yospace/repositories"
	views "yospace/services"
)

// ErrNotFound is returned when a derived view (category, tag, series) has nothing to show.
var ErrNotFound = errors.New("not found")

// PostService encapsulates business logic for posts and DTO mapping.
//
// - repo: content 디렉터리의 Markdown 파일을 읽는다.
// - renderer: 본문을 HTML + TOC 로 변환한다.
type PostService struct {
	repo     *repositories.PostRepository
	renderer *renderer.Renderer
	content  config.ContentConfig
}

func NewPostService(repo *repositories.PostRepository, r *renderer.Renderer, content config.ContentConfig) *PostService {
	return &PostService{repo: repo, renderer: r, content: content}
}

// PageSize is the configured default list limit.
func (s *PostService) PageSize() int {
	return s.content.PageSize
}

func (s *PostService) locale(locale string) string {
	if strings.TrimSpace(locale) == "" {
		return s.content.DefaultLocale
	}
	return locale
}

func (s *PostService) List(ctx context.Context, offset, limit int, locale string) (dto.PostListDTO, error) {
	list, err := s.repo.List(ctx, offset, limit, s.locale(locale))
	if err != nil {
		return dto.PostListDTO{}, err
	}
	return dto.PostListDTO{Items: list.Items, Total: list.Total}, nil
}

func (s *PostService) Get(ctx context.Context, slug, locale string) (models.PostContent, error) {
	return s.repo.Get(ctx, slug, s.locale(locale))
}

// Render loads a post and renders its body with the locale the file was actually served in.
func (s *PostService) Render(ctx context.Context, slug, locale string) (dto.RenderedPostDTO, error) {
	post, err := s.Get(ctx, slug, locale)
	if err != nil {
		return dto.RenderedPostDTO{}, err
	}
	out, err := s.renderer.Render(post.Content, post.Locale)
	if err != nil {
		return dto.RenderedPostDTO{}, err
	}
	toc := out.TOC
	if toc == nil {
		toc = []renderer.TOCEntry{}
	}
	return dto.RenderedPostDTO{PostContent: post, HTML: out.HTML, TOC: toc}, nil
}

func (s *PostService) Home(ctx context.Context, locale string, mode views.SortMode) (dto.HomeDTO, error) {
	all, err := s.repo.All(ctx, s.locale(locale))
	if err != nil {
		return dto.HomeDTO{}, err
	}
	split := views.SplitPinned(all, mode)
	if split.Pinned == nil {
		split.Pinned = []models.PostItem{}
	}
	if split.Normal == nil {
		split.Normal = []models.PostItem{}
	}
	return split, nil
}

func (s *PostService) Archive(ctx context.Context, locale string) (dto.ArchiveDTO, error) {
	all, err := s.repo.All(ctx, s.locale(locale))
	if err != nil {
		return dto.ArchiveDTO{}, err
	}
	return dto.ArchiveDTO{Years: views.Archive(all)}, nil
}

func (s *PostService) Search(ctx context.Context, query, locale string) (dto.SearchDTO, error) {
	all, err := s.repo.All(ctx, s.locale(locale))
	if err != nil {
		return dto.SearchDTO{}, err
	}
	items := views.Search(all, query)
	return dto.SearchDTO{Query: query, Items: items, Total: len(items)}, nil
}

// Recommend samples recommended posts other than slug. limit <= 0 uses the configured limit.
func (s *PostService) Recommend(ctx context.Context, slug, locale string, limit int) (dto.ItemsDTO[models.PostItem], error) {
	all, err := s.repo.All(ctx, s.locale(locale))
	if err != nil {
		return dto.ItemsDTO[models.PostItem]{}, err
	}
	if limit <= 0 {
		limit = s.content.RecommendLimit
	}
	return dto.ItemsDTO[models.PostItem]{Items: views.Recommend(all, slug, limit, nil)}, nil
}

// Series returns the series of the post with slug. A post outside any series yields an empty list.
func (s *PostService) Series(ctx context.Context, slug, locale string) (dto.SeriesDTO, error) {
	all, err := s.repo.All(ctx, s.locale(locale))
	if err != nil {
		return dto.SeriesDTO{}, err
	}
	series, members, ok := views.SeriesOf(all, slug)
	if !ok {
		return dto.SeriesDTO{}, &repositories.NotFoundError{Slug: slug, Locale: s.locale(locale)}
	}
	if members == nil {
		members = []models.PostItem{}
	}
	return dto.SeriesDTO{Series: series, Items: members}, nil
}

func (s *PostService) Slugs(ctx context.Context) (dto.SlugsDTO, error) {
	slugs, err := s.repo.Slugs(ctx)
	if err != nil {
		return dto.SlugsDTO{}, err
	}
	return dto.SlugsDTO{Slugs: slugs}, nil
}

// HighlightCSS returns the stylesheet for highlighted code blocks.
func (s *PostService) HighlightCSS() (string, error) {
	return s.renderer.StylesheetCSS()
}

// Ping reports content directory reachability for /health.
func (s *PostService) Ping() error {
	return s.repo.Ping()
}
