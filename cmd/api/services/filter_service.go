package services

import (
	"context"
	"fmt"
	"strings"

	"yospace/cmd/api/dto"
	"yospace/config"
	"yospace/repositories"
	views "yospace/services"
)

// FilterService handles category and tag listings.
type FilterService struct {
	repo     *repositories.PostRepository
	taxonomy config.TaxonomyConfig
	locale   string
}

// NewFilterService creates a new FilterService instance
func NewFilterService(repo *repositories.PostRepository, taxonomy config.TaxonomyConfig, defaultLocale string) *FilterService {
	return &FilterService{repo: repo, taxonomy: taxonomy, locale: defaultLocale}
}

func (s *FilterService) resolve(locale string) string {
	if strings.TrimSpace(locale) == "" {
		return s.locale
	}
	return locale
}

func (s *FilterService) strategy() views.LabelStrategy {
	return views.LabelStrategy(s.taxonomy.LabelStrategy)
}

// GetCategories retrieves category summaries with post counts
func (s *FilterService) GetCategories(ctx context.Context, locale string) (dto.TaxonomyListDTO, error) {
	locale = s.resolve(locale)
	all, err := s.repo.All(ctx, locale)
	if err != nil {
		return dto.TaxonomyListDTO{}, err
	}
	return dto.TaxonomyListDTO{Items: views.Categories(all, locale, s.strategy(), s.taxonomy.Labels)}, nil
}

// GetCategory returns one category with its posts. Unknown ids yield ErrNotFound.
func (s *FilterService) GetCategory(ctx context.Context, id, locale string) (dto.CategoryDetailDTO, error) {
	locale = s.resolve(locale)
	all, err := s.repo.All(ctx, locale)
	if err != nil {
		return dto.CategoryDetailDTO{}, err
	}
	items := views.FilterByCategory(all, id)
	if len(items) == 0 {
		return dto.CategoryDetailDTO{}, fmt.Errorf("category %q: %w", id, ErrNotFound)
	}
	label := views.CategoryLabel(*items[0].Category, locale, s.strategy(), s.taxonomy.Labels)
	return dto.CategoryDetailDTO{ID: id, Label: label, Items: items}, nil
}

// GetTags retrieves tag summaries with post counts
func (s *FilterService) GetTags(ctx context.Context, locale string) (dto.TaxonomyListDTO, error) {
	locale = s.resolve(locale)
	all, err := s.repo.All(ctx, locale)
	if err != nil {
		return dto.TaxonomyListDTO{}, err
	}
	return dto.TaxonomyListDTO{Items: views.Tags(all, locale)}, nil
}

func (s *FilterService) GetTag(ctx context.Context, name, locale string) (dto.TagDetailDTO, error) {
	all, err := s.repo.All(ctx, s.resolve(locale))
	if err != nil {
		return dto.TagDetailDTO{}, err
	}
	items := views.FilterByTag(all, name)
	if len(items) == 0 {
		return dto.TagDetailDTO{}, fmt.Errorf("tag %q: %w", name, ErrNotFound)
	}
	return dto.TagDetailDTO{Name: name, Items: items}, nil
}
