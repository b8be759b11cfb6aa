package services

import (
	"context"
	"time"

	"yospace/cmd/api/dto"
	"yospace/config"
	"yospace/feeder"
	"yospace/repositories"
	"yospace/seo"
)

// rssLimit caps the number of items in rss.xml.
const rssLimit = 20

// SiteService serves the profile, friend links and SEO documents.
type SiteService struct {
	repo    *repositories.PostRepository
	feeds   *feeder.Reader
	cfg     config.AppConfig
	site    seo.Site
	nowFunc func() time.Time
}

func NewSiteService(repo *repositories.PostRepository, feeds *feeder.Reader, cfg config.AppConfig) *SiteService {
	return &SiteService{
		repo:  repo,
		feeds: feeds,
		cfg:   cfg,
		site: seo.Site{
			URL:         cfg.Site.URL,
			Name:        cfg.Site.Name,
			Title:       cfg.Site.Title,
			Description: cfg.Site.Description,
		},
		nowFunc: time.Now,
	}
}

func (s *SiteService) Profile() dto.ProfileDTO {
	links := s.cfg.Links
	if links == nil {
		links = []config.FriendLink{}
	}
	return dto.ProfileDTO{Profile: s.cfg.Profile, Links: links}
}

// FriendFeeds fetches the latest entries of every friend with a feed url.
// Friends whose feed fails are left out.
func (s *SiteService) FriendFeeds(ctx context.Context) dto.FriendFeedsDTO {
	items := s.feeds.FetchFriends(ctx, s.cfg.Links)
	if items == nil {
		items = []feeder.FriendFeed{}
	}
	return dto.FriendFeedsDTO{Items: items}
}

// Sitemap lists static pages, every post slug and the default locale's tags and categories.
func (s *SiteService) Sitemap(ctx context.Context) (string, error) {
	slugs, err := s.repo.Slugs(ctx)
	if err != nil {
		return "", err
	}
	posts, err := s.repo.All(ctx, s.cfg.Content.DefaultLocale)
	if err != nil {
		return "", err
	}
	return seo.Sitemap(s.site, slugs, posts, s.nowFunc()), nil
}

func (s *SiteService) Robots() string {
	return seo.Robots(s.site)
}

func (s *SiteService) RSS(ctx context.Context, locale string) ([]byte, error) {
	if locale == "" {
		locale = s.cfg.Content.DefaultLocale
	}
	posts, err := s.repo.All(ctx, locale)
	if err != nil {
		return nil, err
	}
	return seo.RSS(s.site, posts, locale, rssLimit, s.nowFunc())
}
