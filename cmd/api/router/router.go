package router

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"yospace/cmd/api/clients/musicclient"
	"yospace/cmd/api/dto"
	"yospace/cmd/api/handlers"
	"yospace/cmd/api/httpclient"
	"yospace/cmd/api/middleware"
	"yospace/cmd/api/services"
	"yospace/config"
	_ "yospace/docs"
	"yospace/feeder"
	"yospace/renderer"
	"yospace/repositories"
)

// renderCacheSize bounds the number of rendered bodies kept in memory.
const renderCacheSize = 256

// Deps are the long-lived pieces main needs to manage next to the engine.
type Deps struct {
	Limiter *middleware.IPRateLimiter
}

// New builds the engine with content read from cfg.Content.PostsDir.
func New(cfg config.AppConfig) (*gin.Engine, Deps, error) {
	repo := repositories.NewPostRepository(os.DirFS(cfg.Content.PostsDir), repositories.LocaleResolver{
		Default:   cfg.Content.DefaultLocale,
		Secondary: cfg.Content.SecondaryLocales(),
		Aliases:   cfg.Content.LocaleAliases,
	}, cfg.Content.CacheTTL)
	return NewWithRepository(cfg, repo)
}

// NewWithRepository builds the engine around an existing repository.
func NewWithRepository(cfg config.AppConfig, repo *repositories.PostRepository) (*gin.Engine, Deps, error) {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace(), middleware.CORS(cfg.CORS.AllowedOrigins))

	rend := renderer.New(renderer.WithCache(renderCacheSize, cfg.Content.CacheTTL))
	postsSvc := services.NewPostService(repo, rend, cfg.Content)
	filterSvc := services.NewFilterService(repo, cfg.Taxonomy, cfg.Content.DefaultLocale)

	feedReader := feeder.NewReader(httpclient.New(httpclient.Config{Timeout: cfg.Feeds.Timeout}), cfg.Feeds.Limit, cfg.Feeds.CacheTTL)
	siteSvc := services.NewSiteService(repo, feedReader, cfg)

	musicSvc := services.NewMusicService(musicclient.New(cfg.Music, nil), cfg.Music.PlaylistID)
	limiter := middleware.NewIPRateLimiter(cfg.Music.RequestsPerMinute, cfg.Music.Burst, 10*time.Minute)
	proxy, err := handlers.MusicProxyHandler(cfg.Music.APIBase)
	if err != nil {
		return nil, Deps{}, err
	}

	// Health check
	r.GET("/health", handlers.HealthHandler(postsSvc))

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// SEO
	r.GET("/sitemap.xml", handlers.SitemapHandler(siteSvc))
	r.GET("/robots.txt", handlers.RobotsHandler(siteSvc))
	r.GET("/rss.xml", handlers.RSSHandler(siteSvc))

	api := r.Group("/api")
	{
		blog := api.Group("/blog")
		blog.GET("/list", handlers.ListPostsHandler(postsSvc))
		blog.GET("/post", handlers.GetPostHandler(postsSvc))
		blog.GET("/render", handlers.RenderPostHandler(postsSvc))
		blog.GET("/home", handlers.HomeHandler(postsSvc))
		blog.GET("/archive", handlers.ArchiveHandler(postsSvc))
		blog.GET("/search", handlers.SearchHandler(postsSvc))
		blog.GET("/recommend", handlers.RecommendHandler(postsSvc))
		blog.GET("/series", handlers.SeriesHandler(postsSvc))
		blog.GET("/slugs", handlers.SlugsHandler(postsSvc))
		blog.GET("/highlight.css", handlers.HighlightCSSHandler(postsSvc))

		blog.GET("/categories", handlers.ListCategoriesHandler(filterSvc))
		blog.GET("/categories/:id", handlers.GetCategoryHandler(filterSvc))
		blog.GET("/tags", handlers.ListTagsHandler(filterSvc))
		blog.GET("/tags/:name", handlers.GetTagHandler(filterSvc))

		api.GET("/profile", handlers.ProfileHandler(siteSvc))
		api.GET("/links/feeds", handlers.FriendFeedsHandler(siteSvc))

		api.GET("/music/playlist", handlers.PlaylistHandler(musicSvc))
		api.GET("/music/songs/:id/url", handlers.SongURLHandler(musicSvc))
		api.Any("/music-proxy/*path", middleware.RateLimit(limiter), proxy)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponseDTO{Message: "Not found"})
	})

	return r, Deps{Limiter: limiter}, nil
}
