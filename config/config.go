package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
	Content  ContentConfig  `yaml:"content"`
	Taxonomy TaxonomyConfig `yaml:"taxonomy"`
	Site     SiteConfig     `yaml:"site"`
	Profile  Profile        `yaml:"profile"`
	Links    []FriendLink   `yaml:"links"`
	Feeds    FeedsConfig    `yaml:"friend_feeds"`
	Music    MusicConfig    `yaml:"music"`
	CORS     CORSConfig     `yaml:"cors"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	Mode string `yaml:"mode"`
}

type LoggingConfig struct {
	Level   string `yaml:"level"`
	Service string `yaml:"service"`
}

// ContentConfig describes the flat directory of Markdown posts.
type ContentConfig struct {
	PostsDir      string `yaml:"posts_dir"`
	DefaultLocale string `yaml:"default_locale"`
	// Locales lists the base locale first, followed by secondary locales in fallback order.
	Locales []string `yaml:"locales"`
	// LocaleAliases maps legacy locale tags to the locale suffix used on disk (zh-Hans -> zh-CN).
	LocaleAliases  map[string]string `yaml:"locale_aliases"`
	PageSize       int               `yaml:"page_size"`
	RecommendLimit int               `yaml:"recommend_limit"`
	// CacheTTL controls how long a per-locale post index is reused. 0 disables caching.
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// TaxonomyConfig 는 카테고리 라벨 해석 전략과 번역 사전을 정의한다.
type TaxonomyConfig struct {
	LabelStrategy string `yaml:"label_strategy"`
	// Labels maps category id -> locale -> label.
	Labels map[string]map[string]string `yaml:"labels"`
}

type SiteConfig struct {
	URL         string `yaml:"url"`
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Profile struct {
	SiteName    string            `yaml:"sitename" json:"sitename"`
	Names       []string          `yaml:"names" json:"names"`
	Description string            `yaml:"description" json:"description"`
	Image       string            `yaml:"image" json:"image"`
	SocialLinks map[string]string `yaml:"social_links" json:"socialLinks"`
}

// FriendLink is a single entry on the links page.
type FriendLink struct {
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle,omitempty"`
	Link     string `yaml:"link" json:"link"`
	Avatar   string `yaml:"avatar" json:"avatar"`
	// FeedURL is optional; friends without one are skipped by the feed reader.
	FeedURL string `yaml:"feed_url" json:"feedUrl,omitempty"`
}

type FeedsConfig struct {
	Limit    int           `yaml:"limit"`
	CacheTTL time.Duration `yaml:"cache_ttl"`
	Timeout  time.Duration `yaml:"timeout"`
}

// MusicConfig 는 음악 플레이어가 프록시하는 외부 API 설정이다.
type MusicConfig struct {
	APIBase    string        `yaml:"api_base"`
	PlaylistID string        `yaml:"playlist_id"`
	Level      string        `yaml:"level"`
	Timeout    time.Duration `yaml:"timeout"`
	CacheTTL   time.Duration `yaml:"cache_ttl"`
	// RequestsPerMinute 는 IP 당 프록시 호출 한도이다. 0 이하면 기본값을 사용한다.
	RequestsPerMinute int `yaml:"requests_per_minute"`
	Burst             int `yaml:"burst"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	c, err := Load(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}
	config = c
	initLogger(c.Logging.Level, c.Logging.Service)
}

// Load reads a YAML config file, applies environment overrides and fills defaults.
// A missing file is not an error: the defaults plus environment are used instead.
func Load(path string) (*AppConfig, error) {
	c := &AppConfig{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("unmarshal config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	c.applyEnv()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// Default returns a validated configuration without reading any file or environment.
func Default() *AppConfig {
	c := &AppConfig{}
	_ = c.Validate()
	return c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func (c *AppConfig) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Addr = ":" + strings.TrimPrefix(v, ":")
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		c.Server.Mode = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("SERVICE_NAME"); v != "" {
		c.Logging.Service = v
	}
	if v := os.Getenv("CONTENT_DIR"); v != "" {
		c.Content.PostsDir = v
	}
	if v := os.Getenv("BLOG_ITEMS_PER_PAGE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Content.PageSize = n
		}
	}
	if v := os.Getenv("SITE_URL"); v != "" {
		c.Site.URL = v
	}
	if v := os.Getenv("MUSIC_API_BASE"); v != "" {
		c.Music.APIBase = v
	}
	if v := os.Getenv("MUSIC_PLAYLIST_ID"); v != "" {
		c.Music.PlaylistID = v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.CORS.AllowedOrigins = origins
	}
}

// Validate fills defaults and rejects values the server cannot work with.
func (c *AppConfig) Validate() error {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Service == "" {
		c.Logging.Service = "yospace-api"
	}

	if c.Content.PostsDir == "" {
		c.Content.PostsDir = filepath.Join("content", "posts")
	}
	if c.Content.DefaultLocale == "" {
		c.Content.DefaultLocale = "en"
	}
	if len(c.Content.Locales) == 0 {
		c.Content.Locales = []string{c.Content.DefaultLocale, "zh-CN"}
	}
	if c.Content.Locales[0] != c.Content.DefaultLocale {
		return fmt.Errorf("content.locales must start with default_locale %q, got %q", c.Content.DefaultLocale, c.Content.Locales[0])
	}
	if c.Content.LocaleAliases == nil {
		c.Content.LocaleAliases = map[string]string{"zh-Hans": "zh-CN"}
	}
	if c.Content.PageSize <= 0 {
		c.Content.PageSize = 10
	}
	if c.Content.RecommendLimit <= 0 {
		c.Content.RecommendLimit = 4
	}
	if c.Content.CacheTTL < 0 {
		return fmt.Errorf("content.cache_ttl must be >= 0")
	}

	switch c.Taxonomy.LabelStrategy {
	case "":
		c.Taxonomy.LabelStrategy = "i18n-first"
	case "i18n-first", "frontmatter-first":
	default:
		return fmt.Errorf("unsupported taxonomy.label_strategy: %s", c.Taxonomy.LabelStrategy)
	}

	if c.Site.URL == "" {
		c.Site.URL = "http://localhost:3000"
	}
	c.Site.URL = strings.TrimRight(c.Site.URL, "/")
	if c.Site.Name == "" {
		c.Site.Name = "YoSpace"
	}
	if c.Site.Title == "" {
		c.Site.Title = c.Site.Name
	}

	if c.Feeds.Limit <= 0 {
		c.Feeds.Limit = 5
	}
	if c.Feeds.CacheTTL <= 0 {
		c.Feeds.CacheTTL = 30 * time.Minute
	}
	if c.Feeds.Timeout <= 0 {
		c.Feeds.Timeout = 15 * time.Second
	}

	if c.Music.APIBase == "" {
		c.Music.APIBase = "https://netmusic.waveyo.cn"
	}
	c.Music.APIBase = strings.TrimRight(c.Music.APIBase, "/")
	if c.Music.PlaylistID == "" {
		c.Music.PlaylistID = "12752948320"
	}
	if c.Music.Level == "" {
		c.Music.Level = "exhigh"
	}
	if c.Music.Timeout <= 0 {
		c.Music.Timeout = 10 * time.Second
	}
	if c.Music.CacheTTL <= 0 {
		c.Music.CacheTTL = 10 * time.Minute
	}
	if c.Music.RequestsPerMinute <= 0 {
		c.Music.RequestsPerMinute = 120
	}
	if c.Music.Burst <= 0 {
		c.Music.Burst = 30
	}
	return nil
}

// SecondaryLocales returns every configured locale except the default one.
func (c ContentConfig) SecondaryLocales() []string {
	out := make([]string, 0, len(c.Locales))
	for _, l := range c.Locales {
		if l != c.DefaultLocale {
			out = append(out, l)
		}
	}
	return out
}
