package musicclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"yospace/cmd/api/httpclient"
	"yospace/config"
)

// Client는 외부 음악 API(NeteaseCloudMusicApi 호환)를 호출하는 얇은 클라이언트다.
//
// - 플레이리스트, 곡 재생 가능 여부, 곡 스트림 URL 만 다룬다.
// - 곡 URL 과 플레이리스트는 TTL 캐시에 보관해 외부 호출을 줄인다.
type Client struct {
	base       *httpclient.BaseClient
	playlistID string
	level      string

	playlists *expirable.LRU[string, []Track]
	urls      *expirable.LRU[int64, string]
	now       func() time.Time
}

var (
	ErrNotFound = errors.New("music resource not found")
	// ErrUpstream 은 음악 API 가 JSON 이 아닌 응답이나 비정상 상태 코드를 돌려준 경우이다.
	ErrUpstream = errors.New("music upstream failure")
)

const bodySnippetLimit = 200

// New 는 MusicConfig 로 클라이언트를 만든다. httpClient 가 nil 이면 cfg.Timeout 을 쓰는 기본 클라이언트를 쓴다.
func New(cfg config.MusicConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = httpclient.New(httpclient.Config{Timeout: cfg.Timeout})
	}
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Client{
		base:       httpclient.NewBaseClientWithClient(httpClient, cfg.APIBase),
		playlistID: cfg.PlaylistID,
		level:      cfg.Level,
		playlists:  expirable.NewLRU[string, []Track](8, nil, ttl),
		urls:       expirable.NewLRU[int64, string](512, nil, ttl),
		now:        time.Now,
	}
}

// -------------------- Types --------------------

type Artist struct {
	Name string `json:"name"`
}

type Album struct {
	Name   string `json:"name"`
	PicURL string `json:"picUrl"`
}

// Track 은 API 원본 필드를 그대로 받는다. 엔드포인트마다 ar/artists, al/album, dt/duration 중 하나만 채워진다.
type Track struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Ar       []Artist `json:"ar"`
	Artists  []Artist `json:"artists"`
	Al       *Album   `json:"al"`
	Album    *Album   `json:"album"`
	Dt       int64    `json:"dt"`
	Duration int64    `json:"duration"`
}

type playlistResponse struct {
	Code  int     `json:"code"`
	Songs []Track `json:"songs"`
}

type checkResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type songURLResponse struct {
	Code int `json:"code"`
	Data []struct {
		ID  int64  `json:"id"`
		URL string `json:"url"`
	} `json:"data"`
}

// -------------------- Calls --------------------

// Playlist 는 설정된 플레이리스트의 전체 곡 목록을 가져온다.
func (c *Client) Playlist(ctx context.Context) ([]Track, error) {
	if songs, ok := c.playlists.Get(c.playlistID); ok {
		return songs, nil
	}

	var out playlistResponse
	if err := c.getJSON(ctx, "/playlist/track/all", url.Values{"id": {c.playlistID}}, &out); err != nil {
		return nil, err
	}
	if out.Code != 0 && out.Code != http.StatusOK {
		return nil, fmt.Errorf("%w: playlist code=%d", ErrUpstream, out.Code)
	}
	if out.Songs == nil {
		out.Songs = []Track{}
	}
	c.playlists.Add(c.playlistID, out.Songs)
	return out.Songs, nil
}

// CheckAvailable 는 곡이 재생 가능한지 확인한다.
func (c *Client) CheckAvailable(ctx context.Context, id int64) (bool, error) {
	var out checkResponse
	q := url.Values{"id": {strconv.FormatInt(id, 10)}, "timestamp": {c.timestamp()}}
	if err := c.getJSON(ctx, "/check/music", q, &out); err != nil {
		return false, err
	}
	return out.Success, nil
}

// SongURL 은 곡의 스트림 URL 을 돌려준다. 재생 불가하거나 URL 이 비어 있으면 ErrNotFound.
func (c *Client) SongURL(ctx context.Context, id int64) (string, error) {
	if u, ok := c.urls.Get(id); ok {
		return u, nil
	}

	ok, err := c.CheckAvailable(ctx, id)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: song %d unavailable", ErrNotFound, id)
	}

	var out songURLResponse
	q := url.Values{
		"id":        {strconv.FormatInt(id, 10)},
		"level":     {c.level},
		"timestamp": {c.timestamp()},
	}
	if err := c.getJSON(ctx, "/song/url/v1", q, &out); err != nil {
		return "", err
	}
	if out.Code != http.StatusOK || len(out.Data) == 0 || out.Data[0].URL == "" {
		return "", fmt.Errorf("%w: song %d has no url", ErrNotFound, id)
	}

	c.urls.Add(id, out.Data[0].URL)
	return out.Data[0].URL, nil
}

func (c *Client) timestamp() string {
	return strconv.FormatInt(c.now().UnixMilli(), 10)
}

// getJSON 은 GET 요청 후 JSON 본문을 디코딩한다.
// Content-Type 이 JSON 이 아니거나 200 이 아니면 본문 일부를 로그로 남기고 ErrUpstream 을 돌려준다.
func (c *Client) getJSON(ctx context.Context, relPath string, query url.Values, out any) error {
	req, err := c.base.NewRequest(ctx, http.MethodGet, relPath, query, nil)
	if err != nil {
		return err
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if resp.StatusCode != http.StatusOK || mediaType != "application/json" {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, bodySnippetLimit))
		config.WarnWithFields("music api non-JSON response", config.Fields{
			"path":         relPath,
			"status":       resp.StatusCode,
			"content_type": resp.Header.Get("Content-Type"),
			"body":         string(b),
		})
		return fmt.Errorf("%w: %s status=%d", ErrUpstream, relPath, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrUpstream, relPath, err)
	}
	return nil
}
