package feeder

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/mmcdole/gofeed"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"

	"yospace/config"
)

const summaryMaxRunes = 200

type RssFeedItem struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	PublishedAt time.Time `json:"publishedAt"`
	Summary     string    `json:"summary"`
}

// FriendFeed is the latest entries of one friend's site.
type FriendFeed struct {
	Title  string        `json:"title"`
	Link   string        `json:"link"`
	Avatar string        `json:"avatar"`
	Items  []RssFeedItem `json:"items"`
}

// Reader fetches friends' RSS/Atom feeds and caches the parsed entries per feed URL.
type Reader struct {
	client *http.Client
	limit  int
	cache  *expirable.LRU[string, []RssFeedItem]
}

// NewReader creates a Reader. limit caps the entries kept per feed (0 keeps all);
// a positive ttl enables the per-feed cache.
func NewReader(client *http.Client, limit int, ttl time.Duration) *Reader {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	r := &Reader{client: client, limit: limit}
	if ttl > 0 {
		r.cache = expirable.NewLRU[string, []RssFeedItem](128, nil, ttl)
	}
	return r
}

// FetchRssFeeds fetches RSS feeds from the given URL.
// If limit is greater than 0, it returns only the first limit items.
func (r *Reader) FetchRssFeeds(ctx context.Context, rssUrl string) ([]RssFeedItem, error) {
	if r.cache != nil {
		if items, ok := r.cache.Get(rssUrl); ok {
			return items, nil
		}
	}

	fp := gofeed.NewParser()
	fp.Client = r.client

	feed, err := fp.ParseURLWithContext(rssUrl, ctx)
	if err != nil {
		return nil, err
	}

	var items []RssFeedItem
	for _, item := range feed.Items {
		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			published = *item.UpdatedParsed
		}

		summary := item.Description
		if summary == "" {
			summary = item.Content
		}

		items = append(items, RssFeedItem{
			Title:       item.Title,
			Link:        item.Link,
			PublishedAt: published,
			Summary:     Truncate(PlainText(summary), summaryMaxRunes),
		})
	}

	if r.limit > 0 && len(items) > r.limit {
		items = items[:r.limit]
	}

	if r.cache != nil {
		r.cache.Add(rssUrl, items)
	}
	return items, nil
}

// FetchFriends reads every friend that has a feed URL, at most four at a time.
// A failing feed is logged and left out; the result keeps the order of links.
func (r *Reader) FetchFriends(ctx context.Context, links []config.FriendLink) []FriendFeed {
	results := make([]*FriendFeed, len(links))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, link := range links {
		if link.FeedURL == "" {
			continue
		}
		g.Go(func() error {
			items, err := r.FetchRssFeeds(gctx, link.FeedURL)
			if err != nil {
				config.WarnWithFields("failed to fetch friend feed", config.Fields{
					"friend":   link.Title,
					"feed_url": link.FeedURL,
					"error":    err.Error(),
				})
				return nil
			}
			results[i] = &FriendFeed{Title: link.Title, Link: link.Link, Avatar: link.Avatar, Items: items}
			return nil
		})
	}
	_ = g.Wait()

	out := make([]FriendFeed, 0, len(links))
	for _, f := range results {
		if f != nil {
			out = append(out, *f)
		}
	}
	return out
}

// PlainText strips markup from a feed entry's HTML description.
func PlainText(htmlStr string) string {
	doc, err := html.Parse(strings.NewReader(htmlStr))
	if err != nil {
		return strings.TrimSpace(htmlStr)
	}

	var parts []string
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				parts = append(parts, text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}

	f(doc)
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

// Truncate cuts s to at most max runes, appending an ellipsis when shortened.
func Truncate(s string, max int) string {
	r := []rune(s)
	if max <= 0 || len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}
