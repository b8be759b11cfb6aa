package seo

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"yospace/models"
)

// Site is the public identity of the blog used to build absolute URLs.
type Site struct {
	URL         string
	Name        string
	Title       string
	Description string
}

// BuildURL joins the site URL with a path, adding the leading slash when missing.
func (s Site) BuildURL(path string) string {
	base := strings.TrimRight(strings.TrimSpace(s.URL), "/")
	if base == "" {
		base = "http://localhost:3000"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

type sitemapEntry struct {
	Location   string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}

// Sitemap lists the static pages, every post slug, and each tag and category page.
// posts is the default-locale list; slugs only present in other locales use now as lastmod.
func Sitemap(site Site, slugs []string, posts []models.PostItem, now time.Time) string {
	dates := map[string]time.Time{}
	var tags, categories []string
	seenTag, seenCategory := map[string]bool{}, map[string]bool{}
	for _, p := range posts {
		if at := p.PublishedAt(); !at.IsZero() {
			dates[p.Slug] = at
		}
		for _, tag := range p.Tags {
			if !seenTag[tag] {
				seenTag[tag] = true
				tags = append(tags, tag)
			}
		}
		if p.Category != nil && !seenCategory[p.Category.ID] {
			seenCategory[p.Category.ID] = true
			categories = append(categories, p.Category.ID)
		}
	}

	entries := []sitemapEntry{
		{site.BuildURL("/"), now, "weekly", 0.7},
		{site.BuildURL("/blog"), now, "weekly", 0.7},
		{site.BuildURL("/tags"), now, "weekly", 0.5},
		{site.BuildURL("/categories"), now, "weekly", 0.5},
	}
	for _, slug := range slugs {
		lastMod, ok := dates[slug]
		if !ok {
			lastMod = now
		}
		entries = append(entries, sitemapEntry{site.BuildURL("/blog/" + url.PathEscape(slug)), lastMod, "monthly", 0.6})
	}
	for _, tag := range tags {
		entries = append(entries, sitemapEntry{site.BuildURL("/tag/" + url.PathEscape(tag)), now, "monthly", 0.4})
	}
	for _, id := range categories {
		entries = append(entries, sitemapEntry{site.BuildURL("/category/" + url.PathEscape(id)), now, "monthly", 0.4})
	}

	var builder strings.Builder
	builder.WriteString(xml.Header)
	builder.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, entry := range entries {
		builder.WriteString("  <url>\n")
		builder.WriteString(fmt.Sprintf("    <loc>%s</loc>\n", escape(entry.Location)))
		builder.WriteString(fmt.Sprintf("    <lastmod>%s</lastmod>\n", entry.LastMod.UTC().Format(time.RFC3339)))
		builder.WriteString(fmt.Sprintf("    <changefreq>%s</changefreq>\n", entry.ChangeFreq))
		builder.WriteString(fmt.Sprintf("    <priority>%.1f</priority>\n", entry.Priority))
		builder.WriteString("  </url>\n")
	}
	builder.WriteString(`</urlset>` + "\n")
	return builder.String()
}

func Robots(site Site) string {
	var builder strings.Builder
	builder.WriteString("User-agent: *\n")
	builder.WriteString("Allow: /\n")
	builder.WriteString("\n")
	builder.WriteString(fmt.Sprintf("Host: %s\n", site.BuildURL("/")))
	builder.WriteString(fmt.Sprintf("Sitemap: %s\n", site.BuildURL("/sitemap.xml")))
	return builder.String()
}

type rssDoc struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language,omitempty"`
	LastBuildDate string    `xml:"lastBuildDate"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        string   `xml:"guid"`
	Description string   `xml:"description,omitempty"`
	PubDate     string   `xml:"pubDate,omitempty"`
	Categories  []string `xml:"category,omitempty"`
}

// RSS renders an RSS 2.0 feed of the given posts, newest first as passed in.
func RSS(site Site, posts []models.PostItem, locale string, limit int, now time.Time) ([]byte, error) {
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}

	doc := rssDoc{
		Version: "2.0",
		Channel: rssChannel{
			Title:         site.Title,
			Link:          site.BuildURL("/"),
			Description:   site.Description,
			Language:      locale,
			LastBuildDate: now.UTC().Format(time.RFC1123Z),
		},
	}
	for _, p := range posts {
		link := site.BuildURL("/blog/" + url.PathEscape(p.Slug))
		item := rssItem{
			Title:       p.Title,
			Link:        link,
			GUID:        link,
			Description: p.Description,
			Categories:  p.Tags,
		}
		if at := p.PublishedAt(); !at.IsZero() {
			item.PubDate = at.UTC().Format(time.RFC1123Z)
		}
		doc.Channel.Items = append(doc.Channel.Items, item)
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal rss: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
