package services

import (
	"cmp"
	"time"

	"yospace/models"
)

// dated pairs a post with its parsed publishedTime so sorts parse each date once.
type dated struct {
	item models.PostItem
	at   time.Time
}

func withDates(posts []models.PostItem) []dated {
	out := make([]dated, len(posts))
	for i, p := range posts {
		out[i] = dated{item: p, at: p.PublishedAt()}
	}
	return out
}

func unwrap(ds []dated) []models.PostItem {
	out := make([]models.PostItem, len(ds))
	for i, d := range ds {
		out[i] = d.item
	}
	return out
}

func newestFirst(a, b dated) int {
	return b.at.Compare(a.at)
}

// compareRank orders present ranks ascending and puts absent ranks last.
func compareRank(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(*a, *b)
	}
}
