package services

import (
	"slices"

	"yospace/models"
)

// Series returns the posts sharing seriesID, ordered by series.index asc.
// Posts without an index go last and keep their list order.
func Series(posts []models.PostItem, seriesID string) []models.PostItem {
	members := []models.PostItem{}
	if seriesID == "" {
		return members
	}
	for _, p := range posts {
		if p.Series != nil && p.Series.ID == seriesID {
			members = append(members, p)
		}
	}

	slices.SortStableFunc(members, func(a, b models.PostItem) int {
		return compareRank(a.Series.Index, b.Series.Index)
	})
	return members
}

// SeriesOf finds the series of the post with slug and returns its members.
// ok is false when the post is not in posts; series is nil when the post has none.
func SeriesOf(posts []models.PostItem, slug string) (series *models.PostSeries, members []models.PostItem, ok bool) {
	for _, p := range posts {
		if p.Slug != slug {
			continue
		}
		if p.Series == nil {
			return nil, []models.PostItem{}, true
		}
		return p.Series, Series(posts, p.Series.ID), true
	}
	return nil, nil, false
}
