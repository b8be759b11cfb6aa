package services

import (
	"strings"

	"yospace/models"
)

// Search does a case-insensitive substring match over title, description and tags.
// A blank query matches nothing.
func Search(posts []models.PostItem, query string) []models.PostItem {
	out := []models.PostItem{}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return out
	}

	for _, p := range posts {
		haystack := strings.ToLower(strings.Join([]string{p.Title, p.Description, strings.Join(p.Tags, " ")}, " "))
		if strings.Contains(haystack, q) {
			out = append(out, p)
		}
	}
	return out
}

func FilterByCategory(posts []models.PostItem, categoryID string) []models.PostItem {
	out := []models.PostItem{}
	for _, p := range posts {
		if p.Category != nil && p.Category.ID == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// FilterByTag keeps posts carrying exactly this tag.
func FilterByTag(posts []models.PostItem, tag string) []models.PostItem {
	out := []models.PostItem{}
	for _, p := range posts {
		for _, t := range p.Tags {
			if t == tag {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
