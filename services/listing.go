package services

import (
	"slices"

	"yospace/models"
)

// SortMode selects how the non-pinned part of the home list is ordered.
type SortMode string

const (
	SortRecommend SortMode = "recommend"
	SortDateDesc  SortMode = "date-desc"
	SortDateAsc   SortMode = "date-asc"
)

// ParseSortMode maps a query value to a SortMode. Unknown values fall back to date-desc.
func ParseSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortRecommend, SortDateAsc:
		return SortMode(s)
	default:
		return SortDateDesc
	}
}

// PinnedSplit is the home list split into its pinned section and the rest.
type PinnedSplit struct {
	Pinned []models.PostItem `json:"pinned"`
	Normal []models.PostItem `json:"items"`
}

// SplitPinned partitions posts by isPinned. The input slice is not modified.
func SplitPinned(posts []models.PostItem, mode SortMode) PinnedSplit {
	var pinned, normal []dated
	for _, d := range withDates(posts) {
		if d.item.IsPinned {
			pinned = append(pinned, d)
		} else {
			normal = append(normal, d)
		}
	}

	slices.SortStableFunc(pinned, func(a, b dated) int {
		if c := compareRank(a.item.PinnedRank, b.item.PinnedRank); c != 0 {
			return c
		}
		return newestFirst(a, b)
	})

	switch ParseSortMode(string(mode)) {
	case SortRecommend:
		slices.SortStableFunc(normal, func(a, b dated) int {
			if c := compareRank(a.item.RecommendRank, b.item.RecommendRank); c != 0 {
				return c
			}
			if c := compareRank(a.item.PinnedRank, b.item.PinnedRank); c != 0 {
				return c
			}
			return newestFirst(a, b)
		})
	case SortDateAsc:
		slices.SortStableFunc(normal, func(a, b dated) int {
			return a.at.Compare(b.at)
		})
	default:
		slices.SortStableFunc(normal, newestFirst)
	}

	return PinnedSplit{Pinned: unwrap(pinned), Normal: unwrap(normal)}
}
