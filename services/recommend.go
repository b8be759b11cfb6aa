package services

import (
	"math/rand/v2"

	"yospace/models"
)

// DefaultRecommendLimit is used when the caller passes a non-positive n.
const DefaultRecommendLimit = 4

// Recommend samples up to n recommended posts other than currentSlug.
// The order is random on every call; a nil rng uses the global source.
func Recommend(posts []models.PostItem, currentSlug string, n int, rng *rand.Rand) []models.PostItem {
	if n <= 0 {
		n = DefaultRecommendLimit
	}

	eligible := make([]models.PostItem, 0, len(posts))
	for _, p := range posts {
		if p.IsRecommended && p.Slug != currentSlug {
			eligible = append(eligible, p)
		}
	}

	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})

	if len(eligible) > n {
		eligible = eligible[:n]
	}
	return eligible
}
