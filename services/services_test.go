package services_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yospace/models"
	"yospace/services"
)

func rank(n int) *int { return &n }

func slugs(items []models.PostItem) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.Slug
	}
	return out
}

func TestCategories(t *testing.T) {
	dev := &models.PostCategory{ID: "dev", LabelZh: "开发", LabelEn: "Development"}
	life := &models.PostCategory{ID: "life", LabelZh: "生活"}
	posts := []models.PostItem{
		{Slug: "a", Category: dev},
		{Slug: "b", Category: life},
		{Slug: "c", Category: dev},
		{Slug: "d"},
		{Slug: "e", Category: &models.PostCategory{ID: "art"}},
	}

	t.Run("english uses labelEn then id", func(t *testing.T) {
		got := services.Categories(posts, "en", services.LabelI18nFirst, nil)
		assert.Equal(t, []services.TaxonomySummary{
			{ID: "dev", Label: "Development", Count: 2},
			{ID: "art", Label: "art", Count: 1},
			{ID: "life", Label: "life", Count: 1},
		}, got)
	})

	t.Run("chinese uses labelZh", func(t *testing.T) {
		got := services.Categories(posts, "zh-CN", services.LabelFrontmatterFirst, nil)
		require.Len(t, got, 3)
		assert.Equal(t, "开发", got[0].Label)
		assert.Equal(t, 2, got[0].Count)
	})

	t.Run("strategies agree without a dictionary", func(t *testing.T) {
		a := services.Categories(posts, "en", services.LabelI18nFirst, nil)
		b := services.Categories(posts, "en", services.LabelFrontmatterFirst, nil)
		assert.Equal(t, a, b)
	})

	t.Run("dictionary precedence depends on strategy", func(t *testing.T) {
		dict := services.LabelDictionary{"dev": {"en": "Engineering", "zh": "工程"}}

		i18n := services.Categories(posts, "en", services.LabelI18nFirst, dict)
		assert.Equal(t, "Engineering", i18n[0].Label)

		fm := services.Categories(posts, "en", services.LabelFrontmatterFirst, dict)
		assert.Equal(t, "Development", fm[0].Label)

		zh := services.Categories(posts, "zh-CN", services.LabelI18nFirst, dict)
		assert.Equal(t, "工程", zh[0].Label)
	})
}

func TestTags(t *testing.T) {
	posts := []models.PostItem{
		{Slug: "a", Tags: []string{"go", "web"}},
		{Slug: "b", Tags: []string{"web"}},
		{Slug: "c", Tags: []string{"Apple", "banana"}},
		{Slug: "d"},
	}

	got := services.Tags(posts, "en")
	assert.Equal(t, []services.TaxonomySummary{
		{ID: "web", Label: "web", Count: 2},
		{ID: "Apple", Label: "Apple", Count: 1},
		{ID: "banana", Label: "banana", Count: 1},
		{ID: "go", Label: "go", Count: 1},
	}, got)
}

func TestSplitPinned(t *testing.T) {
	posts := []models.PostItem{
		{Slug: "p-late", IsPinned: true, PublishedTime: "2024-05-01"},
		{Slug: "p-rank2", IsPinned: true, PinnedRank: rank(2), PublishedTime: "2020-01-01"},
		{Slug: "p-rank1", IsPinned: true, PinnedRank: rank(1), PublishedTime: "2019-01-01"},
		{Slug: "n-new", PublishedTime: "2024-06-01"},
		{Slug: "n-rank1", RecommendRank: rank(1), PublishedTime: "2021-01-01"},
		{Slug: "n-old", PublishedTime: "2018-01-01"},
		{Slug: "n-rank0", RecommendRank: rank(0), PublishedTime: "2017-01-01"},
	}

	t.Run("pinned by rank then date", func(t *testing.T) {
		split := services.SplitPinned(posts, services.SortDateDesc)
		assert.Equal(t, []string{"p-rank1", "p-rank2", "p-late"}, slugs(split.Pinned))
	})

	t.Run("date-desc", func(t *testing.T) {
		split := services.SplitPinned(posts, services.SortDateDesc)
		assert.Equal(t, []string{"n-new", "n-rank1", "n-old", "n-rank0"}, slugs(split.Normal))
	})

	t.Run("date-asc", func(t *testing.T) {
		split := services.SplitPinned(posts, services.SortDateAsc)
		assert.Equal(t, []string{"n-rank0", "n-old", "n-rank1", "n-new"}, slugs(split.Normal))
	})

	t.Run("recommend", func(t *testing.T) {
		split := services.SplitPinned(posts, services.SortRecommend)
		assert.Equal(t, []string{"n-rank0", "n-rank1", "n-new", "n-old"}, slugs(split.Normal))
	})

	t.Run("unknown mode falls back to date-desc", func(t *testing.T) {
		split := services.SplitPinned(posts, services.SortMode("shuffle"))
		assert.Equal(t, []string{"n-new", "n-rank1", "n-old", "n-rank0"}, slugs(split.Normal))
	})

	t.Run("input is untouched", func(t *testing.T) {
		before := slugs(posts)
		services.SplitPinned(posts, services.SortRecommend)
		assert.Equal(t, before, slugs(posts))
	})
}

// Posts without recommendRank always come after ranked ones, whatever their dates.
func TestSplitPinned_RankFallback(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for round := 0; round < 50; round++ {
		var posts []models.PostItem
		for i := 0; i < 12; i++ {
			p := models.PostItem{
				Slug:          fmt.Sprintf("p%d", i),
				PublishedTime: fmt.Sprintf("20%02d-01-01", rng.IntN(30)),
			}
			if rng.IntN(2) == 0 {
				p.RecommendRank = rank(rng.IntN(5))
			}
			if rng.IntN(3) == 0 {
				p.PinnedRank = rank(rng.IntN(5))
			}
			posts = append(posts, p)
		}

		normal := services.SplitPinned(posts, services.SortRecommend).Normal
		seenUnranked := false
		for _, p := range normal {
			if p.RecommendRank == nil {
				seenUnranked = true
				continue
			}
			assert.False(t, seenUnranked, "ranked post %s after an unranked one", p.Slug)
		}
	}
}

func TestSeries(t *testing.T) {
	intro := func(idx *int) *models.PostSeries { return &models.PostSeries{ID: "intro", Index: idx} }
	posts := []models.PostItem{
		{Slug: "third", Series: intro(rank(3))},
		{Slug: "loose-a", Series: intro(nil)},
		{Slug: "first", Series: intro(rank(1))},
		{Slug: "other", Series: &models.PostSeries{ID: "other"}},
		{Slug: "loose-b", Series: intro(nil)},
		{Slug: "none"},
	}

	assert.Equal(t, []string{"first", "third", "loose-a", "loose-b"}, slugs(services.Series(posts, "intro")))
	assert.Empty(t, services.Series(posts, "missing"))

	series, members, ok := services.SeriesOf(posts, "third")
	require.True(t, ok)
	assert.Equal(t, "intro", series.ID)
	assert.Len(t, members, 4)

	series, members, ok = services.SeriesOf(posts, "none")
	require.True(t, ok)
	assert.Nil(t, series)
	assert.Empty(t, members)

	_, _, ok = services.SeriesOf(posts, "ghost")
	assert.False(t, ok)
}

func TestRecommend(t *testing.T) {
	var posts []models.PostItem
	for i := 0; i < 10; i++ {
		posts = append(posts, models.PostItem{Slug: fmt.Sprintf("r%d", i), IsRecommended: true})
	}
	posts = append(posts, models.PostItem{Slug: "plain"})

	eligible := map[string]bool{}
	for _, p := range posts[1:10] {
		eligible[p.Slug] = true
	}

	for i := 0; i < 20; i++ {
		got := services.Recommend(posts, "r0", 4, nil)
		require.Len(t, got, 4)

		seen := map[string]bool{}
		for _, p := range got {
			assert.True(t, eligible[p.Slug], "unexpected %s", p.Slug)
			assert.False(t, seen[p.Slug], "duplicate %s", p.Slug)
			seen[p.Slug] = true
		}
	}

	assert.Len(t, services.Recommend(posts, "r0", 0, nil), services.DefaultRecommendLimit)
	assert.Len(t, services.Recommend(posts, "r0", 50, rand.New(rand.NewPCG(3, 4))), 9)
	assert.Empty(t, services.Recommend(posts[10:], "", 4, nil))
}

func TestArchive(t *testing.T) {
	posts := []models.PostItem{
		{Slug: "jan-24", PublishedTime: "2024-01-10"},
		{Slug: "mar-24-late", PublishedTime: "2024-03-20"},
		{Slug: "bad", PublishedTime: "someday"},
		{Slug: "dec-23", PublishedTime: "2023-12-31"},
		{Slug: "mar-24-early", PublishedTime: "2024-03-02"},
		{Slug: "empty"},
	}

	got := services.Archive(posts)
	require.Len(t, got, 2)

	assert.Equal(t, 2024, got[0].Year)
	require.Len(t, got[0].Months, 2)
	assert.Equal(t, 3, got[0].Months[0].Month)
	assert.Equal(t, []string{"mar-24-late", "mar-24-early"}, slugs(got[0].Months[0].Posts))
	assert.Equal(t, 1, got[0].Months[1].Month)

	assert.Equal(t, 2023, got[1].Year)
	assert.Equal(t, []string{"dec-23"}, slugs(got[1].Months[0].Posts))
}

func TestSearchAndFilters(t *testing.T) {
	posts := []models.PostItem{
		{Slug: "a", Title: "Hello Gopher", Category: &models.PostCategory{ID: "dev"}, Tags: []string{"go"}},
		{Slug: "b", Title: "Cooking", Description: "about GO-TO recipes"},
		{Slug: "c", Title: "Travel", Tags: []string{"japan", "golang"}},
	}

	assert.Equal(t, []string{"a", "b", "c"}, slugs(services.Search(posts, "go")))
	assert.Equal(t, []string{"c"}, slugs(services.Search(posts, " JAPAN ")))
	assert.Empty(t, services.Search(posts, "   "))

	assert.Equal(t, []string{"a"}, slugs(services.FilterByCategory(posts, "dev")))
	assert.Equal(t, []string{"a"}, slugs(services.FilterByTag(posts, "go")))
	assert.Empty(t, services.FilterByTag(posts, "Go"))
}
