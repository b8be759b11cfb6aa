package models

// PostCategory is the single category a post belongs to.
type PostCategory struct {
	ID      string `json:"id"`
	LabelZh string `json:"labelZh,omitempty"`
	LabelEn string `json:"labelEn,omitempty"`
}

// PostSeries groups posts into an ordered sequence.
//
//	index: 시리즈 내 순서 (없으면 nil, 정렬 시 맨 뒤)
type PostSeries struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
	Index *int   `json:"index,omitempty"`
}

// PostItem is the list-view shape of a post. It never carries the body.
type PostItem struct {
	Slug          string        `json:"slug"`
	Locale        string        `json:"locale"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	PublishedTime string        `json:"publishedTime"`
	IsPinned      bool          `json:"isPinned"`
	PinnedRank    *int          `json:"pinnedRank,omitempty"`
	IsRecommended bool          `json:"isRecommended"`
	RecommendRank *int          `json:"recommendRank,omitempty"`
	Category      *PostCategory `json:"category,omitempty"`
	Tags          []string      `json:"tags"`
	Series        *PostSeries   `json:"series,omitempty"`
}

// PostContent is a single post including its Markdown body.
type PostContent struct {
	PostItem
	Content string `json:"content"`
}

// PostList is one page of a locale's post list plus the pre-pagination total.
type PostList struct {
	Items []PostItem `json:"items"`
	Total int        `json:"total"`
}
