package dto

// Page is the list envelope used by /api/blog/list.
// Total is the number of posts matching the locale before offset/limit are applied.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// ItemsDTO wraps an unpaginated result list.
type ItemsDTO[T any] struct {
	Items []T `json:"items"`
}
