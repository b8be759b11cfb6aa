package dto

import (
	"yospace/models"
	"yospace/renderer"
	"yospace/services"
)

// PostListDTO is the /api/blog/list response: {items, total}.
type PostListDTO = Page[models.PostItem]

// RenderedPostDTO carries the post metadata, raw body, sanitized HTML and TOC.
type RenderedPostDTO struct {
	models.PostContent
	HTML string              `json:"html"`
	TOC  []renderer.TOCEntry `json:"toc"`
}

// HomeDTO is the home list split into pinned and normal sections.
type HomeDTO = services.PinnedSplit

type SeriesDTO struct {
	Series *models.PostSeries `json:"series"`
	Items  []models.PostItem  `json:"items"`
}

type SlugsDTO struct {
	Slugs []string `json:"slugs"`
}

type SearchDTO struct {
	Query string            `json:"query"`
	Items []models.PostItem `json:"items"`
	Total int               `json:"total"`
}

type ArchiveDTO struct {
	Years []services.ArchiveYear `json:"years"`
}
