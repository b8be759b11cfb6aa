package dto

import (
	"yospace/models"
	"yospace/services"
)

// TaxonomyListDTO lists categories or tags with their post counts.
type TaxonomyListDTO struct {
	Items []services.TaxonomySummary `json:"items"`
}

// CategoryDetailDTO is one category and its posts.
type CategoryDetailDTO struct {
	ID    string            `json:"id"`
	Label string            `json:"label"`
	Items []models.PostItem `json:"items"`
}

// TagDetailDTO is one tag and its posts.
type TagDetailDTO struct {
	Name  string            `json:"name"`
	Items []models.PostItem `json:"items"`
}
