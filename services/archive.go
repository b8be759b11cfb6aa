package services

import (
	"slices"

	"yospace/models"
)

type ArchiveMonth struct {
	Month int               `json:"month"`
	Posts []models.PostItem `json:"posts"`
}

type ArchiveYear struct {
	Year   int            `json:"year"`
	Months []ArchiveMonth `json:"months"`
}

// Archive groups posts by year and month of publishedTime, newest first at every level.
// Posts without a parseable date are left out.
func Archive(posts []models.PostItem) []ArchiveYear {
	ds := make([]dated, 0, len(posts))
	for _, d := range withDates(posts) {
		if !d.at.IsZero() {
			ds = append(ds, d)
		}
	}
	slices.SortStableFunc(ds, newestFirst)

	years := []ArchiveYear{}
	for _, d := range ds {
		y, m := d.at.Year(), int(d.at.Month())

		if len(years) == 0 || years[len(years)-1].Year != y {
			years = append(years, ArchiveYear{Year: y})
		}
		year := &years[len(years)-1]

		if len(year.Months) == 0 || year.Months[len(year.Months)-1].Month != m {
			year.Months = append(year.Months, ArchiveMonth{Month: m})
		}
		month := &year.Months[len(year.Months)-1]
		month.Posts = append(month.Posts, d.item)
	}
	return years
}
