package dto

// TrackDTO is a playlist entry normalized for the player.
type TrackDTO struct {
	ID       int64  `json:"id" example:"1824020871"`
	Name     string `json:"name"`
	Artists  string `json:"artists" example:"Unknown Artist"`
	Album    string `json:"album"`
	Cover    string `json:"cover"`
	Duration int64  `json:"duration" example:"215000"` // ms
}

type PlaylistDTO struct {
	ID     string     `json:"id"`
	Tracks []TrackDTO `json:"tracks"`
	Total  int        `json:"total"`
}

type SongURLDTO struct {
	ID  int64  `json:"id"`
	URL string `json:"url"`
}
