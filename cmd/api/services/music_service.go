package services

import (
	"context"
	"strings"

	"yospace/cmd/api/clients/musicclient"
	"yospace/cmd/api/dto"
)

const unknownArtist = "Unknown Artist"

// MusicService maps the music API's raw tracks to player DTOs.
type MusicService struct {
	client     *musicclient.Client
	playlistID string
}

func NewMusicService(client *musicclient.Client, playlistID string) *MusicService {
	return &MusicService{client: client, playlistID: playlistID}
}

func (s *MusicService) Playlist(ctx context.Context) (dto.PlaylistDTO, error) {
	songs, err := s.client.Playlist(ctx)
	if err != nil {
		return dto.PlaylistDTO{}, err
	}
	tracks := make([]dto.TrackDTO, 0, len(songs))
	for _, t := range songs {
		tracks = append(tracks, MapTrack(t))
	}
	return dto.PlaylistDTO{ID: s.playlistID, Tracks: tracks, Total: len(tracks)}, nil
}

func (s *MusicService) SongURL(ctx context.Context, id int64) (dto.SongURLDTO, error) {
	u, err := s.client.SongURL(ctx, id)
	if err != nil {
		return dto.SongURLDTO{}, err
	}
	return dto.SongURLDTO{ID: id, URL: httpsURL(u)}, nil
}

// MapTrack normalizes a raw track: ar/artists and al/album are merged,
// artist names joined with ", " and the cover forced to https.
func MapTrack(t musicclient.Track) dto.TrackDTO {
	artists := t.Ar
	if len(artists) == 0 {
		artists = t.Artists
	}
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		names = append(names, a.Name)
	}
	joined := strings.Join(names, ", ")
	if joined == "" {
		joined = unknownArtist
	}

	album := t.Al
	if album == nil || (album.Name == "" && album.PicURL == "") {
		if t.Album != nil {
			album = t.Album
		}
	}
	var albumName, cover string
	if album != nil {
		albumName = album.Name
		cover = httpsURL(album.PicURL)
	}

	duration := t.Dt
	if duration == 0 {
		duration = t.Duration
	}

	return dto.TrackDTO{
		ID:       t.ID,
		Name:     t.Name,
		Artists:  joined,
		Album:    albumName,
		Cover:    cover,
		Duration: duration,
	}
}

func httpsURL(u string) string {
	if rest, ok := strings.CutPrefix(u, "http://"); ok {
		return "https://" + rest
	}
	return u
}
