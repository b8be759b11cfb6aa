package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"yospace/cmd/api/clients/musicclient"
	"yospace/cmd/api/dto"
	"yospace/cmd/api/services"
)

func TestMapTrack(t *testing.T) {
	tests := []struct {
		name string
		in   musicclient.Track
		want dto.TrackDTO
	}{
		{
			name: "ar and al fields",
			in: musicclient.Track{
				ID: 1, Name: "One",
				Ar: []musicclient.Artist{{Name: "A"}, {Name: "B"}},
				Al: &musicclient.Album{Name: "Alb", PicURL: "http://p.example/1.jpg"},
				Dt: 1000,
			},
			want: dto.TrackDTO{ID: 1, Name: "One", Artists: "A, B", Album: "Alb", Cover: "https://p.example/1.jpg", Duration: 1000},
		},
		{
			name: "artists and album fields",
			in: musicclient.Track{
				ID: 2, Name: "Two",
				Artists:  []musicclient.Artist{{Name: "C"}},
				Album:    &musicclient.Album{Name: "Other", PicURL: "https://p.example/2.jpg"},
				Duration: 2000,
			},
			want: dto.TrackDTO{ID: 2, Name: "Two", Artists: "C", Album: "Other", Cover: "https://p.example/2.jpg", Duration: 2000},
		},
		{
			name: "nothing known",
			in:   musicclient.Track{ID: 3, Name: "Three"},
			want: dto.TrackDTO{ID: 3, Name: "Three", Artists: "Unknown Artist"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.MapTrack(tt.in))
		})
	}
}
