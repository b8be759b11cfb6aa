package handlers

import (
	"errors"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"yospace/cmd/api/clients/musicclient"
	"yospace/cmd/api/httpclient"
	"yospace/cmd/api/services"
	"yospace/config"
)

// PlaylistHandler godoc
// @Summary      Music playlist
// @Description  Configured playlist with normalized artists and https covers
// @Tags         music
// @Produce      json
// @Success      200  {object}  dto.PlaylistDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /music/playlist [get]
func PlaylistHandler(svc *services.MusicService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Playlist(c.Request.Context())
		if err != nil {
			fail(c, http.StatusBadGateway, msgUpstream, err, nil)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// SongURLHandler godoc
// @Summary      Song stream url
// @Description  Checks availability then resolves the stream url
// @Tags         music
// @Param        id   path  int  true  "Song id"
// @Produce      json
// @Success      200  {object}  dto.SongURLDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Failure      502  {object}  dto.ErrorResponseDTO
// @Router       /music/songs/{id}/url [get]
func SongURLHandler(svc *services.MusicService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil || id <= 0 {
			abort(c, http.StatusBadRequest, msgInvalidID)
			return
		}

		out, err := svc.SongURL(c.Request.Context(), id)
		switch {
		case err == nil:
			c.JSON(http.StatusOK, out)
		case errors.Is(err, musicclient.ErrNotFound):
			fail(c, http.StatusNotFound, msgNotFound, err, config.Fields{"song_id": id})
		default:
			fail(c, http.StatusBadGateway, msgUpstream, err, config.Fields{"song_id": id})
		}
	}
}

// MusicProxyHandler forwards /api/music-proxy/*path to the music API so browsers
// never call it cross-origin. The caller mounts it behind the rate limiter.
func MusicProxyHandler(apiBase string) (gin.HandlerFunc, error) {
	target, err := url.Parse(apiBase)
	if err != nil {
		return nil, err
	}

	proxy := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
			pr.Out.Header.Del("Cookie")
		},
		Transport: httpclient.NewTransport(nil),
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			config.ErrorWithFields("music proxy failed", config.Fields{
				"path":  r.URL.Path,
				"error": err.Error(),
			})
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"message":"` + msgUpstream + `"}`))
		},
	}

	return func(c *gin.Context) {
		req := c.Request.Clone(c.Request.Context())
		req.URL.Path = c.Param("path")
		req.URL.RawPath = ""
		proxy.ServeHTTP(c.Writer, req)
	}, nil
}
