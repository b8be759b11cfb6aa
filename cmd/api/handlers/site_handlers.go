package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"yospace/cmd/api/services"
)

// ProfileHandler godoc
// @Summary      Site profile
// @Description  Owner profile and friend links
// @Tags         site
// @Produce      json
// @Success      200  {object}  dto.ProfileDTO
// @Router       /profile [get]
func ProfileHandler(svc *services.SiteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Profile())
	}
}

// FriendFeedsHandler godoc
// @Summary      Friend feeds
// @Description  Latest entries of friends' RSS/Atom feeds. Failing feeds are left out.
// @Tags         site
// @Produce      json
// @Success      200  {object}  dto.FriendFeedsDTO
// @Router       /links/feeds [get]
func FriendFeedsHandler(svc *services.SiteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.FriendFeeds(c.Request.Context()))
	}
}

func SitemapHandler(svc *services.SiteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		xml, err := svc.Sitemap(c.Request.Context())
		if err != nil {
			fail(c, http.StatusInternalServerError, msgLoadFailed, err, nil)
			return
		}
		c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(xml))
	}
}

func RobotsHandler(svc *services.SiteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, svc.Robots())
	}
}

func RSSHandler(svc *services.SiteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := svc.RSS(c.Request.Context(), c.Query("locale"))
		if err != nil {
			fail(c, http.StatusInternalServerError, msgLoadFailed, err, nil)
			return
		}
		c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", body)
	}
}
