package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"yospace/cmd/api/services"
	"yospace/config"
	views "yospace/services"
)

// ListPostsHandler godoc
// @Summary      List posts
// @Description  One page of posts for a locale, newest first. offset is a zero-based page index.
// @Tags         blog
// @Param        offset  query  int     false  "Page index (0-based)"
// @Param        limit   query  int     false  "Page size"
// @Param        locale  query  string  false  "Locale (default en)"
// @Produce      json
// @Success      200  {object}  dto.PostListDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /blog/list [get]
func ListPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset := queryOffset(c, "offset", 0)
		limit := queryLimit(c, "limit", svc.PageSize())
		locale := c.Query("locale")

		page, err := svc.List(c.Request.Context(), offset, limit, locale)
		if err != nil {
			fail(c, http.StatusInternalServerError, msgLoadFailed, err, config.Fields{"locale": locale})
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// GetPostHandler godoc
// @Summary      Get post
// @Description  Post metadata and raw Markdown body. Falls back through the locale chain.
// @Tags         blog
// @Param        slug    query  string  true   "Post slug"
// @Param        locale  query  string  false  "Locale (default en)"
// @Produce      json
// @Success      200  {object}  models.PostContent
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /blog/post [get]
func GetPostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := strings.TrimSpace(c.Query("slug"))
		if slug == "" {
			abort(c, http.StatusBadRequest, msgMissingSlug)
			return
		}
		locale := c.Query("locale")

		post, err := svc.Get(c.Request.Context(), slug, locale)
		if err != nil {
			fail(c, postLookupStatus(err), msgPostNotFound, err, config.Fields{
				"slug": slug, "locale": locale, "reason": lookupReason(err),
			})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// RenderPostHandler godoc
// @Summary      Render post
// @Description  Post with sanitized HTML and table of contents
// @Tags         blog
// @Param        slug    query  string  true   "Post slug"
// @Param        locale  query  string  false  "Locale (default en)"
// @Produce      json
// @Success      200  {object}  dto.RenderedPostDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /blog/render [get]
func RenderPostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := strings.TrimSpace(c.Query("slug"))
		if slug == "" {
			abort(c, http.StatusBadRequest, msgMissingSlug)
			return
		}
		locale := c.Query("locale")

		post, err := svc.Render(c.Request.Context(), slug, locale)
		if err != nil {
			fail(c, postLookupStatus(err), msgPostNotFound, err, config.Fields{
				"slug": slug, "locale": locale, "reason": lookupReason(err),
			})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// HomeHandler godoc
// @Summary      Home list
// @Description  Pinned posts plus the rest ordered by sort mode
// @Tags         blog
// @Param        locale  query  string  false  "Locale"
// @Param        sort    query  string  false  "recommend | date-desc | date-asc"
// @Produce      json
// @Success      200  {object}  dto.HomeDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /blog/home [get]
func HomeHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		home, err := svc.Home(c.Request.Context(), c.Query("locale"), views.ParseSortMode(c.Query("sort")))
		if err != nil {
			fail(c, http.StatusInternalServerError, msgLoadFailed, err, nil)
			return
		}
		c.JSON(http.StatusOK, home)
	}
}

// ArchiveHandler godoc
// @Summary      Archive
// @Description  Posts grouped by year and month
// @Tags         blog
// @Param        locale  query  string  false  "Locale"
// @Produce      json
// @Success      200  {object}  dto.ArchiveDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /blog/archive [get]
func ArchiveHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Archive(c.Request.Context(), c.Query("locale"))
		if err != nil {
			fail(c, http.StatusInternalServerError, msgLoadFailed, err, nil)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// SearchHandler godoc
// @Summary      Search posts
// @Description  Case-insensitive match over title, description and tags
// @Tags         blog
// @Param        q       query  string  false  "Query"
// @Param        locale  query  string  false  "Locale"
// @Produce      json
// @Success      200  {object}  dto.SearchDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /blog/search [get]
func SearchHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Search(c.Request.Context(), c.Query("q"), c.Query("locale"))
		if err != nil {
			fail(c, http.StatusInternalServerError, msgLoadFailed, err, nil)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// RecommendHandler godoc
// @Summary      Recommended posts
// @Description  Random sample of recommended posts, excluding slug
// @Tags         blog
// @Param        slug    query  string  false  "Current post slug"
// @Param        locale  query  string  false  "Locale"
// @Param        limit   query  int     false  "Max items (default 4)"
// @Produce      json
// @Success      200  {object}  dto.ItemsDTO[models.PostItem]
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /blog/recommend [get]
func RecommendHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Recommend(c.Request.Context(), c.Query("slug"), c.Query("locale"), queryLimit(c, "limit", 0))
		if err != nil {
			fail(c, http.StatusInternalServerError, msgLoadFailed, err, nil)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// SeriesHandler godoc
// @Summary      Post series
// @Description  The series of a post and its members ordered by index
// @Tags         blog
// @Param        slug    query  string  true   "Post slug"
// @Param        locale  query  string  false  "Locale"
// @Produce      json
// @Success      200  {object}  dto.SeriesDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /blog/series [get]
func SeriesHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := strings.TrimSpace(c.Query("slug"))
		if slug == "" {
			abort(c, http.StatusBadRequest, msgMissingSlug)
			return
		}
		out, err := svc.Series(c.Request.Context(), slug, c.Query("locale"))
		if err != nil {
			fail(c, postLookupStatus(err), msgPostNotFound, err, config.Fields{"slug": slug, "reason": lookupReason(err)})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// SlugsHandler godoc
// @Summary      All slugs
// @Description  Every distinct post slug across locales
// @Tags         blog
// @Produce      json
// @Success      200  {object}  dto.SlugsDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /blog/slugs [get]
func SlugsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Slugs(c.Request.Context())
		if err != nil {
			fail(c, http.StatusInternalServerError, msgLoadFailed, err, nil)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// HighlightCSSHandler godoc
// @Summary      Code highlight stylesheet
// @Tags         blog
// @Produce      text/css
// @Success      200  {string}  string
// @Router       /blog/highlight.css [get]
func HighlightCSSHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		css, err := svc.HighlightCSS()
		if err != nil {
			fail(c, http.StatusInternalServerError, msgRenderFailed, err, nil)
			return
		}
		c.Header("Cache-Control", "public, max-age=86400")
		c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(css))
	}
}
