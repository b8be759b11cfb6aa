package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"yospace/cmd/api/services"
	"yospace/config"
)

// ListCategoriesHandler godoc
// @Summary      List categories
// @Description  Categories with post counts and localized labels
// @Tags         filters
// @Param        locale  query  string  false  "Locale"
// @Produce      json
// @Success      200  {object}  dto.TaxonomyListDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /blog/categories [get]
func ListCategoriesHandler(svc *services.FilterService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.GetCategories(c.Request.Context(), c.Query("locale"))
		if err != nil {
			fail(c, http.StatusInternalServerError, msgLoadFailed, err, nil)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetCategoryHandler godoc
// @Summary      Category detail
// @Tags         filters
// @Param        id      path   string  true   "Category id"
// @Param        locale  query  string  false  "Locale"
// @Produce      json
// @Success      200  {object}  dto.CategoryDetailDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /blog/categories/{id} [get]
func GetCategoryHandler(svc *services.FilterService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		out, err := svc.GetCategory(c.Request.Context(), id, c.Query("locale"))
		if err != nil {
			status := http.StatusInternalServerError
			msg := msgLoadFailed
			if errors.Is(err, services.ErrNotFound) {
				status, msg = http.StatusNotFound, msgNotFound
			}
			fail(c, status, msg, err, config.Fields{"category": id})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// ListTagsHandler godoc
// @Summary      List tags
// @Tags         filters
// @Param        locale  query  string  false  "Locale"
// @Produce      json
// @Success      200  {object}  dto.TaxonomyListDTO
// @Failure      500  {object}  dto.ErrorResponseDTO
// @Router       /blog/tags [get]
func ListTagsHandler(svc *services.FilterService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.GetTags(c.Request.Context(), c.Query("locale"))
		if err != nil {
			fail(c, http.StatusInternalServerError, msgLoadFailed, err, nil)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetTagHandler godoc
// @Summary      Tag detail
// @Tags         filters
// @Param        name    path   string  true   "Tag"
// @Param        locale  query  string  false  "Locale"
// @Produce      json
// @Success      200  {object}  dto.TagDetailDTO
// @Failure      404  {object}  dto.ErrorResponseDTO
// @Router       /blog/tags/{name} [get]
func GetTagHandler(svc *services.FilterService) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		out, err := svc.GetTag(c.Request.Context(), name, c.Query("locale"))
		if err != nil {
			status := http.StatusInternalServerError
			msg := msgLoadFailed
			if errors.Is(err, services.ErrNotFound) {
				status, msg = http.StatusNotFound, msgNotFound
			}
			fail(c, status, msg, err, config.Fields{"tag": name})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
