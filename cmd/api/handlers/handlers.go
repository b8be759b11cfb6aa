package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"yospace/cmd/api/dto"
	"yospace/cmd/api/services"
	"yospace/config"
	"yospace/parser"
	"yospace/repositories"
)

// 클라이언트에 내려가는 고정 메시지. 내부 에러 내용은 로그에만 남긴다.
const (
	msgLoadFailed   = "Failed to load posts"
	msgMissingSlug  = "Missing slug"
	msgPostNotFound = "Post not found"
	msgNotFound     = "Not found"
	msgInvalidID    = "Invalid id"
	msgUpstream     = "Music service unavailable"
	msgRenderFailed = "Failed to render"
)

// HealthHandler godoc
// @Summary      Health check
// @Description  Reports whether the content directory is readable
// @Tags         system
// @Produce      json
// @Success      200  {object}  dto.HealthResponseDTO
// @Failure      503  {object}  dto.HealthResponseDTO
// @Router       /health [get]
func HealthHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Ping(); err != nil {
			config.ErrorWithFields("content directory unreachable", config.Fields{"error": err.Error()})
			c.JSON(http.StatusServiceUnavailable, dto.HealthResponseDTO{Status: "degraded", Content: "down"})
			return
		}
		c.JSON(http.StatusOK, dto.HealthResponseDTO{Status: "ok", Content: "up"})
	}
}

// queryOffset parses a non-negative integer; malformed or negative values yield def.
func queryOffset(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 0 {
		return def
	}
	return v
}

// queryLimit parses a positive integer; anything else yields def.
func queryLimit(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorResponseDTO{Message: message})
}

// fail logs err with request context and answers with a fixed message.
func fail(c *gin.Context, status int, message string, err error, fields config.Fields) {
	if fields == nil {
		fields = config.Fields{}
	}
	fields["path"] = c.Request.URL.Path
	fields["status"] = status
	fields["error"] = err.Error()
	if status >= http.StatusInternalServerError {
		config.ErrorWithFields(message, fields)
	} else {
		config.WarnWithFields(message, fields)
	}
	_ = c.Error(err)
	abort(c, status, message)
}

// postLookupStatus maps a single-post lookup error. Missing files, malformed
// front matter and read failures all surface as 404.
func postLookupStatus(err error) int {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}
	return http.StatusNotFound
}

// lookupReason is logged next to a failed post lookup.
func lookupReason(err error) string {
	switch {
	case errors.Is(err, repositories.ErrPostNotFound):
		return "not_found"
	case errors.Is(err, parser.ErrMalformedFrontMatter):
		return "malformed_front_matter"
	default:
		return "read_failed"
	}
}
