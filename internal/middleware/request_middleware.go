package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"marketplace_admin/pkg/utils"
)

const (
	RequestIDHeader   = "X-Request-ID"
	RequestTimeHeader = "X-Request-Time"
	RequestTimeQuery  = "now"
)

// RequestID tags every request with an id, reusing the caller's X-Request-ID
// when present, and echoes it in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(utils.RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestClock fixes the time a request is evaluated at. Callers may pin it
// with ?now= or the X-Request-Time header (RFC 3339 or YYYY-MM-DD, the latter
// read in the clock's location); otherwise clock() is used.
func RequestClock(clock func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := clock()

		raw := c.Query(RequestTimeQuery)
		if raw == "" {
			raw = c.GetHeader(RequestTimeHeader)
		}
		if raw != "" {
			pinned, err := utils.ParseTimestamp(raw, now.Location())
			if err != nil {
				utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request time.", err.Error()))
				return
			}
			now = pinned
		}

		c.Set(utils.RequestTimeKey, now)
		c.Next()
	}
}
