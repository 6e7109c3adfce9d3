package utils

import (
	"time"

	"github.com/gin-gonic/gin"
)

// RequestTimeKey is the gin context key holding the clock reading for the request.
const RequestTimeKey = "requestTime"

// RequestTime returns the time set by the request clock middleware, or the
// wall clock when the middleware did not run.
func RequestTime(c *gin.Context) time.Time {
	if v, ok := c.Get(RequestTimeKey); ok {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	return time.Now()
}
