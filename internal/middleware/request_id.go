package middleware

import (
	"go-ems/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.New().String()
		}

		c.Set("request_id", rid)

		// Propagate into the standard context so service/repo layers can read
		// it without knowing about gin.
		ctx := contextutil.WithRequestID(c.Request.Context(), rid)
		c.Request = c.Request.WithContext(ctx)

		c.Header("X-Request-ID", rid)
		c.Next()
	}
}
