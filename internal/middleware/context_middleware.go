package middleware

import (
	"go-ems/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger attaches a request-scoped logger carrying the request id and
// user id, and propagates both into the standard context.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Header("X-Request-ID", rid)

		uid := c.GetString("user_id")

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("user_id", uid),
		)

		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithUserID(ctx, uid)
		ctx = contextutil.WithLogger(ctx, reqLogger)

		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
