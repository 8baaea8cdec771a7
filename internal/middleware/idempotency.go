package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	idempotencyLockTTL  = 30 * time.Second
	idempotencyCacheTTL = 24 * time.Hour
)

// bodyRecorder tees the response body so a successful reply can be cached
// for replay.
type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the first successful response for an Idempotency-Key
// and blocks concurrent duplicates with a short-lived redis lock. Used on
// payslip generation and employee creation, where a double submit would
// otherwise race the uniqueness check.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), c.GetString("user_id"), idempKey)
		lockKey := cacheKey + ":lock"

		if cached, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
			c.Abort()
			return
		}

		// SetNX lock with a short expiry; if the server dies mid-request the
		// lock clears itself.
		acquired, _ := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if !acquired {
			response.Error(c, http.StatusConflict, "PROCESSING",
				"A request with this idempotency key is still being processed", nil)
			c.Abort()
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec

		c.Next()

		if status := c.Writer.Status(); status >= 200 && status < 300 {
			_ = rdb.Set(ctx, cacheKey, rec.body.String(), idempotencyCacheTTL).Err()
		}
		_ = rdb.Del(ctx, lockKey).Err()
	}
}
