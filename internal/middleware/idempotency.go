package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-clocker/internal/shared/apperror"
	"go-clocker/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	idempotencyCacheKey = "idempotency_cache_key"
	idempotencyLockKey  = "idempotency_lock_key"
	idempotencyLockTTL  = 30 * time.Second
)

// Idempotency replays the stored result of a POST that carried the same
// Idempotency-Key for the same user, and rejects a duplicate while the first
// one is still running. Handlers finish the protocol with
// StoreIdempotentResult and ReleaseIdempotencyLock.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		userID := c.GetString("user_id_validated")
		if userID == "" {
			userID = c.GetString("user_id")
		}

		if rdb == nil || idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			response.Success(c, http.StatusOK, json.RawMessage(val), nil)
			c.Abort()
			return
		}

		isNew, err := rdb.SetNX(c.Request.Context(), lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			// cache down: run the request without protection
			c.Next()
			return
		}
		if !isNew {
			abortWith(c, apperror.ErrRequestInProgress)
			return
		}

		c.Set(idempotencyCacheKey, cacheKey)
		c.Set(idempotencyLockKey, lockKey)

		c.Next()
	}
}

func ReleaseIdempotencyLock(c *gin.Context, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	if lk := c.GetString(idempotencyLockKey); lk != "" {
		_ = rdb.Del(c.Request.Context(), lk).Err()
	}
}

func StoreIdempotentResult(c *gin.Context, rdb *redis.Client, data any, ttl time.Duration) {
	if rdb == nil {
		return
	}
	ck := c.GetString(idempotencyCacheKey)
	if ck == "" {
		return
	}
	if payload, err := json.Marshal(data); err == nil {
		_ = rdb.Set(c.Request.Context(), ck, payload, ttl).Err()
	}
}
