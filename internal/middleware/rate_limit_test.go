package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-clocker/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitByUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		if uid := c.GetHeader("X-User"); uid != "" {
			c.Set("user_id", uid)
		}
		c.Next()
	}, middleware.RateLimitByUser(0.001, 2), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	call := func(user string) int {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		if user != "" {
			req.Header.Set("X-User", user)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, call("user-1"))
	assert.Equal(t, http.StatusNoContent, call("user-1"))
	assert.Equal(t, http.StatusTooManyRequests, call("user-1"))

	// buckets are per user
	assert.Equal(t, http.StatusNoContent, call("user-2"))

	// anonymous requests are not limited here
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusNoContent, call(""))
	}
}

func TestRateLimitByIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", middleware.RateLimitByIP(0.001, 1), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	call := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, call("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, call("10.0.0.2"))
}

func TestKeyedRateLimiter_ReusesLimiter(t *testing.T) {
	k := middleware.NewKeyedRateLimiter(1, 1)
	assert.Same(t, k.GetLimiter("a"), k.GetLimiter("a"))
	assert.NotSame(t, k.GetLimiter("a"), k.GetLimiter("b"))
}
