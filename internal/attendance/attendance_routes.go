package attendance

import (
	"go-clocker/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
	jwtSecret string,
	logger *zap.Logger,
) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware(jwtSecret))
	attendances.Use(middleware.ContextLogger(logger))
	{
		attendances.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			h.GetAll,
		)
		attendances.GET("/status",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			h.Status,
		)
		attendances.GET("/status/:employee_id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "attendance", "read-all"),
			h.Status,
		)
		attendances.GET("/timesheet",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			h.Timesheet,
		)

		clock := attendances.Group("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "attendance", "clock"),
			middleware.ExtractUserID(),
			middleware.Idempotency(rdb),
		)
		clock.POST("/clock-in", h.ClockIn)
		clock.POST("/clock-out", h.ClockOut)
		clock.POST("/qr", h.ClockByQR)

		attendances.POST("/face",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "attendance", "kiosk"),
			h.ClockByFace,
		)
		attendances.POST("/qr-tokens",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "attendance", "issue-qr"),
			h.IssueQRToken,
		)
	}
}
