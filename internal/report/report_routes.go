package report

import (
	"go-clocker/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	jwtSecret string,
	logger *zap.Logger,
) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware(jwtSecret))
	reports.Use(middleware.ContextLogger(logger))
	reports.Use(middleware.RBACAuthorize(rbacService, "report", "read"))
	{
		reports.GET("/today", middleware.RateLimitByUser(2, 10), handler.Today)
		reports.GET("/late-arrivals", middleware.RateLimitByUser(1, 5), handler.LateArrivals)
		reports.GET("/absences", middleware.RateLimitByUser(1, 5), handler.Absences)
		reports.GET("/absences/export",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "report", "export"),
			handler.ExportAbsences,
		)
	}
}
