package payroll

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
	payroll := r.Group("/payroll")
	payroll.Use(middleware.AuthMiddleware(jwtSecret))
	payroll.Use(middleware.ContextLogger(logger))
	{
		payroll.GET("/calculate",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "payroll", "calculate"),
			handler.Calculate,
		)
		payroll.GET("/payslip",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "payroll", "payslip"),
			handler.DownloadPayslip,
		)
	}
}
