package auth

import (
	"go-clocker/internal/domain"
	"go-clocker/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, jwtSecret string) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		auth.POST("/refresh", middleware.RateLimitByIP(0.5, 5), handler.RefreshToken)
		auth.POST("/logout", handler.Logout)

		auth.GET("/me", middleware.AuthMiddleware(jwtSecret), middleware.RateLimitByUser(2, 5), handler.Me)
		auth.POST("/register",
			middleware.AuthMiddleware(jwtSecret),
			middleware.RoleMiddleware(domain.RoleAdmin),
			middleware.RateLimitByUser(0.5, 2),
			handler.Register,
		)
	}
}
