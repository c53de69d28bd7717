package middleware

import (
	"go-clocker/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// ExtractUserID re-publishes the authenticated user id as
// "user_id_validated" for middleware that keys on it.
func ExtractUserID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, exists := ctx.Get("user_id")
		if !exists {
			abortWith(ctx, apperror.ErrUnauthorized)
			return
		}

		userIDStr, ok := userID.(string)
		if !ok || userIDStr == "" {
			abortWith(ctx, apperror.ErrUnauthorized)
			return
		}

		ctx.Set("user_id_validated", userIDStr)
		ctx.Next()
	}
}
