package middleware

import (
	"go-clocker/internal/domain"
	"go-clocker/internal/shared/apperror"
	"go-clocker/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// abortWith writes err in the response envelope and stops the chain.
func abortWith(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
	c.Abort()
}

// RBACService is satisfied by rbac.Service; declared here so the middleware
// does not import the rbac package.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			abortWith(c, apperror.ErrUnauthorized)
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			Role:     role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			abortWith(c, err)
			return
		}

		if !allowed {
			abortWith(c, apperror.ErrForbidden.WithDetails(gin.H{"required": resource + ":" + action}))
			return
		}
		c.Next()
	}
}

// Allowed reports whether the caller's role may perform resource:action.
// Handlers use it to widen a query from "own" to "all".
func Allowed(c *gin.Context, service RBACService, resource, action string) bool {
	if service == nil {
		return false
	}
	ok, err := service.Enforce(domain.EnforceRequest{
		Role:     c.GetString("role"),
		Resource: resource,
		Action:   action,
	})
	return err == nil && ok
}
