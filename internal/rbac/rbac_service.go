package rbac

import (
	"go-clocker/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
	Permissions(role string) []domain.PermissionResponse
}

type service struct {
	enforcer *casbin.Enforcer
	policies [][]string
	logger   *zap.Logger
}

// NewService wraps an enforcer that was loaded with policies.
func NewService(enforcer *casbin.Enforcer, policies [][]string, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{enforcer: enforcer, policies: policies, logger: l}
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) Permissions(role string) []domain.PermissionResponse {
	res := make([]domain.PermissionResponse, 0)
	for _, p := range s.policies {
		if len(p) == 3 && p[0] == role {
			res = append(res, domain.PermissionResponse{Resource: p[1], Action: p[2]})
		}
	}
	return res
}
