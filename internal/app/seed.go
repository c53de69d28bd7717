package app

import (
	"context"
	"errors"

	"go-clocker/internal/auth"
	autherrors "go-clocker/internal/auth/errors"
	"go-clocker/internal/config"
	"go-clocker/internal/domain"

	"go.uber.org/zap"
)

// seedAdmin registers the configured administrator. An already registered
// email is not an error, so restarts are safe.
func seedAdmin(ctx context.Context, authService auth.Service, admin config.BootstrapAdminConfig, logger *zap.Logger) error {
	if !admin.Enabled() {
		return nil
	}

	_, err := authService.Register(ctx, admin.CompanyID, auth.RegisterRequest{
		Email:    admin.Email,
		Name:     "Administrator",
		Password: admin.Password,
		Role:     domain.RoleAdmin,
	})
	if errors.Is(err, autherrors.ErrEmailAlreadyRegistered) {
		logger.Debug("bootstrap admin already registered", zap.String("company_id", admin.CompanyID))
		return nil
	}
	if err != nil {
		return err
	}
	logger.Info("bootstrap admin registered", zap.String("company_id", admin.CompanyID))
	return nil
}
