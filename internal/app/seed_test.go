package app

import (
	"context"
	"errors"
	"testing"

	"go-clocker/internal/auth"
	autherrors "go-clocker/internal/auth/errors"
	authMock "go-clocker/internal/auth/mock"
	"go-clocker/internal/config"
	"go-clocker/internal/domain"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestSeedAdmin(t *testing.T) {
	ctx := context.Background()
	admin := config.BootstrapAdminConfig{
		CompanyID: "11111111-1111-1111-1111-111111111111",
		Email:     "admin@example.com",
		Password:  "secret123",
	}

	t.Run("disabled without credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := authMock.NewMockService(ctrl)

		assert.NoError(t, seedAdmin(ctx, svc, config.BootstrapAdminConfig{CompanyID: admin.CompanyID}, zap.NewNop()))
	})

	t.Run("registers an admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := authMock.NewMockService(ctrl)
		svc.EXPECT().Register(ctx, admin.CompanyID, auth.RegisterRequest{
			Email:    admin.Email,
			Name:     "Administrator",
			Password: admin.Password,
			Role:     domain.RoleAdmin,
		}).Return(auth.AuthResponse{}, nil)

		assert.NoError(t, seedAdmin(ctx, svc, admin, zap.NewNop()))
	})

	t.Run("existing admin is fine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := authMock.NewMockService(ctrl)
		svc.EXPECT().Register(ctx, admin.CompanyID, gomock.Any()).Return(auth.AuthResponse{}, autherrors.ErrEmailAlreadyRegistered)

		assert.NoError(t, seedAdmin(ctx, svc, admin, zap.NewNop()))
	})

	t.Run("other failures stop the start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := authMock.NewMockService(ctrl)
		svc.EXPECT().Register(ctx, admin.CompanyID, gomock.Any()).Return(auth.AuthResponse{}, errors.New("db down"))

		assert.EqualError(t, seedAdmin(ctx, svc, admin, zap.NewNop()), "db down")
	})
}
