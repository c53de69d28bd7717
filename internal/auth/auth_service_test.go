package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-clocker/internal/auth"
	autherrors "go-clocker/internal/auth/errors"
	authMock "go-clocker/internal/auth/mock"
	"go-clocker/internal/domain"
	"go-clocker/internal/employee"
	employeeerrors "go-clocker/internal/employee/errors"
	employeeMock "go-clocker/internal/employee/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type authDeps struct {
	service   auth.Service
	repo      *authMock.MockRepository
	employees *employeeMock.MockRepository
	redis     redismock.ClientMock
}

func setupAuthService(t *testing.T) *authDeps {
	ctrl := gomock.NewController(t)
	repo := authMock.NewMockRepository(ctrl)
	employees := employeeMock.NewMockRepository(ctrl)
	rdb, redisMock := redismock.NewClientMock()

	return &authDeps{
		service:   auth.NewService(repo, employees, rdb, auth.DefaultTokenConfig(testSecret)),
		repo:      repo,
		employees: employees,
		redis:     redisMock,
	}
}

func parseClaims(t *testing.T, token string) jwt.MapClaims {
	t.Helper()
	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) { return []byte(testSecret), nil })
	assert.NoError(t, err)
	return parsed.Claims.(jwt.MapClaims)
}

func newUser(t *testing.T, password string) *auth.User {
	t.Helper()
	pw, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	employeeID := uuid.New()
	return &auth.User{
		ID:         uuid.New(),
		EmployeeID: &employeeID,
		CompanyID:  uuid.New(),
		Email:      "worker@example.com",
		Password:   string(pw),
		Role:       domain.RoleEmployee,
		IsActive:   true,
	}
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	password := "password123"

	t.Run("success carries role and employee claims", func(t *testing.T) {
		deps := setupAuthService(t)
		user := newUser(t, password)
		deps.repo.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil)

		token, refreshToken, resp, err := deps.service.Login(ctx, user.Email, password)

		assert.NoError(t, err)
		assert.NotEmpty(t, refreshToken)
		assert.Equal(t, user.CompanyID.String(), resp.CompanyID)
		assert.Equal(t, domain.RoleEmployee, resp.Role)

		claims := parseClaims(t, token)
		assert.Equal(t, user.ID.String(), claims["user_id"])
		assert.Equal(t, user.EmployeeID.String(), claims["employee_id"])
		assert.Equal(t, domain.RoleEmployee, claims["role"])
		assert.Equal(t, "access", claims["typ"])
		assert.Equal(t, "refresh", parseClaims(t, refreshToken)["typ"])
	})

	t.Run("wrong password", func(t *testing.T) {
		deps := setupAuthService(t)
		user := newUser(t, password)
		deps.repo.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil)

		_, _, _, err := deps.service.Login(ctx, user.Email, "wrongpass")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		deps := setupAuthService(t)
		deps.repo.EXPECT().GetByEmail(ctx, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, _, _, err := deps.service.Login(ctx, "nobody@example.com", password)
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		deps := setupAuthService(t)
		user := newUser(t, password)
		user.IsActive = false
		deps.repo.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil)

		_, _, _, err := deps.service.Login(ctx, user.Email, password)
		assert.ErrorIs(t, err, autherrors.ErrUserInactive)
	})
}

func TestService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	password := "password123"

	t.Run("rotates and revokes the old token", func(t *testing.T) {
		deps := setupAuthService(t)
		user := newUser(t, password)
		deps.repo.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil)
		_, refreshToken, _, err := deps.service.Login(ctx, user.Email, password)
		assert.NoError(t, err)

		jti := parseClaims(t, refreshToken)["jti"].(string)
		deps.redis.ExpectExists("auth:revoked:" + jti).SetVal(0)
		deps.repo.EXPECT().GetByID(ctx, user.ID).Return(user, nil)
		// ttl is the token's remaining lifetime, so only the key is matched
		deps.redis.CustomMatch(func(expected, actual []interface{}) error {
			if actual[1] != expected[1] {
				return errors.New("unexpected revocation key")
			}
			return nil
		}).ExpectSet("auth:revoked:"+jti, "1", time.Hour).SetVal("OK")

		access, newRefresh, resp, err := deps.service.RefreshToken(ctx, refreshToken)
		assert.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEqual(t, refreshToken, newRefresh)
		assert.Equal(t, user.Email, resp.Email)
	})

	t.Run("revoked token rejected", func(t *testing.T) {
		deps := setupAuthService(t)
		user := newUser(t, password)
		deps.repo.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil)
		_, refreshToken, _, _ := deps.service.Login(ctx, user.Email, password)

		jti := parseClaims(t, refreshToken)["jti"].(string)
		deps.redis.ExpectExists("auth:revoked:" + jti).SetVal(1)

		_, _, _, err := deps.service.RefreshToken(ctx, refreshToken)
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("access token is not a refresh token", func(t *testing.T) {
		deps := setupAuthService(t)
		user := newUser(t, password)
		deps.repo.EXPECT().GetByEmail(ctx, user.Email).Return(user, nil)
		access, _, _, _ := deps.service.Login(ctx, user.Email, password)

		_, _, _, err := deps.service.RefreshToken(ctx, access)
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})

	t.Run("garbage", func(t *testing.T) {
		deps := setupAuthService(t)
		_, _, _, err := deps.service.RefreshToken(ctx, "not.a.jwt")
		assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
	})
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("employee account", func(t *testing.T) {
		deps := setupAuthService(t)
		employeeID := uuid.New()
		deps.employees.EXPECT().FindByIDAndCompany(ctx, companyID, employeeID.String()).
			Return(&employee.Employee{ID: employeeID}, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *auth.User) error {
			assert.Equal(t, domain.RoleEmployee, u.Role)
			assert.Equal(t, "new@example.com", u.Email)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret1")))
			return nil
		})

		resp, err := deps.service.Register(ctx, companyID, auth.RegisterRequest{
			EmployeeID: employeeID.String(),
			Email:      "New@Example.com",
			Name:       "New",
			Password:   "secret1",
		})
		assert.NoError(t, err)
		assert.Equal(t, employeeID.String(), resp.EmployeeID)
	})

	t.Run("admin account without employee", func(t *testing.T) {
		deps := setupAuthService(t)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Register(ctx, companyID, auth.RegisterRequest{
			Email:    "boss@example.com",
			Name:     "Boss",
			Password: "secret1",
			Role:     domain.RoleAdmin,
		})
		assert.NoError(t, err)
		assert.Empty(t, resp.EmployeeID)
		assert.Equal(t, domain.RoleAdmin, resp.Role)
	})

	t.Run("employee account needs employee", func(t *testing.T) {
		deps := setupAuthService(t)
		_, err := deps.service.Register(ctx, companyID, auth.RegisterRequest{
			Email: "x@example.com", Name: "X", Password: "secret1",
		})
		assert.ErrorIs(t, err, autherrors.ErrEmployeeRequired)
	})

	t.Run("employee from another company", func(t *testing.T) {
		deps := setupAuthService(t)
		employeeID := uuid.New().String()
		deps.employees.EXPECT().FindByIDAndCompany(ctx, companyID, employeeID).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Register(ctx, companyID, auth.RegisterRequest{
			EmployeeID: employeeID, Email: "x@example.com", Name: "X", Password: "secret1",
		})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		deps := setupAuthService(t)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_user_email"})

		_, err := deps.service.Register(ctx, companyID, auth.RegisterRequest{
			Email: "boss@example.com", Name: "Boss", Password: "secret1", Role: domain.RoleAdmin,
		})
		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})

	t.Run("repository failure passes through", func(t *testing.T) {
		deps := setupAuthService(t)
		boom := errors.New("boom")
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(boom)

		_, err := deps.service.Register(ctx, companyID, auth.RegisterRequest{
			Email: "boss@example.com", Name: "Boss", Password: "secret1", Role: domain.RoleAdmin,
		})
		assert.ErrorIs(t, err, boom)
	})
}

func TestService_GetMe(t *testing.T) {
	ctx := context.Background()
	deps := setupAuthService(t)

	_, err := deps.service.GetMe(ctx, "nope")
	assert.ErrorIs(t, err, autherrors.ErrInvalidUserID)

	user := newUser(t, "pw1234")
	deps.repo.EXPECT().GetByID(ctx, user.ID).Return(user, nil)
	resp, err := deps.service.GetMe(ctx, user.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, user.EmployeeID.String(), resp.EmployeeID)
}
