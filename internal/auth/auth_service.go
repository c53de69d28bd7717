package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	autherrors "go-clocker/internal/auth/errors"
	"go-clocker/internal/domain"
	"go-clocker/internal/employee"
	employeeerrors "go-clocker/internal/employee/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	revokedKeyPrefix = "auth:revoked:"
)

type TokenConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func DefaultTokenConfig(secret string) TokenConfig {
	return TokenConfig{
		Secret:     secret,
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	}
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp AuthResponse, err error)

	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)

	GetMe(ctx context.Context, userID string) (*AuthResponse, error)

	// Register creates a login for an existing employee (or an admin account)
	// inside the caller's company.
	Register(ctx context.Context, companyID string, req RegisterRequest) (AuthResponse, error)

	// Logout revokes the refresh token until it would have expired anyway.
	Logout(ctx context.Context, refreshToken string) error
}

type service struct {
	repo         Repository
	employeeRepo employee.Repository
	rdb          *redis.Client
	tokens       TokenConfig
	now          func() time.Time
	logger       *zap.Logger
}

func NewService(
	repo Repository,
	employeeRepo employee.Repository,
	rdb *redis.Client,
	tokens TokenConfig,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		repo:         repo,
		employeeRepo: employeeRepo,
		rdb:          rdb,
		tokens:       tokens,
		now:          time.Now,
		logger:       l,
	}
}

func (s *service) Login(ctx context.Context, email, password string) (string, string, AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Debug("login unknown email", zap.String("email", email))
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Info("login wrong password", zap.String("user_id", user.ID.String()))
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", "", AuthResponse{}, autherrors.ErrUserInactive
	}

	accessToken, refreshToken, err := s.issuePair(user)
	if err != nil {
		return "", "", AuthResponse{}, err
	}

	s.logger.Info("login success", zap.String("user_id", user.ID.String()), zap.String("role", user.Role))
	return accessToken, refreshToken, mapToResponse(user), nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	claims, err := s.parse(refreshToken)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}
	if typ, _ := claims["typ"].(string); typ != tokenTypeRefresh {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	jti, _ := claims["jti"].(string)
	if s.isRevoked(ctx, jti) {
		s.logger.Warn("revoked refresh token presented", zap.String("jti", jti))
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	userIDStr, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrUserNotFound
	}
	if !user.IsActive {
		return "", "", AuthResponse{}, autherrors.ErrUserInactive
	}

	newAccess, newRefresh, err := s.issuePair(user)
	if err != nil {
		return "", "", AuthResponse{}, err
	}

	// rotation: the presented refresh token is single use
	s.revoke(ctx, claims)

	return newAccess, newRefresh, mapToResponse(user), nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	resp := mapToResponse(u)
	return &resp, nil
}

func (s *service) Register(ctx context.Context, companyID string, req RegisterRequest) (AuthResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return AuthResponse{}, employeeerrors.ErrInvalidCompanyID
	}

	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if role == "" {
		role = domain.RoleEmployee
	}
	if !domain.ValidRole(role) {
		return AuthResponse{}, autherrors.ErrInvalidRole
	}

	var employeeID *uuid.UUID
	if req.EmployeeID != "" {
		eID, err := uuid.Parse(req.EmployeeID)
		if err != nil {
			return AuthResponse{}, employeeerrors.ErrInvalidEmployeeID
		}
		if _, err := s.employeeRepo.FindByIDAndCompany(ctx, companyID, eID.String()); err != nil {
			return AuthResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		employeeID = &eID
	} else if role == domain.RoleEmployee {
		return AuthResponse{}, autherrors.ErrEmployeeRequired
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	user := &User{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		CompanyID:  companyUUID,
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Name:       req.Name,
		Password:   string(hashed),
		Role:       role,
		IsActive:   true,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		s.logger.Warn("register persist failed", zap.Error(err))
		return AuthResponse{}, mapCreateError(err)
	}

	s.logger.Info("register success",
		zap.String("user_id", user.ID.String()),
		zap.String("company_id", companyID),
		zap.String("role", role),
	)
	return mapToResponse(user), nil
}

func (s *service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	claims, err := s.parse(refreshToken)
	if err != nil {
		// an expired or forged token needs no revocation
		return nil
	}
	s.revoke(ctx, claims)
	return nil
}

func (s *service) issuePair(user *User) (string, string, error) {
	accessToken, err := s.generateToken(user, tokenTypeAccess, s.tokens.AccessTTL)
	if err != nil {
		s.logger.Error("generate access token failed", zap.Error(err))
		return "", "", autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := s.generateToken(user, tokenTypeRefresh, s.tokens.RefreshTTL)
	if err != nil {
		s.logger.Error("generate refresh token failed", zap.Error(err))
		return "", "", autherrors.ErrTokenGenerationFailed
	}
	return accessToken, refreshToken, nil
}

func (s *service) generateToken(user *User, typ string, expiry time.Duration) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"user_id":     user.ID.String(),
		"employee_id": user.EmployeeIDString(),
		"company_id":  user.CompanyID.String(),
		"role":        user.Role,
		"typ":         typ,
		"jti":         uuid.NewString(),
		"iat":         now.Unix(),
		"exp":         now.Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.tokens.Secret))
}

func (s *service) parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(s.tokens.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, autherrors.ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, autherrors.ErrInvalidToken
	}
	return claims, nil
}

func (s *service) isRevoked(ctx context.Context, jti string) bool {
	if s.rdb == nil || jti == "" {
		return false
	}
	n, err := s.rdb.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		s.logger.Warn("revocation lookup failed", zap.Error(err))
		return false
	}
	return n > 0
}

func (s *service) revoke(ctx context.Context, claims jwt.MapClaims) {
	jti, _ := claims["jti"].(string)
	if s.rdb == nil || jti == "" {
		return
	}
	ttl := time.Minute
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		if remaining := exp.Sub(s.now()); remaining > 0 {
			ttl = remaining
		}
	}
	if err := s.rdb.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err(); err != nil {
		s.logger.Warn("revoke refresh token failed", zap.String("jti", jti), zap.Error(err))
	}
}

func mapCreateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "uq_user_employee" {
			return autherrors.ErrEmployeeAlreadyLinked
		}
		return autherrors.ErrEmailAlreadyRegistered
	}
	return err
}

func mapToResponse(u *User) AuthResponse {
	return AuthResponse{
		ID:         u.ID.String(),
		CompanyID:  u.CompanyID.String(),
		EmployeeID: u.EmployeeIDString(),
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
	}
}
