package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-clocker/internal/auth"
	autherrors "go-clocker/internal/auth/errors"
	authMock "go-clocker/internal/auth/mock"
	"go-clocker/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService, false)
	router := setupAuthRouter()
	router.POST("/login", handler.Login)

	loginBody := func() *bytes.Buffer {
		body, _ := json.Marshal(auth.LoginRequest{Email: "test@example.com", Password: "password123"})
		return bytes.NewBuffer(body)
	}

	t.Run("web client gets cookies", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), "test@example.com", "password123").
			Return("access-token", "refresh-token", auth.AuthResponse{ID: "user-1", Email: "test@example.com"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/login", loginBody())
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Client-Type", "WEB")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		cookies := w.Result().Cookies()
		assert.Len(t, cookies, 2)
		assert.Equal(t, "access_token", cookies[0].Name)
		assert.Equal(t, "access-token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)

		var data struct {
			User auth.AuthResponse `json:"user"`
		}
		env := decode(t, w)
		assert.True(t, env.Ok)
		assert.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "test@example.com", data.User.Email)
	})

	t.Run("kiosk client gets tokens in body only", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("access-token", "refresh-token", auth.AuthResponse{ID: "user-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/login", loginBody())
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Client-Type", "KIOSK")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Result().Cookies())

		var data struct {
			AccessToken string `json:"access_token"`
		}
		assert.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
		assert.Equal(t, "access-token", data.AccessToken)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", "", auth.AuthResponse{}, autherrors.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/login", loginBody())
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, decode(t, w).Ok)
	})

	t.Run("validation error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"email":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService, false)
	router := setupAuthRouter()
	router.POST("/refresh", handler.RefreshToken)

	t.Run("web client reads cookie", func(t *testing.T) {
		mockService.EXPECT().
			RefreshToken(gomock.Any(), "old-refresh").
			Return("new-access", "new-refresh", auth.AuthResponse{ID: "user-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
		req.Header.Set("X-Client-Type", "WEB")
		req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "old-refresh"})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, w.Result().Cookies(), 2)
	})

	t.Run("web client without cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
		req.Header.Set("X-Client-Type", "WEB")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "NO_REFRESH_TOKEN", decode(t, w).Error.Code)
	})

	t.Run("mobile client reads body", func(t *testing.T) {
		mockService.EXPECT().
			RefreshToken(gomock.Any(), "body-refresh").
			Return("", "", auth.AuthResponse{}, autherrors.ErrInvalidRefreshToken)

		req := httptest.NewRequest(http.MethodPost, "/refresh", bytes.NewBufferString(`{"refresh_token":"body-refresh"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Client-Type", "MOBILE")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "INVALID_REFRESH_TOKEN", decode(t, w).Error.Code)
	})
}

func TestHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService, false)

	router := setupAuthRouter()
	router.POST("/register", func(c *gin.Context) {
		c.Set("company_id", "company-1")
		c.Next()
	}, handler.Register)

	t.Run("created", func(t *testing.T) {
		mockService.EXPECT().
			Register(gomock.Any(), "company-1", gomock.Any()).
			DoAndReturn(func(_ interface{}, _ string, req auth.RegisterRequest) (auth.AuthResponse, error) {
				assert.Equal(t, domain.RoleAdmin, req.Role)
				return auth.AuthResponse{ID: "user-2", Role: req.Role}, nil
			})

		body := `{"email":"boss@example.com","name":"Boss","password":"secret1","role":"ADMIN"}`
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("unknown role rejected by binding", func(t *testing.T) {
		body := `{"email":"boss@example.com","name":"Boss","password":"secret1","role":"OWNER"}`
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Me(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService, false)

	router := setupAuthRouter()
	router.GET("/me", func(c *gin.Context) {
		if uid := c.GetHeader("X-Test-User"); uid != "" {
			c.Set("user_id", uid)
		}
		c.Next()
	}, handler.Me)

	mockService.EXPECT().GetMe(gomock.Any(), "user-1").Return(&auth.AuthResponse{ID: "user-1"}, nil)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("X-Test-User", "user-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService, false)
	router := setupAuthRouter()
	router.POST("/logout", handler.Logout)

	mockService.EXPECT().Logout(gomock.Any(), "cookie-refresh").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "cookie-refresh"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		assert.Empty(t, c.Value)
	}
}
