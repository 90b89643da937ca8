package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Komy007/CoinNexus/internal/feature/auth/usecase"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockAuthUsecase is a func-field mock of the AuthUsecase interface.
type mockAuthUsecase struct {
	SignupFunc func(ctx context.Context, username, email, password string) error
	LoginFunc  func(ctx context.Context, email, password string, client usecase.ClientInfo) (string, error)
	LogoutFunc func(ctx context.Context, userID uint) error
}

func (m *mockAuthUsecase) Signup(ctx context.Context, username, email, password string) error {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, username, email, password)
	}
	return nil
}

func (m *mockAuthUsecase) Login(ctx context.Context, email, password string, client usecase.ClientInfo) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password, client)
	}
	return "test-token", nil
}

func (m *mockAuthUsecase) Logout(ctx context.Context, userID uint) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, userID)
	}
	return nil
}

func performJSON(t *testing.T, h gin.HandlerFunc, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h(c)
	return w
}

func TestAuthHandler_Signup(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		signupFunc     func(ctx context.Context, username, email, password string) error
		expectedStatus int
	}{
		{
			name:           "success",
			body:           `{"username":"tester","email":"a@b.com","password":"secret123"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing email",
			body:           `{"username":"tester","password":"secret123"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "short password",
			body:           `{"username":"tester","email":"a@b.com","password":"abc"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate user",
			body: `{"username":"tester","email":"a@b.com","password":"secret123"}`,
			signupFunc: func(ctx context.Context, username, email, password string) error {
				return usecase.ErrUserAlreadyExists
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&mockAuthUsecase{SignupFunc: tt.signupFunc})
			w := performJSON(t, h.Signup, http.MethodPost, "/signup", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		loginFunc      func(ctx context.Context, email, password string, client usecase.ClientInfo) (string, error)
		expectedStatus int
		expectToken    bool
	}{
		{
			name:           "success returns token",
			body:           `{"email":"a@b.com","password":"secret123"}`,
			expectedStatus: http.StatusOK,
			expectToken:    true,
		},
		{
			name:           "malformed body",
			body:           `{"email":"not-an-email"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "bad credentials",
			body: `{"email":"a@b.com","password":"wrong"}`,
			loginFunc: func(ctx context.Context, email, password string, client usecase.ClientInfo) (string, error) {
				return "", usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&mockAuthUsecase{LoginFunc: tt.loginFunc})
			w := performJSON(t, h.Login, http.MethodPost, "/login", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectToken {
				assert.Contains(t, w.Body.String(), `"token":"test-token"`)
			}
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	var loggedOut uint
	h := NewAuthHandler(&mockAuthUsecase{
		LogoutFunc: func(ctx context.Context, userID uint) error {
			loggedOut = userID
			return nil
		},
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/logout", nil)
	c.Set("userID", uint(21))

	h.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(21), loggedOut)
}
