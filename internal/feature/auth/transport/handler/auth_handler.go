// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Komy007/CoinNexus/internal/feature/auth/transport/http/dto"
	"github.com/Komy007/CoinNexus/internal/feature/auth/usecase"
	jwtmw "github.com/Komy007/CoinNexus/internal/platform/jwt"
	"github.com/Komy007/CoinNexus/internal/platform/logger"
)

// AuthUsecase defines the authentication operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	Signup(ctx context.Context, username, email, password string) error
	Login(ctx context.Context, email, password string, client usecase.ClientInfo) (string, error)
	Logout(ctx context.Context, userID uint) error
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup handles user registration.
// The actual failure reason stays in the logs so the endpoint cannot be
// used to enumerate registered emails.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("signup validation failed", zap.Error(err), zap.String("remote_addr", c.ClientIP()))
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "입력값이 올바르지 않습니다."})
		return
	}
	if err := h.auth.Signup(c.Request.Context(), req.Username, req.Email, req.Password); err != nil {
		logger.Log.Warn("signup failed", zap.Error(err), zap.String("email", req.Email))
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "회원가입에 실패했습니다."})
		return
	}
	logger.Log.Info("user signup successful", zap.String("email", req.Email))
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "회원가입이 완료되었습니다."})
}

// Login authenticates a user and returns a JWT on success.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "입력값이 올바르지 않습니다."})
		return
	}
	client := usecase.ClientInfo{
		UserAgent: c.Request.UserAgent(),
		IPAddress: c.ClientIP(),
	}
	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password, client)
	if err != nil {
		logger.Log.Warn("login failed", zap.Error(err), zap.String("email", req.Email), zap.String("remote_addr", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "이메일 또는 비밀번호가 올바르지 않습니다."})
		return
	}
	logger.Log.Info("user login successful", zap.String("email", req.Email))
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

// Logout removes the authenticated user's session records.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.GetUint(jwtmw.ContextUserID)
	if err := h.auth.Logout(c.Request.Context(), userID); err != nil {
		logger.Log.Error("logout failed", zap.Error(err), zap.Uint("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "로그아웃 처리 중 오류가 발생했습니다."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "로그아웃되었습니다."})
}
