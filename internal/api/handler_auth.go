package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"todoapp/internal/service/auth"
)

type AuthHandler struct {
	authService *auth.Service
	logger      *zap.Logger
}

func NewAuthHandler(authService *auth.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	token, u, err := h.authService.Signup(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, auth.ErrMissingField):
		c.JSON(http.StatusBadRequest, gin.H{"message": "please provide email and password"})
		return
	case errors.Is(err, auth.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"message": "user already exists"})
		return
	case err != nil:
		h.logger.Error("Signup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"token":   token,
		"user":    u.Public(),
	})
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	token, u, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, auth.ErrMissingField):
		c.JSON(http.StatusBadRequest, gin.H{"message": "please provide email and password"})
		return
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
		return
	case err != nil:
		h.logger.Error("Login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    u.Public(),
	})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	u, err := h.authService.Me(c.Request.Context(), userID)
	switch {
	case errors.Is(err, auth.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
		return
	case err != nil:
		h.logger.Error("Me lookup failed", zap.Error(err), zap.Int("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    u.Public(),
	})
}

// UpdateTheme handles PUT /auth/theme
func (h *AuthHandler) UpdateTheme(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		ThemeMode string `json:"theme_mode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request"})
		return
	}

	u, err := h.authService.UpdateTheme(c.Request.Context(), userID, req.ThemeMode)
	switch {
	case errors.Is(err, auth.ErrBadTheme):
		c.JSON(http.StatusBadRequest, gin.H{"message": "theme_mode must be light or dark"})
		return
	case errors.Is(err, auth.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "user not found"})
		return
	case err != nil:
		h.logger.Error("Theme update failed", zap.Error(err), zap.Int("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    u.Public(),
	})
}
