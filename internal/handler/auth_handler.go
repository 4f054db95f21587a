package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/scholaris/scholaris-backend/internal/middleware"
	"github.com/scholaris/scholaris-backend/internal/model"
	"github.com/scholaris/scholaris-backend/internal/repository"
	"github.com/scholaris/scholaris-backend/internal/response"
	"github.com/scholaris/scholaris-backend/internal/service"
	"github.com/scholaris/scholaris-backend/internal/validator"
)

// AuthHandler handles login, identity and session endpoints.
type AuthHandler struct {
	authService *service.AuthService
	users       *repository.UserRepository
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, users *repository.UserRepository) *AuthHandler {
	return &AuthHandler{authService: authService, users: users}
}

// Login godoc
// POST /api/v1/auth/login
// Authenticates a user and returns a JWT with their role and profile.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		case errors.Is(err, service.ErrSessionAlreadyActive):
			response.Fail(c, http.StatusConflict, response.ErrSessionActive)
		default:
			failFromError(c, err)
		}
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Me godoc
// GET /api/v1/auth/me
// Returns the authenticated account.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	user, err := h.users.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		failFromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// ChangePassword godoc
// POST /api/v1/auth/change-password
// Changes the authenticated user's password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req model.ChangePasswordRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	claims := middleware.GetClaims(c)
	err := h.authService.ChangePassword(c.Request.Context(), claims.UserID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "password changed successfully"})
}

// ResetStudentSession godoc
// POST /api/v1/admin/students/:id/reset-session
// Clears a student's single-device session so they can log in again.
// The :id here is the user account id.
func (h *AuthHandler) ResetStudentSession(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.authService.ResetStudentSession(c.Request.Context(), id); err != nil {
		failFromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "session reset successfully"})
}
