package handlers

import (
	"net/http"

	"github.com/culinaryos/kitchen/internal/infrastructure/http/middleware"
	"github.com/culinaryos/kitchen/internal/ports/inbound"
	"github.com/culinaryos/kitchen/pkg/errors"
	"go.uber.org/zap"
)

// AuthAPIHandlers handles authentication and profile requests
type AuthAPIHandlers struct {
	userService inbound.UserService
	logger      *zap.Logger
}

// NewAuthAPIHandlers creates a new authentication API handlers instance
func NewAuthAPIHandlers(userService inbound.UserService, logger *zap.Logger) *AuthAPIHandlers {
	return &AuthAPIHandlers{
		userService: userService,
		logger:      logger.Named("auth-api"),
	}
}

// RegisterRequest represents user registration request
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents user login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordRequest represents a password change
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// UpdateProfileRequest is a partial profile update
type UpdateProfileRequest struct {
	Name               *string   `json:"name" validate:"omitempty,max=100"`
	Email              *string   `json:"email" validate:"omitempty,email"`
	ProfilePicture     *string   `json:"profilePicture"`
	DietaryPreferences *[]string `json:"dietaryPreferences"`
}

// Register handles POST /api/auth/register
func (h *AuthAPIHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	result, err := h.userService.Register(r.Context(), inbound.RegisterCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// Login handles POST /api/auth/login
func (h *AuthAPIHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	result, err := h.userService.Login(r.Context(), inbound.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Logout handles POST /api/auth/logout
func (h *AuthAPIHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.TokenFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewUnauthorizedError("Authentication required"))
		return
	}

	if err := h.userService.Logout(r.Context(), token); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out"})
}

// Me handles GET /api/auth/me
func (h *AuthAPIHandlers) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// ChangePassword handles PUT /api/auth/password
func (h *AuthAPIHandlers) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.userService.ChangePassword(r.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Password updated successfully"})
}

// UpdateProfile handles PUT /api/auth/profile
func (h *AuthAPIHandlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	profile, err := h.userService.UpdateProfile(r.Context(), userID, inbound.UpdateProfileCommand{
		Name:               req.Name,
		Email:              req.Email,
		ProfilePicture:     req.ProfilePicture,
		DietaryPreferences: req.DietaryPreferences,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
