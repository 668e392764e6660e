// Package http provides the HTTP handlers for the NextbiTe API:
// account signup and login, the password-reset lifecycle, order
// placement and history, and the food catalog.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nextbite/nextbite/internal/repository"
	"github.com/nextbite/nextbite/internal/service"
	"github.com/nextbite/nextbite/internal/validate"
)

// AuthService defines the interface for account and session operations
// required by the HTTP handlers.
type AuthService interface {
	// Signup creates an account and returns its identifier.
	Signup(ctx context.Context, name, email, address, password string) (string, error)
	// Login verifies credentials and returns a signed session token.
	Login(ctx context.Context, email, password string) (string, error)
	// ForgotPassword issues a reset token, or an empty token for an
	// unregistered email.
	ForgotPassword(ctx context.Context, email string) (string, error)
	// ResetPassword consumes a reset token and replaces the password.
	ResetPassword(ctx context.Context, token, password string) error
}

// AuthHandler handles HTTP requests for signup, login, and password reset.
type AuthHandler struct {
	// AuthService performs the underlying account operations.
	AuthService AuthService
	// FrontendURL is the origin used to build demo reset links.
	FrontendURL string
	// Production suppresses error details and demo reset tokens.
	Production bool
}

// CreateUser handles POST /api/createUser.
// It validates the signup payload field by field, creates the account,
// and responds 201. A taken email yields 400.
func (h *AuthHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Address  string `json:"address"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if errs := validate.Signup(req.Name, req.Email, req.Address, req.Password); len(errs) > 0 {
		writeValidationFailed(w, errs)
		return
	}

	_, err := h.AuthService.Signup(r.Context(), req.Name, validate.NormalizeEmail(req.Email), req.Address, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			writeMessage(w, http.StatusBadRequest, false, "Email already in use")
			return
		}
		writeServerError(w, h.Production, err)
		return
	}

	writeMessage(w, http.StatusCreated, true, "User created successfully")
}

// LoginUser handles POST /api/loginUser.
// On success it responds with a signed session token. Wrong email and
// wrong password are indistinguishable in the response.
func (h *AuthHandler) LoginUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if errs := validate.Login(req.Email, req.Password); len(errs) > 0 {
		writeValidationFailed(w, errs)
		return
	}

	token, err := h.AuthService.Login(r.Context(), validate.NormalizeEmail(req.Email), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeMessage(w, http.StatusUnauthorized, false, "Invalid email or password")
			return
		}
		writeServerError(w, h.Production, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Login successful",
		"authToken": token,
	})
}

// ForgotPassword handles POST /api/forgotPassword.
// The response is the same whether or not the email is registered, so
// the endpoint cannot be used to enumerate accounts. Outside production
// the freshly issued token and reset link are included for testing.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if errs := validate.ForgotPassword(req.Email); len(errs) > 0 {
		writeValidationFailed(w, errs)
		return
	}

	token, err := h.AuthService.ForgotPassword(r.Context(), validate.NormalizeEmail(req.Email))
	if err != nil {
		writeServerError(w, h.Production, err)
		return
	}

	body := map[string]any{
		"success": true,
		"message": "If this email exists in our system, a password reset link has been sent.",
	}
	if token != "" && !h.Production {
		body["resetToken"] = token
		body["resetUrl"] = h.FrontendURL + "/reset-password?token=" + token
	}
	writeJSON(w, http.StatusOK, body)
}

// ResetPassword handles POST /api/resetPassword.
// It consumes the reset token and replaces the account password.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if errs := validate.ResetPassword(req.Token, req.Password); len(errs) > 0 {
		writeValidationFailed(w, errs)
		return
	}

	if err := h.AuthService.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		if errors.Is(err, service.ErrInvalidResetToken) {
			writeMessage(w, http.StatusBadRequest, false, "Password reset token is invalid or has expired.")
			return
		}
		writeServerError(w, h.Production, err)
		return
	}

	writeMessage(w, http.StatusOK, true, "Password has been reset successfully. You can now login with your new password.")
}
