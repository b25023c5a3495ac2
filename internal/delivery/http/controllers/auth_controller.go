package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/delivery/http/helpers"
	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
	"github.com/dtaoOfficial/seminar-hall-backend/internal/services"
)

// AuthController handles login and password recovery.
type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// LoginRequest is the request body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (l LoginRequest) Validate() []string {
	var errs []string
	if l.Email == "" {
		errs = append(errs, "email is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginResponse is the response body for a successful login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login godoc
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} helpers.APIResponse "data contains token and user"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /api/auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, user, err := c.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid credentials")
			return
		}
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token, User: user})
}

// RefreshToken godoc
// @Summary Exchange a valid token for a fresh one
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains token and user"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /api/auth/refresh-token [post]
func (c *AuthController) RefreshToken(w http.ResponseWriter, r *http.Request) {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "missing bearer token")
		return
	}
	token, user, err := c.Service.RefreshToken(r.Context(), strings.TrimSpace(auth[len(prefix):]))
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "invalid token")
			return
		}
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token, User: user})
}

// EmailRequest is the request body for POST /api/auth/forgot-password.
type EmailRequest struct {
	Email string `json:"email"`
}

func (e EmailRequest) Validate() []string {
	if e.Email == "" {
		return []string{"email is required"}
	}
	return nil
}

// ForgotPassword godoc
// @Summary Request a password reset code
// @Description Sends a one-time code to the account's email. Responds 200 whether or not the account exists.
// @Tags auth
// @Accept json
// @Produce json
// @Param email body EmailRequest true "Account email"
// @Success 200 {object} helpers.APIResponse
// @Router /api/auth/forgot-password [post]
func (c *AuthController) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req EmailRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.RequestPasswordReset(r.Context(), req.Email); err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "sent"})
}

// VerifyOtpRequest is the request body for POST /api/auth/verify-otp.
type VerifyOtpRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (v VerifyOtpRequest) Validate() []string {
	var errs []string
	if v.Email == "" {
		errs = append(errs, "email is required")
	}
	if v.Code == "" {
		errs = append(errs, "code is required")
	}
	return errs
}

// VerifyOtp godoc
// @Summary Verify a password reset code
// @Description Checks the code without redeeming it. The code is redeemed by reset-password.
// @Tags auth
// @Accept json
// @Produce json
// @Param otp body VerifyOtpRequest true "Email and code"
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /api/auth/verify-otp [post]
func (c *AuthController) VerifyOtp(w http.ResponseWriter, r *http.Request) {
	var req VerifyOtpRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.VerifyOtp(r.Context(), req.Email, req.Code); err != nil {
		if errors.Is(err, services.ErrInvalidOtp) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, err.Error())
			return
		}
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "verified"})
}

// ResetPasswordRequest is the request body for POST /api/auth/reset-password.
type ResetPasswordRequest struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

func (rp ResetPasswordRequest) Validate() []string {
	var errs []string
	if rp.Email == "" {
		errs = append(errs, "email is required")
	}
	if rp.Code == "" {
		errs = append(errs, "code is required")
	}
	if rp.NewPassword == "" {
		errs = append(errs, "newPassword is required")
	}
	return errs
}

// ResetPassword godoc
// @Summary Reset a password with a code
// @Tags auth
// @Accept json
// @Produce json
// @Param reset body ResetPasswordRequest true "Email, code, and new password"
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /api/auth/reset-password [post]
func (c *AuthController) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.ResetPassword(r.Context(), req.Email, req.Code, req.NewPassword); err != nil {
		if errors.Is(err, services.ErrInvalidOtp) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, err.Error())
			return
		}
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "reset"})
}
