package controllers

import (
	"log/slog"
	"net/http"
	"regexp"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/delivery/http/helpers"
	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// UserController handles account management endpoints.
type UserController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

func NewUserController(logger *slog.Logger, svc domain.UserService) *UserController {
	return &UserController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateUserRequest is the request body for POST /api/users.
type CreateUserRequest struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	Password   string `json:"password"`
}

func (u CreateUserRequest) Validate() []string {
	var errs []string
	if u.Email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegex.MatchString(u.Email) {
		errs = append(errs, "email format is invalid")
	}
	if u.Name == "" {
		errs = append(errs, "name is required")
	}
	if u.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// Create godoc
// @Summary Create an account (admin)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body CreateUserRequest true "Account"
// @Success 201 {object} helpers.APIResponse "data contains the created user"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /api/users [post]
func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user := &domain.User{
		Email:      req.Email,
		Name:       req.Name,
		Department: req.Department,
		Phone:      req.Phone,
		Role:       req.Role,
	}
	created, err := c.Service.Create(r.Context(), user, req.Password)
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// List godoc
// @Summary List accounts (admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the users"
// @Router /api/users [get]
func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	users, err := c.Service.ListAll(r.Context())
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, users)
}

// UpdateUserRequest is the request body for PUT /api/users/{id}. Empty fields
// are left unchanged.
type UpdateUserRequest struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
}

// Update godoc
// @Summary Update an account (admin)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param user body UpdateUserRequest true "Fields to change"
// @Success 200 {object} helpers.APIResponse "data contains the updated user"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/users/{id} [put]
func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateUserRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	patch := &domain.User{
		Name:       req.Name,
		Department: req.Department,
		Phone:      req.Phone,
		Role:       req.Role,
	}
	updated, err := c.Service.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// Delete godoc
// @Summary Remove an account (admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/users/{id} [delete]
func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}
