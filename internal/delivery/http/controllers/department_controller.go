package controllers

import (
	"log/slog"
	"net/http"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/delivery/http/helpers"
	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

// DepartmentController handles department management endpoints.
type DepartmentController struct {
	Logger  *slog.Logger
	Service domain.DepartmentService
}

func NewDepartmentController(logger *slog.Logger, svc domain.DepartmentService) *DepartmentController {
	return &DepartmentController{
		Logger:  logger,
		Service: svc,
	}
}

// DepartmentRequest is the request body for department create and update.
type DepartmentRequest struct {
	Name string `json:"name"`
}

func (d DepartmentRequest) Validate() []string {
	if d.Name == "" {
		return []string{"name is required"}
	}
	return nil
}

// Create godoc
// @Summary Add a department (admin)
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param department body DepartmentRequest true "Department"
// @Success 201 {object} helpers.APIResponse "data contains the created department"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /api/departments [post]
func (c *DepartmentController) Create(w http.ResponseWriter, r *http.Request) {
	var req DepartmentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	created, err := c.Service.Create(r.Context(), &domain.Department{Name: req.Name})
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// List godoc
// @Summary List departments
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the departments"
// @Router /api/departments [get]
func (c *DepartmentController) List(w http.ResponseWriter, r *http.Request) {
	departments, err := c.Service.ListAll(r.Context())
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, departments)
}

// Update godoc
// @Summary Rename a department (admin)
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Param department body DepartmentRequest true "Department"
// @Success 200 {object} helpers.APIResponse "data contains the updated department"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/departments/{id} [put]
func (c *DepartmentController) Update(w http.ResponseWriter, r *http.Request) {
	var req DepartmentRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	updated, err := c.Service.Update(r.Context(), r.PathValue("id"), &domain.Department{Name: req.Name})
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// Delete godoc
// @Summary Remove a department (admin)
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/departments/{id} [delete]
func (c *DepartmentController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}
