package controllers

import (
	"log/slog"
	"net/http"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/delivery/http/helpers"
	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

// HallController handles hall management endpoints.
type HallController struct {
	Logger  *slog.Logger
	Service domain.HallService
}

func NewHallController(logger *slog.Logger, svc domain.HallService) *HallController {
	return &HallController{
		Logger:  logger,
		Service: svc,
	}
}

// HallRequest is the request body for hall create and update.
type HallRequest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

func (h HallRequest) Validate() []string {
	var errs []string
	if h.Name == "" {
		errs = append(errs, "name is required")
	}
	if h.Capacity < 0 {
		errs = append(errs, "capacity must not be negative")
	}
	return errs
}

// Create godoc
// @Summary Add a hall (admin)
// @Tags halls
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param hall body HallRequest true "Hall"
// @Success 201 {object} helpers.APIResponse "data contains the created hall"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /api/halls [post]
func (c *HallController) Create(w http.ResponseWriter, r *http.Request) {
	var req HallRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	created, err := c.Service.Create(r.Context(), domain.NewHall(req.Name, req.Capacity))
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// List godoc
// @Summary List halls
// @Tags halls
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the halls"
// @Router /api/halls [get]
func (c *HallController) List(w http.ResponseWriter, r *http.Request) {
	halls, err := c.Service.ListAll(r.Context())
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, halls)
}

// Update godoc
// @Summary Update a hall (admin)
// @Tags halls
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hall ID"
// @Param hall body HallRequest true "Hall"
// @Success 200 {object} helpers.APIResponse "data contains the updated hall"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/halls/{id} [put]
func (c *HallController) Update(w http.ResponseWriter, r *http.Request) {
	var req HallRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	updated, err := c.Service.Update(r.Context(), r.PathValue("id"), &domain.Hall{Name: req.Name, Capacity: req.Capacity})
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// Delete godoc
// @Summary Remove a hall (admin)
// @Tags halls
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hall ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/halls/{id} [delete]
func (c *HallController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}
