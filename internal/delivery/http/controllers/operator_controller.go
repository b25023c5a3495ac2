package controllers

import (
	"log/slog"
	"net/http"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/delivery/http/helpers"
	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

// OperatorController handles hall operator management endpoints.
type OperatorController struct {
	Logger  *slog.Logger
	Service domain.HallOperatorService
}

func NewOperatorController(logger *slog.Logger, svc domain.HallOperatorService) *OperatorController {
	return &OperatorController{
		Logger:  logger,
		Service: svc,
	}
}

// OperatorRequest is the request body for operator create and update.
type OperatorRequest struct {
	HallNames []string `json:"hallNames"`
	HeadName  string   `json:"headName"`
	HeadEmail string   `json:"headEmail"`
	Phone     string   `json:"phone"`
}

func (o OperatorRequest) Validate() []string {
	// Field-level rules (email domain, phone format, hall existence) live in
	// the service; only the create-shape requirements are checked here.
	return nil
}

func (o OperatorRequest) toDomain() *domain.HallOperator {
	return &domain.HallOperator{
		HallNames: o.HallNames,
		HeadName:  o.HeadName,
		HeadEmail: o.HeadEmail,
		Phone:     o.Phone,
	}
}

// Create godoc
// @Summary Register a hall operator (admin)
// @Tags operators
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param operator body OperatorRequest true "Operator"
// @Success 201 {object} helpers.APIResponse "data contains the created operator"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /api/hall-operators [post]
func (c *OperatorController) Create(w http.ResponseWriter, r *http.Request) {
	var req OperatorRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	created, err := c.Service.Create(r.Context(), req.toDomain())
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// List godoc
// @Summary List hall operators
// @Tags operators
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the operators"
// @Router /api/hall-operators [get]
func (c *OperatorController) List(w http.ResponseWriter, r *http.Request) {
	ops, err := c.Service.ListAll(r.Context())
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ops)
}

// Get godoc
// @Summary Get a hall operator
// @Tags operators
// @Produce json
// @Security BearerAuth
// @Param id path string true "Operator ID"
// @Success 200 {object} helpers.APIResponse "data contains the operator"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/hall-operators/{id} [get]
func (c *OperatorController) Get(w http.ResponseWriter, r *http.Request) {
	op, err := c.Service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, op)
}

// ListByHall godoc
// @Summary List the operators responsible for a hall
// @Tags operators
// @Produce json
// @Security BearerAuth
// @Param hallName query string true "Hall name"
// @Success 200 {object} helpers.APIResponse "data contains the operators"
// @Router /api/hall-operators/by-hall [get]
func (c *OperatorController) ListByHall(w http.ResponseWriter, r *http.Request) {
	hallName := r.URL.Query().Get("hallName")
	if hallName == "" {
		hallName = r.URL.Query().Get("hall")
	}
	ops, err := c.Service.ListByHallName(r.Context(), hallName)
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ops)
}

// CheckEmail godoc
// @Summary Check whether an operator email is taken
// @Tags operators
// @Produce json
// @Security BearerAuth
// @Param email query string true "Email"
// @Success 200 {object} helpers.APIResponse "data contains {exists}"
// @Router /api/hall-operators/check-email [get]
func (c *OperatorController) CheckEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "email is required")
		return
	}
	exists, err := c.Service.EmailExists(r.Context(), email)
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"exists": exists})
}

// Update godoc
// @Summary Update a hall operator (admin)
// @Tags operators
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Operator ID"
// @Param operator body OperatorRequest true "Fields to change"
// @Success 200 {object} helpers.APIResponse "data contains the updated operator"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/hall-operators/{id} [put]
func (c *OperatorController) Update(w http.ResponseWriter, r *http.Request) {
	var req OperatorRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	updated, err := c.Service.Update(r.Context(), r.PathValue("id"), req.toDomain())
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// Delete godoc
// @Summary Remove a hall operator (admin)
// @Tags operators
// @Produce json
// @Security BearerAuth
// @Param id path string true "Operator ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/hall-operators/{id} [delete]
func (c *OperatorController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}
