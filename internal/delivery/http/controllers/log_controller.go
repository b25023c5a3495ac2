package controllers

import (
	"log/slog"
	"net/http"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/delivery/http/helpers"
	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

// LogController exposes the audit trail to admins.
type LogController struct {
	Logger  *slog.Logger
	Service domain.LogService
}

func NewLogController(logger *slog.Logger, svc domain.LogService) *LogController {
	return &LogController{
		Logger:  logger,
		Service: svc,
	}
}

// LogsResponse is the response body for the audit log endpoints.
type LogsResponse struct {
	Entries    []*domain.LogEntry     `json:"entries"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// List godoc
// @Summary List audit entries (admin)
// @Tags logs
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains entries and pagination"
// @Router /api/logs [get]
func (c *LogController) List(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	entries, total, err := c.Service.ListAll(r.Context(), params)
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, LogsResponse{
		Entries:    entries,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// ListByEmail godoc
// @Summary List audit entries for one account (admin)
// @Tags logs
// @Produce json
// @Security BearerAuth
// @Param email path string true "Account email"
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains entries and pagination"
// @Router /api/logs/{email} [get]
func (c *LogController) ListByEmail(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	entries, total, err := c.Service.ListByEmail(r.Context(), r.PathValue("email"), params)
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, LogsResponse{
		Entries:    entries,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}
