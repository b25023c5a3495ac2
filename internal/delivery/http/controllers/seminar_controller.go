package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/delivery/http/helpers"
	"github.com/dtaoOfficial/seminar-hall-backend/internal/delivery/http/middleware"
	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

// SeminarController handles the booking endpoints.
type SeminarController struct {
	Logger  *slog.Logger
	Service domain.SeminarService
}

func NewSeminarController(logger *slog.Logger, svc domain.SeminarService) *SeminarController {
	return &SeminarController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateSeminarRequest is the request body for POST /api/seminars.
// Exactly one temporal shape must be provided: date+startTime+endTime, or
// startDate+endDate with optional daySlots.
type CreateSeminarRequest struct {
	HallName    string                     `json:"hallName"`
	BookingName string                     `json:"bookingName"`
	Email       string                     `json:"email"`
	Department  string                     `json:"department"`
	Phone       string                     `json:"phone"`
	SlotTitle   string                     `json:"slotTitle"`
	Remarks     string                     `json:"remarks"`
	Date        string                     `json:"date"`
	StartTime   string                     `json:"startTime"`
	EndTime     string                     `json:"endTime"`
	StartDate   string                     `json:"startDate"`
	EndDate     string                     `json:"endDate"`
	DaySlots    map[string]*domain.DaySlot `json:"daySlots"`
}

// Validate implements Validator. Shape rules beyond presence are enforced by
// the service.
func (c CreateSeminarRequest) Validate() []string {
	var errs []string
	if c.HallName == "" {
		errs = append(errs, "hallName is required")
	}
	if c.BookingName == "" {
		errs = append(errs, "bookingName is required")
	}
	if c.Email == "" {
		errs = append(errs, "email is required")
	}
	if c.SlotTitle == "" {
		errs = append(errs, "slotTitle is required")
	}
	return errs
}

func (c CreateSeminarRequest) toDomain() *domain.Seminar {
	return &domain.Seminar{
		HallName:    c.HallName,
		BookingName: c.BookingName,
		Email:       c.Email,
		Department:  c.Department,
		Phone:       c.Phone,
		SlotTitle:   c.SlotTitle,
		Remarks:     c.Remarks,
		Date:        c.Date,
		StartTime:   c.StartTime,
		EndTime:     c.EndTime,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		DaySlots:    c.DaySlots,
	}
}

// CreateSeminarSuccessResponse is the success envelope for POST /api/seminars (201).
type CreateSeminarSuccessResponse struct {
	Data  *domain.Seminar   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// Create godoc
// @Summary Book a seminar hall
// @Description Submit a booking request. Admin bookings are approved immediately; department bookings start as PENDING. The request is rejected with 409 when the slot conflicts with an approved booking.
// @Tags seminars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param seminar body CreateSeminarRequest true "Booking request"
// @Success 201 {object} controllers.CreateSeminarSuccessResponse "data contains the created booking"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/seminars [post]
func (c *SeminarController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSeminarRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	created, err := c.Service.Create(r.Context(), req.toDomain(), claims)
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// List godoc
// @Summary List all bookings
// @Tags seminars
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the bookings"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /api/seminars [get]
func (c *SeminarController) List(w http.ResponseWriter, r *http.Request) {
	seminars, err := c.Service.ListAll(r.Context())
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, seminars)
}

// GetByID godoc
// @Summary Get one booking
// @Tags seminars
// @Produce json
// @Security BearerAuth
// @Param id path string true "Seminar ID"
// @Success 200 {object} helpers.APIResponse "data contains the booking"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/seminars/{id} [get]
func (c *SeminarController) GetByID(w http.ResponseWriter, r *http.Request) {
	seminar, err := c.Service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, seminar)
}

// Update godoc
// @Summary Update a booking
// @Description Replace the booking's details. Availability is re-checked, ignoring the booking's own current slot.
// @Tags seminars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Seminar ID"
// @Param seminar body CreateSeminarRequest true "Updated booking"
// @Success 200 {object} controllers.CreateSeminarSuccessResponse "data contains the updated booking"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /api/seminars/{id} [put]
func (c *SeminarController) Update(w http.ResponseWriter, r *http.Request) {
	var req CreateSeminarRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	updated, err := c.Service.Update(r.Context(), r.PathValue("id"), req.toDomain(), claims)
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a booking
// @Tags seminars
// @Produce json
// @Security BearerAuth
// @Param id path string true "Seminar ID"
// @Success 200 {object} helpers.APIResponse
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /api/seminars/{id} [delete]
func (c *SeminarController) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Service.Delete(r.Context(), r.PathValue("id"), claims); err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// UpdateStatusRequest is the request body for PATCH /api/seminars/{id}/status.
type UpdateStatusRequest struct {
	Status  string `json:"status"`
	Remarks string `json:"remarks"`
}

func (u UpdateStatusRequest) Validate() []string {
	if u.Status == "" {
		return []string{"status is required"}
	}
	return nil
}

// UpdateStatus godoc
// @Summary Change a booking's status (admin)
// @Description Approve, reject, or cancel a booking. Approving re-checks availability; the booker is notified by email.
// @Tags seminars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Seminar ID"
// @Param status body UpdateStatusRequest true "New status"
// @Success 200 {object} controllers.CreateSeminarSuccessResponse "data contains the updated booking"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Router /api/seminars/{id}/status [patch]
func (c *SeminarController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateStatusRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	updated, err := c.Service.UpdateStatus(r.Context(), r.PathValue("id"), req.Status, req.Remarks, claims)
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// CancelRequest is the request body for POST /api/seminars/{id}/cancel-request.
type CancelRequest struct {
	Reason  string `json:"reason"`
	Remarks string `json:"remarks"`
}

func (c CancelRequest) Validate() []string {
	if c.Reason == "" {
		return []string{"reason is required"}
	}
	return nil
}

// RequestCancel godoc
// @Summary Request cancellation of a booking
// @Tags seminars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Seminar ID"
// @Param cancel body CancelRequest true "Cancellation reason"
// @Success 200 {object} controllers.CreateSeminarSuccessResponse "data contains the updated booking"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Router /api/seminars/{id}/cancel-request [post]
func (c *SeminarController) RequestCancel(w http.ResponseWriter, r *http.Request) {
	var req CancelRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return
	}
	updated, err := c.Service.RequestCancel(r.Context(), r.PathValue("id"), req.Reason, req.Remarks, claims)
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// ListForDay godoc
// @Summary List bookings touching a date
// @Description Returns every booking whose date or date range covers the given day, optionally filtered to one hall.
// @Tags seminars
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param hall query string false "Hall name"
// @Success 200 {object} helpers.APIResponse "data contains the bookings"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /api/seminars/by-date [get]
func (c *SeminarController) ListForDay(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	hall := r.URL.Query().Get("hall")
	seminars, err := c.Service.ListForDay(r.Context(), date, hall)
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, seminars)
}

// ListByDate godoc
// @Summary List single-day bookings on a date
// @Tags seminars
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} helpers.APIResponse "data contains the bookings"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /api/seminars/date/{date} [get]
func (c *SeminarController) ListByDate(w http.ResponseWriter, r *http.Request) {
	seminars, err := c.Service.ListByDate(r.Context(), r.PathValue("date"))
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, seminars)
}

// ListByHallAndDate godoc
// @Summary List single-day bookings for a hall on a date
// @Tags seminars
// @Produce json
// @Security BearerAuth
// @Param hall path string true "Hall name"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} helpers.APIResponse "data contains the bookings"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /api/seminars/hall/{hall}/date/{date} [get]
func (c *SeminarController) ListByHallAndDate(w http.ResponseWriter, r *http.Request) {
	seminars, err := c.Service.ListByHallAndDate(r.Context(), r.PathValue("hall"), r.PathValue("date"))
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, seminars)
}

// HistoryResponse is the response body for GET /api/seminars/history.
type HistoryResponse struct {
	Seminars   []*domain.Seminar      `json:"seminars"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// History godoc
// @Summary Booking history for a department account
// @Tags seminars
// @Produce json
// @Security BearerAuth
// @Param department query string true "Department name"
// @Param email query string true "Account email"
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains seminars and pagination"
// @Router /api/seminars/history [get]
func (c *SeminarController) History(w http.ResponseWriter, r *http.Request) {
	department := r.URL.Query().Get("department")
	email := r.URL.Query().Get("email")
	if department == "" || email == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "department and email are required")
		return
	}
	params := helpers.ParsePagination(r)
	seminars, total, err := c.Service.History(r.Context(), department, email, params)
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, HistoryResponse{
		Seminars:   seminars,
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// ListByStatus godoc
// @Summary List bookings by status
// @Tags seminars
// @Produce json
// @Security BearerAuth
// @Param status path string true "Status (PENDING, APPROVED, REJECTED, CANCELLED, CANCEL_REQUESTED)"
// @Success 200 {object} helpers.APIResponse "data contains the bookings"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /api/seminars/status/{status} [get]
func (c *SeminarController) ListByStatus(w http.ResponseWriter, r *http.Request) {
	seminars, err := c.Service.ListByStatus(r.Context(), r.PathValue("status"))
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, seminars)
}

// Calendar godoc
// @Summary Month calendar for a hall
// @Description Returns one entry per day of the month with status free, partial, or full.
// @Tags seminars
// @Produce json
// @Security BearerAuth
// @Param hall query string false "Hall name (all halls when omitted)"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} helpers.APIResponse "data contains the day summaries"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /api/seminars/calendar [get]
func (c *SeminarController) Calendar(w http.ResponseWriter, r *http.Request) {
	year, month, ok := parseYearMonth(r)
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "year and month query parameters are required")
		return
	}
	summary, err := c.Service.MonthSummary(r.Context(), r.URL.Query().Get("hall"), year, month)
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, summary)
}

func parseYearMonth(r *http.Request) (year, month int, ok bool) {
	now := time.Now()
	year, month = now.Year(), int(now.Month())
	if s := r.URL.Query().Get("year"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, false
		}
		year = v
	}
	if s := r.URL.Query().Get("month"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, false
		}
		month = v
	}
	return year, month, true
}

// CheckAvailability godoc
// @Summary Check a time slot before booking
// @Description Reports whether the interval is free and, when it is not, suggests the nearest free slot of the same length inside the caller's daily window.
// @Tags seminars
// @Produce json
// @Security BearerAuth
// @Param hall query string true "Hall name"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param startTime query string true "Start time (HH:MM)"
// @Param endTime query string true "End time (HH:MM)"
// @Success 200 {object} helpers.APIResponse "data contains the availability result"
// @Router /api/seminars/availability [get]
func (c *SeminarController) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromContext(r.Context())
	q := r.URL.Query()
	result, err := c.Service.CheckAvailability(r.Context(), q.Get("hall"), q.Get("date"), q.Get("startTime"), q.Get("endTime"), claims)
	if err != nil {
		writeServiceError(r.Context(), c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, result)
}
