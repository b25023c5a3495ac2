package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/booking"
	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

// maxRangeDays caps day-wise bookings to one week per request.
const maxRangeDays = 7

type seminarService struct {
	seminarRepo    domain.SeminarRepository
	hallRepo       domain.HallRepository
	emailService   domain.EmailService
	logService     domain.LogService
	logger         *slog.Logger
	now            func() time.Time
	contextTimeout time.Duration
}

// NewSeminarService wires the booking workflow: payload validation, a fresh
// conflict check against the hall's records, persistence, and notifications.
func NewSeminarService(
	seminarRepo domain.SeminarRepository,
	hallRepo domain.HallRepository,
	emailService domain.EmailService,
	logService domain.LogService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.SeminarService {
	return &seminarService{
		seminarRepo:    seminarRepo,
		hallRepo:       hallRepo,
		emailService:   emailService,
		logService:     logService,
		logger:         logger,
		now:            time.Now,
		contextTimeout: timeout,
	}
}

func (s *seminarService) Create(ctx context.Context, sem *domain.Seminar, actor *domain.TokenClaims) (*domain.Seminar, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.validateShape(sem); err != nil {
		return nil, err
	}
	if _, err := s.hallRepo.GetByName(ctx, sem.HallName); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown hall %q", domain.ErrInvalidInput, sem.HallName)
		}
		return nil, fmt.Errorf("look up hall: %w", err)
	}
	if err := s.checkNotPast(sem); err != nil {
		return nil, err
	}
	if sem.IsDayRange() {
		dates, err := booking.DatesBetween(sem.StartDate, sem.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: dates must be in YYYY-MM-DD format", domain.ErrInvalidInput)
		}
		if len(dates) == 0 {
			return nil, fmt.Errorf("%w: end date must not be before start date", domain.ErrInvalidInput)
		}
		if len(dates) > maxRangeDays {
			return nil, fmt.Errorf("%w: bookings are limited to %d days per request", domain.ErrInvalidInput, maxRangeDays)
		}
	}

	// The occupancy snapshot is recomputed from storage on every create so a
	// stale client-side check cannot slip a conflict through.
	res, err := s.check(ctx, sem, "", actor)
	if err != nil {
		return nil, err
	}
	if !res.OK {
		return nil, fmt.Errorf("%w: %s", domain.ErrConflict, res.Message)
	}

	sem.AppliedAt = s.now()
	if actor.IsAdmin() {
		sem.Status = domain.StatusApproved
		sem.CreatedBy = domain.CreatedByAdmin
	} else {
		sem.Status = domain.StatusPending
		sem.CreatedBy = domain.CreatedByDepartment
	}
	if err := s.seminarRepo.Create(ctx, sem); err != nil {
		return nil, fmt.Errorf("create seminar: %w", err)
	}
	s.logService.Record(ctx, actorEmail(actor, sem.Email), "BOOKING_CREATED",
		fmt.Sprintf("%s / %s (%s)", sem.HallName, sem.SlotTitle, bookingWhen(sem)))
	return sem, nil
}

func (s *seminarService) GetByID(ctx context.Context, id string) (*domain.Seminar, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.seminarRepo.GetByID(ctx, id)
}

func (s *seminarService) Update(ctx context.Context, id string, patch *domain.Seminar, actor *domain.TokenClaims) (*domain.Seminar, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.seminarRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeOwner(existing, actor); err != nil {
		return nil, err
	}

	patch.ID = existing.ID
	patch.Status = existing.Status
	patch.AppliedAt = existing.AppliedAt
	patch.CreatedBy = existing.CreatedBy
	if err := s.validateShape(patch); err != nil {
		return nil, err
	}
	if err := s.checkNotPast(patch); err != nil {
		return nil, err
	}

	// Re-check availability excluding the seminar being moved.
	res, err := s.check(ctx, patch, existing.ID, actor)
	if err != nil {
		return nil, err
	}
	if !res.OK {
		return nil, fmt.Errorf("%w: %s", domain.ErrConflict, res.Message)
	}

	if err := s.seminarRepo.Update(ctx, patch); err != nil {
		return nil, fmt.Errorf("update seminar: %w", err)
	}
	s.logService.Record(ctx, actorEmail(actor, patch.Email), "BOOKING_UPDATED",
		fmt.Sprintf("%s / %s (%s)", patch.HallName, patch.SlotTitle, bookingWhen(patch)))
	return patch, nil
}

func (s *seminarService) Delete(ctx context.Context, id string, actor *domain.TokenClaims) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.seminarRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorizeOwner(existing, actor); err != nil {
		return err
	}
	if err := s.seminarRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete seminar: %w", err)
	}
	s.logService.Record(ctx, actorEmail(actor, existing.Email), "BOOKING_DELETED",
		fmt.Sprintf("%s / %s", existing.HallName, existing.SlotTitle))
	return nil
}

var allowedStatuses = map[string]bool{
	domain.StatusPending:         true,
	domain.StatusApproved:        true,
	domain.StatusRejected:        true,
	domain.StatusCancelled:       true,
	domain.StatusCancelRequested: true,
}

func (s *seminarService) UpdateStatus(ctx context.Context, id, status, remarks string, actor *domain.TokenClaims) (*domain.Seminar, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	status = strings.ToUpper(strings.TrimSpace(status))
	if !allowedStatuses[status] {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}

	sem, err := s.seminarRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Approving may introduce a clash with bookings approved since this one
	// was submitted, so the snapshot is checked again.
	if status == domain.StatusApproved && !strings.EqualFold(sem.Status, domain.StatusApproved) {
		res, err := s.check(ctx, sem, sem.ID, actor)
		if err != nil {
			return nil, err
		}
		if !res.OK {
			return nil, fmt.Errorf("%w: %s", domain.ErrConflict, res.Message)
		}
	}

	sem.Status = status
	if remarks != "" {
		sem.Remarks = remarks
	}
	if err := s.seminarRepo.Update(ctx, sem); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	s.logService.Record(ctx, actor.Email, "BOOKING_STATUS_CHANGED",
		fmt.Sprintf("%s -> %s (%s / %s)", id, status, sem.HallName, sem.SlotTitle))
	s.notifyStatus(ctx, sem)
	return sem, nil
}

func (s *seminarService) RequestCancel(ctx context.Context, id, reason, remarks string, actor *domain.TokenClaims) (*domain.Seminar, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sem, err := s.seminarRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeOwner(sem, actor); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, fmt.Errorf("%w: a cancellation reason is required", domain.ErrInvalidInput)
	}

	sem.Status = domain.StatusCancelRequested
	sem.CancellationReason = reason
	if remarks != "" {
		sem.Remarks = remarks
	}
	if err := s.seminarRepo.Update(ctx, sem); err != nil {
		return nil, fmt.Errorf("request cancel: %w", err)
	}
	s.logService.Record(ctx, actorEmail(actor, sem.Email), "BOOKING_CANCEL_REQUESTED",
		fmt.Sprintf("%s / %s: %s", sem.HallName, sem.SlotTitle, reason))
	return sem, nil
}

func (s *seminarService) ListAll(ctx context.Context) ([]*domain.Seminar, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.seminarRepo.ListAll(ctx)
}

func (s *seminarService) ListByDate(ctx context.Context, date string) ([]*domain.Seminar, error) {
	return s.ListForDay(ctx, date, "")
}

func (s *seminarService) ListByHallAndDate(ctx context.Context, hallName, date string) ([]*domain.Seminar, error) {
	return s.ListForDay(ctx, date, hallName)
}

// ListForDay returns the seminars whose normalized occupancy touches the
// given date, across every status shown on the calendar.
func (s *seminarService) ListForDay(ctx context.Context, date, hallName string) ([]*domain.Seminar, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := booking.ParseDate(date); err != nil {
		return nil, fmt.Errorf("%w: dates must be in YYYY-MM-DD format", domain.ErrInvalidInput)
	}

	all, err := s.seminarRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seminars: %w", err)
	}

	out := make([]*domain.Seminar, 0)
	for _, sem := range all {
		if hallName != "" && !strings.EqualFold(sem.HallName, hallName) {
			continue
		}
		if coversDate(sem, date) {
			out = append(out, sem)
		}
	}
	return out, nil
}

func (s *seminarService) History(ctx context.Context, department, email string, params domain.PaginationParams) ([]*domain.Seminar, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.seminarRepo.ListByDepartmentAndEmail(ctx, department, email, params)
}

func (s *seminarService) ListByStatus(ctx context.Context, status string) ([]*domain.Seminar, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	status = strings.ToUpper(strings.TrimSpace(status))
	if !allowedStatuses[status] {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}
	return s.seminarRepo.ListByStatus(ctx, status)
}

func (s *seminarService) MonthSummary(ctx context.Context, hallName string, year, month int) ([]domain.CalendarDaySummary, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be 1-12", domain.ErrInvalidInput)
	}
	occ, err := s.snapshot(ctx, hallName)
	if err != nil {
		return nil, err
	}
	return occ.MonthSummary(hallName, year, month), nil
}

func (s *seminarService) CheckAvailability(ctx context.Context, hallName, date, startTime, endTime string, actor *domain.TokenClaims) (*domain.AvailabilityResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	occ, err := s.snapshot(ctx, hallName)
	if err != nil {
		return nil, err
	}

	start, err := booking.ParseClock(startTime)
	if err != nil {
		return &domain.AvailabilityResult{OK: false, Message: "times must be in HH:MM format"}, nil
	}
	end, err := booking.ParseClock(endTime)
	if err != nil {
		return &domain.AvailabilityResult{OK: false, Message: "times must be in HH:MM format"}, nil
	}

	res := occ.CheckInterval(hallName, date, start, end)
	out := &domain.AvailabilityResult{OK: res.OK, Message: res.Message}
	if !res.OK && end > start {
		w := booking.WindowForRole(actorRole(actor))
		if altStart, found := occ.SuggestSlot(hallName, date, end-start, w); found {
			out.Suggestion = fmt.Sprintf("%s-%s", booking.FormatClock(altStart), booking.FormatClock(altStart+end-start))
		}
	}
	return out, nil
}

// snapshot loads the hall's records and normalizes them, logging any records
// that had to be widened to full-day blocks.
func (s *seminarService) snapshot(ctx context.Context, hallName string) (booking.Occupancy, error) {
	var records []*domain.Seminar
	var err error
	if hallName == "" {
		records, err = s.seminarRepo.ListAll(ctx)
	} else {
		records, err = s.seminarRepo.ListByHall(ctx, hallName)
	}
	if err != nil {
		return nil, fmt.Errorf("load booking snapshot: %w", err)
	}
	occ, diags := booking.Normalize(records)
	for _, d := range diags {
		s.logger.Warn("booking record treated as full-day block",
			"seminar_id", d.SeminarID, "date", d.Date, "reason", d.Reason)
	}
	return occ, nil
}

// check runs the availability engine for the seminar's temporal shape
// against a fresh snapshot, excluding excludeID from the occupancy.
func (s *seminarService) check(ctx context.Context, sem *domain.Seminar, excludeID string, actor *domain.TokenClaims) (booking.Result, error) {
	records, err := s.seminarRepo.ListByHall(ctx, sem.HallName)
	if err != nil {
		return booking.Result{}, fmt.Errorf("load booking snapshot: %w", err)
	}
	if excludeID != "" {
		kept := records[:0]
		for _, r := range records {
			if r.ID != excludeID {
				kept = append(kept, r)
			}
		}
		records = kept
	}
	occ, diags := booking.Normalize(records)
	for _, d := range diags {
		s.logger.Warn("booking record treated as full-day block",
			"seminar_id", d.SeminarID, "date", d.Date, "reason", d.Reason)
	}

	w := booking.WindowForRole(actorRole(actor))
	if sem.IsDayRange() {
		return occ.CheckRange(sem.HallName, sem.StartDate, sem.EndDate, sem.DaySlots, w), nil
	}
	start, err := booking.ParseClock(sem.StartTime)
	if err != nil {
		return booking.Result{}, fmt.Errorf("%w: times must be in HH:MM format", domain.ErrInvalidInput)
	}
	end, err := booking.ParseClock(sem.EndTime)
	if err != nil {
		return booking.Result{}, fmt.Errorf("%w: times must be in HH:MM format", domain.ErrInvalidInput)
	}
	return occ.CheckInterval(sem.HallName, sem.Date, start, end), nil
}

// validateShape enforces the required fields and that exactly one temporal
// shape is present.
func (s *seminarService) validateShape(sem *domain.Seminar) error {
	if sem == nil {
		return fmt.Errorf("%w: missing booking", domain.ErrInvalidInput)
	}
	sem.HallName = strings.TrimSpace(sem.HallName)
	sem.Email = strings.ToLower(strings.TrimSpace(sem.Email))
	switch {
	case sem.HallName == "":
		return fmt.Errorf("%w: hall name is required", domain.ErrInvalidInput)
	case sem.BookingName == "":
		return fmt.Errorf("%w: booking name is required", domain.ErrInvalidInput)
	case sem.Email == "":
		return fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	case sem.SlotTitle == "":
		return fmt.Errorf("%w: slot title is required", domain.ErrInvalidInput)
	}

	timed := sem.Date != ""
	ranged := sem.IsDayRange()
	if timed == ranged {
		return fmt.Errorf("%w: provide either date+times or startDate+endDate", domain.ErrInvalidInput)
	}
	if timed && (sem.StartTime == "" || sem.EndTime == "") {
		return fmt.Errorf("%w: start and end times are required for single-day bookings", domain.ErrInvalidInput)
	}
	return nil
}

// checkNotPast rejects bookings whose first day is before today.
func (s *seminarService) checkNotPast(sem *domain.Seminar) error {
	first := sem.Date
	if sem.IsDayRange() {
		first = sem.StartDate
	}
	day, err := booking.ParseDate(first)
	if err != nil {
		return fmt.Errorf("%w: dates must be in YYYY-MM-DD format", domain.ErrInvalidInput)
	}
	today, _ := booking.ParseDate(booking.FormatDate(s.now()))
	if day.Before(today) {
		return fmt.Errorf("%w: cannot book a past date", domain.ErrInvalidInput)
	}
	return nil
}

// authorizeOwner allows admins, and department users acting on their own
// department's bookings.
func (s *seminarService) authorizeOwner(sem *domain.Seminar, actor *domain.TokenClaims) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor == nil || !strings.EqualFold(actor.Department, sem.Department) {
		return domain.ErrForbidden
	}
	return nil
}

func (s *seminarService) notifyStatus(ctx context.Context, sem *domain.Seminar) {
	err := s.emailService.SendBookingStatus(ctx, &domain.BookingStatusEmailData{
		Email:     sem.Email,
		Name:      sem.BookingName,
		HallName:  sem.HallName,
		SlotTitle: sem.SlotTitle,
		When:      bookingWhen(sem),
		Status:    sem.Status,
		Remarks:   sem.Remarks,
	})
	if err != nil {
		// Status changes must not fail because email delivery did.
		s.logger.Error("failed to send booking status email", "seminar_id", sem.ID, "error", err)
	}
}

func coversDate(sem *domain.Seminar, date string) bool {
	if sem.IsDayRange() {
		dates, err := booking.DatesBetween(sem.StartDate, sem.EndDate)
		if err != nil {
			_, inSlots := sem.DaySlots[date]
			return inSlots
		}
		for _, d := range dates {
			if d == date {
				return true
			}
		}
		return false
	}
	return sem.Date == date
}

func bookingWhen(sem *domain.Seminar) string {
	if sem.IsDayRange() {
		return fmt.Sprintf("%s to %s", sem.StartDate, sem.EndDate)
	}
	return fmt.Sprintf("%s %s-%s", sem.Date, sem.StartTime, sem.EndTime)
}

func actorEmail(actor *domain.TokenClaims, fallback string) string {
	if actor != nil && actor.Email != "" {
		return actor.Email
	}
	return fallback
}

func actorRole(actor *domain.TokenClaims) string {
	if actor == nil {
		return domain.RoleDepartment
	}
	return actor.Role
}
