package domain

import (
	"context"
	"time"
)

// Seminar statuses. Only approved seminars occupy hall time for
// availability purposes.
const (
	StatusPending         = "PENDING"
	StatusApproved        = "APPROVED"
	StatusRejected        = "REJECTED"
	StatusCancelled       = "CANCELLED"
	StatusCancelRequested = "CANCEL_REQUESTED"
)

// Creator tags recorded on a seminar.
const (
	CreatedByAdmin      = "ADMIN"
	CreatedByDepartment = "DEPARTMENT"
)

// DaySlot is a per-date time override inside a day-range booking.
// A nil DaySlot for a date in the range means the whole day is booked.
type DaySlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Seminar is a booking record for a hall. It carries exactly one temporal
// shape: either Date+StartTime+EndTime (time-wise, single day), or
// StartDate+EndDate with an optional DaySlots map (day-wise, multi day).
// swagger:model Seminar
type Seminar struct {
	ID          string `json:"id"`
	HallName    string `json:"hallName"`
	BookingName string `json:"bookingName"`
	Email       string `json:"email"`
	Department  string `json:"department"`
	Phone       string `json:"phone"`
	SlotTitle   string `json:"slotTitle"`
	Remarks     string `json:"remarks"`
	Status      string `json:"status"`

	// Time-wise shape (single day).
	Date      string `json:"date,omitempty"`      // YYYY-MM-DD
	StartTime string `json:"startTime,omitempty"` // HH:MM, 24h
	EndTime   string `json:"endTime,omitempty"`   // HH:MM, 24h

	// Day-wise shape (inclusive range). Dates in the range that are absent
	// from DaySlots, or mapped to nil, are full-day bookings.
	StartDate string              `json:"startDate,omitempty"` // YYYY-MM-DD
	EndDate   string              `json:"endDate,omitempty"`   // YYYY-MM-DD
	DaySlots  map[string]*DaySlot `json:"daySlots,omitempty"`

	AppliedAt          time.Time `json:"appliedAt"`
	CreatedBy          string    `json:"createdBy,omitempty"`
	CancellationReason string    `json:"cancellationReason,omitempty"`
}

// IsDayRange reports whether the seminar uses the day-wise shape.
func (s *Seminar) IsDayRange() bool {
	return s.StartDate != "" && s.EndDate != ""
}

// CalendarDaySummary is the per-day projection used by month calendars.
// swagger:model CalendarDaySummary
type CalendarDaySummary struct {
	Date         string `json:"date"` // YYYY-MM-DD
	Status       string `json:"status"`
	BookingCount int    `json:"bookingCount"`
	Free         bool   `json:"free"`
}

// AvailabilityResult is the outcome of an availability check, including an
// alternative slot suggestion when one exists.
// swagger:model AvailabilityResult
type AvailabilityResult struct {
	OK         bool   `json:"ok"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// SeminarRepository defines the interface for seminar storage
type SeminarRepository interface {
	Create(ctx context.Context, s *Seminar) error
	GetByID(ctx context.Context, id string) (*Seminar, error)
	Update(ctx context.Context, s *Seminar) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]*Seminar, error)
	// ListByHall returns every seminar for the hall regardless of temporal
	// shape; it is the snapshot the availability engine normalizes.
	ListByHall(ctx context.Context, hallName string) ([]*Seminar, error)
	ListByDepartmentAndEmail(ctx context.Context, department, email string, params PaginationParams) ([]*Seminar, int, error)
	ListByStatus(ctx context.Context, status string) ([]*Seminar, error)
}

// SeminarService defines the business logic for seminar bookings
type SeminarService interface {
	Create(ctx context.Context, s *Seminar, actor *TokenClaims) (*Seminar, error)
	GetByID(ctx context.Context, id string) (*Seminar, error)
	Update(ctx context.Context, id string, patch *Seminar, actor *TokenClaims) (*Seminar, error)
	Delete(ctx context.Context, id string, actor *TokenClaims) error
	UpdateStatus(ctx context.Context, id, status, remarks string, actor *TokenClaims) (*Seminar, error)
	RequestCancel(ctx context.Context, id, reason, remarks string, actor *TokenClaims) (*Seminar, error)
	ListAll(ctx context.Context) ([]*Seminar, error)
	ListByDate(ctx context.Context, date string) ([]*Seminar, error)
	ListByHallAndDate(ctx context.Context, hallName, date string) ([]*Seminar, error)
	ListForDay(ctx context.Context, date, hallName string) ([]*Seminar, error)
	History(ctx context.Context, department, email string, params PaginationParams) ([]*Seminar, int, error)
	ListByStatus(ctx context.Context, status string) ([]*Seminar, error)
	MonthSummary(ctx context.Context, hallName string, year, month int) ([]CalendarDaySummary, error)
	CheckAvailability(ctx context.Context, hallName, date, startTime, endTime string, actor *TokenClaims) (*AvailabilityResult, error)
}
