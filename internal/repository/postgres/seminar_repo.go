package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

type seminarRepository struct {
	DB *sql.DB
}

// NewSeminarRepository returns a domain.SeminarRepository implemented with Postgres.
func NewSeminarRepository(db *sql.DB) domain.SeminarRepository {
	return &seminarRepository{DB: db}
}

const seminarColumns = `
	id, hall_name, booking_name, email, department, phone, slot_title, remarks,
	status, date, start_time, end_time, start_date, end_date, day_slots,
	applied_at, created_by, cancellation_reason
`

func (r *seminarRepository) Create(ctx context.Context, s *domain.Seminar) error {
	daySlots, err := encodeDaySlots(s.DaySlots)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO seminars (
			hall_name, booking_name, email, department, phone, slot_title, remarks,
			status, date, start_time, end_time, start_date, end_date, day_slots,
			applied_at, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		s.HallName, s.BookingName, s.Email, s.Department, s.Phone, s.SlotTitle, s.Remarks,
		s.Status, nullString(s.Date), nullString(s.StartTime), nullString(s.EndTime),
		nullString(s.StartDate), nullString(s.EndDate), daySlots,
		s.AppliedAt, s.CreatedBy,
	).Scan(&s.ID)
}

func (r *seminarRepository) GetByID(ctx context.Context, id string) (*domain.Seminar, error) {
	query := fmt.Sprintf(`SELECT %s FROM seminars WHERE id = $1`, seminarColumns)
	s, err := scanSeminar(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *seminarRepository) Update(ctx context.Context, s *domain.Seminar) error {
	daySlots, err := encodeDaySlots(s.DaySlots)
	if err != nil {
		return err
	}
	query := `
		UPDATE seminars
		SET hall_name = $1, booking_name = $2, email = $3, department = $4,
			phone = $5, slot_title = $6, remarks = $7, status = $8,
			date = $9, start_time = $10, end_time = $11,
			start_date = $12, end_date = $13, day_slots = $14,
			created_by = $15, cancellation_reason = $16
		WHERE id = $17
	`
	res, err := r.DB.ExecContext(ctx, query,
		s.HallName, s.BookingName, s.Email, s.Department, s.Phone, s.SlotTitle, s.Remarks,
		s.Status, nullString(s.Date), nullString(s.StartTime), nullString(s.EndTime),
		nullString(s.StartDate), nullString(s.EndDate), daySlots,
		s.CreatedBy, nullString(s.CancellationReason), s.ID,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *seminarRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM seminars WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *seminarRepository) ListAll(ctx context.Context) ([]*domain.Seminar, error) {
	query := fmt.Sprintf(`SELECT %s FROM seminars ORDER BY applied_at DESC`, seminarColumns)
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSeminars(rows)
}

func (r *seminarRepository) ListByHall(ctx context.Context, hallName string) ([]*domain.Seminar, error) {
	name := strings.TrimSpace(hallName)
	query := fmt.Sprintf(`
		SELECT %s FROM seminars
		WHERE LOWER(hall_name) = LOWER($1)
		ORDER BY applied_at DESC
	`, seminarColumns)
	rows, err := r.DB.QueryContext(ctx, query, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSeminars(rows)
}

func (r *seminarRepository) ListByDepartmentAndEmail(ctx context.Context, department, email string, params domain.PaginationParams) ([]*domain.Seminar, int, error) {
	var total int
	countQuery := `
		SELECT COUNT(*) FROM seminars
		WHERE LOWER(department) = LOWER($1) AND LOWER(email) = LOWER($2)
	`
	if err := r.DB.QueryRowContext(ctx, countQuery, department, email).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := fmt.Sprintf(`
		SELECT %s FROM seminars
		WHERE LOWER(department) = LOWER($1) AND LOWER(email) = LOWER($2)
		ORDER BY applied_at DESC
		LIMIT $3 OFFSET $4
	`, seminarColumns)
	rows, err := r.DB.QueryContext(ctx, query, department, email, params.Limit(), params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	seminars, err := collectSeminars(rows)
	if err != nil {
		return nil, 0, err
	}
	return seminars, total, nil
}

func (r *seminarRepository) ListByStatus(ctx context.Context, status string) ([]*domain.Seminar, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM seminars
		WHERE UPPER(status) = UPPER($1)
		ORDER BY applied_at DESC
	`, seminarColumns)
	rows, err := r.DB.QueryContext(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSeminars(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSeminar(row rowScanner) (*domain.Seminar, error) {
	s := &domain.Seminar{}
	var date, startTime, endTime, startDate, endDate, cancelReason sql.NullString
	var daySlots []byte
	err := row.Scan(
		&s.ID, &s.HallName, &s.BookingName, &s.Email, &s.Department, &s.Phone,
		&s.SlotTitle, &s.Remarks, &s.Status,
		&date, &startTime, &endTime, &startDate, &endDate, &daySlots,
		&s.AppliedAt, &s.CreatedBy, &cancelReason,
	)
	if err != nil {
		return nil, err
	}
	s.Date = date.String
	s.StartTime = startTime.String
	s.EndTime = endTime.String
	s.StartDate = startDate.String
	s.EndDate = endDate.String
	s.CancellationReason = cancelReason.String
	if len(daySlots) > 0 {
		if err := json.Unmarshal(daySlots, &s.DaySlots); err != nil {
			return nil, fmt.Errorf("decode day_slots for seminar %s: %w", s.ID, err)
		}
	}
	return s, nil
}

func collectSeminars(rows *sql.Rows) ([]*domain.Seminar, error) {
	seminars := make([]*domain.Seminar, 0)
	for rows.Next() {
		s, err := scanSeminar(rows)
		if err != nil {
			return nil, err
		}
		seminars = append(seminars, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return seminars, nil
}

// encodeDaySlots serializes the per-day override map for the JSONB column.
// An empty map is stored as NULL.
func encodeDaySlots(slots map[string]*domain.DaySlot) (any, error) {
	if len(slots) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(slots)
	if err != nil {
		return nil, fmt.Errorf("encode day_slots: %w", err)
	}
	return b, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
