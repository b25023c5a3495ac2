package postgres

import (
	"context"
	"database/sql"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

type logRepository struct {
	DB *sql.DB
}

// NewLogRepository returns a domain.LogRepository implemented with Postgres.
func NewLogRepository(db *sql.DB) domain.LogRepository {
	return &logRepository{DB: db}
}

func (r *logRepository) Create(ctx context.Context, e *domain.LogEntry) error {
	query := `
		INSERT INTO logs (email, action, detail, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, e.Email, e.Action, e.Detail, e.CreatedAt).Scan(&e.ID)
}

func (r *logRepository) ListAll(ctx context.Context, params domain.PaginationParams) ([]*domain.LogEntry, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM logs`).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `
		SELECT id, email, action, detail, created_at
		FROM logs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.Limit(), params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	entries, err := collectLogs(rows)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func (r *logRepository) ListByEmail(ctx context.Context, email string, params domain.PaginationParams) ([]*domain.LogEntry, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM logs WHERE LOWER(email) = LOWER($1)`
	if err := r.DB.QueryRowContext(ctx, countQuery, email).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `
		SELECT id, email, action, detail, created_at
		FROM logs
		WHERE LOWER(email) = LOWER($1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, email, params.Limit(), params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	entries, err := collectLogs(rows)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

func collectLogs(rows *sql.Rows) ([]*domain.LogEntry, error) {
	entries := make([]*domain.LogEntry, 0)
	for rows.Next() {
		e := &domain.LogEntry{}
		if err := rows.Scan(&e.ID, &e.Email, &e.Action, &e.Detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
