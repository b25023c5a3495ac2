package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

type hallRepository struct {
	DB *sql.DB
}

// NewHallRepository returns a domain.HallRepository implemented with Postgres.
func NewHallRepository(db *sql.DB) domain.HallRepository {
	return &hallRepository{DB: db}
}

func (r *hallRepository) Create(ctx context.Context, h *domain.Hall) error {
	query := `
		INSERT INTO halls (name, capacity)
		VALUES ($1, $2)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, h.Name, h.Capacity).Scan(&h.ID)
	if err != nil && isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *hallRepository) GetByID(ctx context.Context, id string) (*domain.Hall, error) {
	query := `SELECT id, name, capacity FROM halls WHERE id = $1`
	h := &domain.Hall{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&h.ID, &h.Name, &h.Capacity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return h, nil
}

func (r *hallRepository) GetByName(ctx context.Context, name string) (*domain.Hall, error) {
	query := `SELECT id, name, capacity FROM halls WHERE LOWER(name) = LOWER($1)`
	h := &domain.Hall{}
	err := r.DB.QueryRowContext(ctx, query, name).Scan(&h.ID, &h.Name, &h.Capacity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return h, nil
}

func (r *hallRepository) ListAll(ctx context.Context) ([]*domain.Hall, error) {
	query := `SELECT id, name, capacity FROM halls ORDER BY name ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	halls := make([]*domain.Hall, 0)
	for rows.Next() {
		h := &domain.Hall{}
		if err := rows.Scan(&h.ID, &h.Name, &h.Capacity); err != nil {
			return nil, err
		}
		halls = append(halls, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return halls, nil
}

func (r *hallRepository) Update(ctx context.Context, h *domain.Hall) error {
	query := `UPDATE halls SET name = $1, capacity = $2 WHERE id = $3`
	res, err := r.DB.ExecContext(ctx, query, h.Name, h.Capacity, h.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
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

func (r *hallRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM halls WHERE id = $1`, id)
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
