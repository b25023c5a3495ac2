package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

type departmentRepository struct {
	DB *sql.DB
}

// NewDepartmentRepository returns a domain.DepartmentRepository implemented with Postgres.
func NewDepartmentRepository(db *sql.DB) domain.DepartmentRepository {
	return &departmentRepository{DB: db}
}

func (r *departmentRepository) Create(ctx context.Context, d *domain.Department) error {
	query := `
		INSERT INTO departments (name)
		VALUES ($1)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, d.Name).Scan(&d.ID)
	if err != nil && isUniqueViolation(err) {
		return domain.ErrDuplicate
	}
	return err
}

func (r *departmentRepository) GetByID(ctx context.Context, id string) (*domain.Department, error) {
	query := `SELECT id, name FROM departments WHERE id = $1`
	d := &domain.Department{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (r *departmentRepository) GetByName(ctx context.Context, name string) (*domain.Department, error) {
	query := `SELECT id, name FROM departments WHERE LOWER(name) = LOWER($1)`
	d := &domain.Department{}
	err := r.DB.QueryRowContext(ctx, query, name).Scan(&d.ID, &d.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (r *departmentRepository) ListAll(ctx context.Context) ([]*domain.Department, error) {
	query := `SELECT id, name FROM departments ORDER BY name ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	departments := make([]*domain.Department, 0)
	for rows.Next() {
		d := &domain.Department{}
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *departmentRepository) Update(ctx context.Context, d *domain.Department) error {
	query := `UPDATE departments SET name = $1 WHERE id = $2`
	res, err := r.DB.ExecContext(ctx, query, d.Name, d.ID)
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

func (r *departmentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM departments WHERE id = $1`, id)
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
