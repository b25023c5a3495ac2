package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

const operatorColumns = `id, hall_names, head_name, head_email, phone, created_at, updated_at`

type operatorRepository struct {
	DB *sql.DB
}

// NewHallOperatorRepository returns a domain.HallOperatorRepository
// implemented with Postgres. hall_names is a text[] column.
func NewHallOperatorRepository(db *sql.DB) domain.HallOperatorRepository {
	return &operatorRepository{DB: db}
}

func (r *operatorRepository) Create(ctx context.Context, op *domain.HallOperator) error {
	query := `
		INSERT INTO hall_operators (hall_names, head_name, head_email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		pq.Array(op.HallNames),
		op.HeadName,
		op.HeadEmail,
		nullString(op.Phone),
		op.CreatedAt,
		op.UpdatedAt,
	).Scan(&op.ID)
	if err != nil && isUniqueViolation(err) {
		return domain.ErrDuplicateEmail
	}
	return err
}

func (r *operatorRepository) GetByID(ctx context.Context, id string) (*domain.HallOperator, error) {
	query := `SELECT ` + operatorColumns + ` FROM hall_operators WHERE id = $1`
	return scanOperator(r.DB.QueryRowContext(ctx, query, id))
}

func (r *operatorRepository) GetByEmail(ctx context.Context, email string) (*domain.HallOperator, error) {
	query := `SELECT ` + operatorColumns + ` FROM hall_operators WHERE LOWER(head_email) = LOWER($1)`
	return scanOperator(r.DB.QueryRowContext(ctx, query, email))
}

func (r *operatorRepository) ListAll(ctx context.Context) ([]*domain.HallOperator, error) {
	query := `SELECT ` + operatorColumns + ` FROM hall_operators ORDER BY head_name ASC`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOperators(rows)
}

func (r *operatorRepository) ListByHallName(ctx context.Context, hallName string) ([]*domain.HallOperator, error) {
	query := `
		SELECT ` + operatorColumns + ` FROM hall_operators
		WHERE EXISTS (SELECT 1 FROM unnest(hall_names) AS n WHERE LOWER(n) = LOWER($1))
		ORDER BY head_name ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, hallName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOperators(rows)
}

func (r *operatorRepository) Update(ctx context.Context, op *domain.HallOperator) error {
	query := `
		UPDATE hall_operators
		SET hall_names = $1, head_name = $2, head_email = $3, phone = $4, updated_at = $5
		WHERE id = $6
	`
	res, err := r.DB.ExecContext(ctx, query,
		pq.Array(op.HallNames),
		op.HeadName,
		op.HeadEmail,
		nullString(op.Phone),
		op.UpdatedAt,
		op.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
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

func (r *operatorRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM hall_operators WHERE id = $1`, id)
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

func scanOperator(row rowScanner) (*domain.HallOperator, error) {
	op := &domain.HallOperator{}
	var hallNames pq.StringArray
	var phone sql.NullString
	err := row.Scan(
		&op.ID,
		&hallNames,
		&op.HeadName,
		&op.HeadEmail,
		&phone,
		&op.CreatedAt,
		&op.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	op.HallNames = []string(hallNames)
	op.Phone = phone.String
	return op, nil
}

func collectOperators(rows *sql.Rows) ([]*domain.HallOperator, error) {
	operators := make([]*domain.HallOperator, 0)
	for rows.Next() {
		op, err := scanOperator(rows)
		if err != nil {
			return nil, err
		}
		operators = append(operators, op)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return operators, nil
}
