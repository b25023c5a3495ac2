package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

type userRepository struct {
	DB *sql.DB
}

// NewUserRepository returns a domain.UserRepository implemented with Postgres.
func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (email, password_hash, salt, name, department, phone, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		u.Email, u.PasswordHash, u.Salt, u.Name, u.Department, u.Phone, u.Role,
		u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil && isUniqueViolation(err) {
		return domain.ErrDuplicateEmail
	}
	return err
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, email, password_hash, salt, name, department, phone, role, created_at, updated_at
		FROM users
		WHERE LOWER(email) = LOWER($1)
	`
	return scanUser(r.DB.QueryRowContext(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, email, password_hash, salt, name, department, phone, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	return scanUser(r.DB.QueryRowContext(ctx, query, id))
}

func (r *userRepository) ListAll(ctx context.Context) ([]*domain.User, error) {
	query := `
		SELECT id, email, password_hash, salt, name, department, phone, role, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	users := make([]*domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `
		UPDATE users
		SET name = $1, department = $2, phone = $3, role = $4, updated_at = $5
		WHERE id = $6
	`
	res, err := r.DB.ExecContext(ctx, query, u.Name, u.Department, u.Phone, u.Role, u.UpdatedAt, u.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, email, hash, salt string) error {
	query := `
		UPDATE users
		SET password_hash = $1, salt = $2, updated_at = NOW()
		WHERE LOWER(email) = LOWER($3)
	`
	res, err := r.DB.ExecContext(ctx, query, hash, salt, email)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	u := &domain.User{}
	var department, phone sql.NullString
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Salt, &u.Name,
		&department, &phone, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	u.Department = department.String
	u.Phone = phone.String
	return u, nil
}
