package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

type otpRepository struct {
	DB *sql.DB
}

// NewOtpRepository returns a domain.OtpRepository implemented with Postgres.
func NewOtpRepository(db *sql.DB) domain.OtpRepository {
	return &otpRepository{DB: db}
}

func (r *otpRepository) Create(ctx context.Context, email, codeHash string, expiresAt time.Time) error {
	query := `
		INSERT INTO otp_codes (email, code_hash, expires_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.DB.ExecContext(ctx, query, email, codeHash, expiresAt)
	return err
}

func (r *otpRepository) Check(ctx context.Context, email, codeHash string) (valid bool, err error) {
	var id string
	query := `
		SELECT id FROM otp_codes
		WHERE LOWER(email) = LOWER($1) AND code_hash = $2 AND expires_at > NOW()
		LIMIT 1
	`
	err = r.DB.QueryRowContext(ctx, query, email, codeHash).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Consume deletes and returns in one statement so two concurrent requests
// cannot both redeem the same code.
func (r *otpRepository) Consume(ctx context.Context, email, codeHash string) (consumed bool, err error) {
	var id string
	query := `
		DELETE FROM otp_codes
		WHERE LOWER(email) = LOWER($1) AND code_hash = $2 AND expires_at > NOW()
		RETURNING id
	`
	err = r.DB.QueryRowContext(ctx, query, email, codeHash).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
