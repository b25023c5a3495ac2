package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var userCols = []string{"id", "email", "password_hash", "salt", "name", "department", "phone", "role", "created_at", "updated_at"}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-uuid-1"))

		repo := NewUserRepository(db)
		u := domain.NewUser("alice@example.edu", "Alice", "CSE", "9999999999", domain.RoleDepartment, now, now)
		err = repo.Create(ctx, u)
		require.NoError(t, err)
		require.Equal(t, "user-uuid-1", u.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation returns ErrDuplicateEmail", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnError(&pq.Error{Code: "23505"})

		repo := NewUserRepository(db)
		u := domain.NewUser("alice@example.edu", "Alice", "CSE", "", domain.RoleDepartment, now, now)
		err = repo.Create(ctx, u)
		require.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows(userCols).AddRow(
			"user-1", "alice@example.edu", "hash", "salt", "Alice", "CSE", nil, domain.RoleDepartment, now, now,
		)
		mock.ExpectQuery(`SELECT (.+) FROM users`).WithArgs("alice@example.edu").WillReturnRows(rows)

		repo := NewUserRepository(db)
		u, err := repo.GetByEmail(ctx, "alice@example.edu")
		require.NoError(t, err)
		require.Equal(t, "Alice", u.Name)
		require.Equal(t, "CSE", u.Department)
		require.Empty(t, u.Phone)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT (.+) FROM users`).WithArgs("nobody@example.edu").WillReturnError(sql.ErrNoRows)

		repo := NewUserRepository(db)
		_, err = repo.GetByEmail(ctx, "nobody@example.edu")
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE users`).
			WithArgs("newhash", "newsalt", "alice@example.edu").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewUserRepository(db)
		require.NoError(t, repo.UpdatePassword(ctx, "alice@example.edu", "newhash", "newsalt"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown email", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE users`).WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewUserRepository(db)
		err = repo.UpdatePassword(ctx, "nobody@example.edu", "h", "s")
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestOtpRepository_Check(t *testing.T) {
	ctx := context.Background()

	t.Run("live code", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id FROM otp_codes`).
			WithArgs("alice@example.edu", "codehash").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("otp-1"))

		repo := NewOtpRepository(db)
		valid, err := repo.Check(ctx, "alice@example.edu", "codehash")
		require.NoError(t, err)
		require.True(t, valid)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing or expired code", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id FROM otp_codes`).WillReturnError(sql.ErrNoRows)

		repo := NewOtpRepository(db)
		valid, err := repo.Check(ctx, "alice@example.edu", "badhash")
		require.NoError(t, err)
		require.False(t, valid)
	})
}

func TestOtpRepository_Consume(t *testing.T) {
	ctx := context.Background()

	t.Run("valid code is deleted in one statement", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`DELETE FROM otp_codes`).
			WithArgs("alice@example.edu", "codehash").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("otp-1"))

		repo := NewOtpRepository(db)
		consumed, err := repo.Consume(ctx, "alice@example.edu", "codehash")
		require.NoError(t, err)
		require.True(t, consumed)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing or expired code", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`DELETE FROM otp_codes`).WillReturnError(sql.ErrNoRows)

		repo := NewOtpRepository(db)
		consumed, err := repo.Consume(ctx, "alice@example.edu", "badhash")
		require.NoError(t, err)
		require.False(t, consumed)
	})
}
