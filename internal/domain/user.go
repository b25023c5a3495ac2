package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for user operations.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already in use")
)

// Application roles.
const (
	RoleAdmin      = "ADMIN"
	RoleDepartment = "DEPARTMENT"
)

// User represents a registered user
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Department   string    `json:"department,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser returns a new User with the given fields. ID is typically set by the repository on create.
func NewUser(email, name, department, phone, role string, createdAt, updatedAt time.Time) *User {
	return &User{
		Email:      email,
		Name:       name,
		Department: department,
		Phone:      phone,
		Role:       role,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}

// TokenClaims is the authenticated identity carried in the request context.
type TokenClaims struct {
	UserID     string
	Email      string
	Role       string
	Department string
}

// IsAdmin reports whether the claims carry the admin role.
func (c *TokenClaims) IsAdmin() bool {
	return c != nil && c.Role == RoleAdmin
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(user *User, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated claims.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	ListAll(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, email, hash, salt string) error
	Delete(ctx context.Context, id string) error
}

// OtpRepository defines the interface for one-time password storage used by
// the forgot-password flow. Codes are stored hashed. Check reports whether a
// live code exists without removing it, so the client can verify before
// collecting a new password; Consume removes the code and must be atomic so
// a code cannot be redeemed twice.
type OtpRepository interface {
	Create(ctx context.Context, email, codeHash string, expiresAt time.Time) error
	Check(ctx context.Context, email, codeHash string) (valid bool, err error)
	Consume(ctx context.Context, email, codeHash string) (consumed bool, err error)
}

// UserService defines the business logic for user management
type UserService interface {
	Create(ctx context.Context, user *User, password string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	ListAll(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, id string, patch *User) (*User, error)
	Delete(ctx context.Context, id string) error
}

// AuthService defines login and password recovery flows
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
	RefreshToken(ctx context.Context, token string) (newToken string, user *User, err error)
	RequestPasswordReset(ctx context.Context, email string) error
	VerifyOtp(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}
