package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

const (
	otpLength = 6
	otpExpiry = 10 * time.Minute
)

// ErrInvalidCredentials is deliberately vague so login failures do not leak
// which part was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidOtp covers unknown, expired, and already-used codes alike.
var ErrInvalidOtp = errors.New("invalid or expired code")

// ErrInvalidToken is returned when a refresh is attempted with a token that
// no longer verifies.
var ErrInvalidToken = errors.New("invalid token")

type authService struct {
	userRepo       domain.UserRepository
	otpRepo        domain.OtpRepository
	hasher         domain.PasswordHasher
	issuer         domain.TokenIssuer
	verifier       domain.TokenVerifier
	emailService   domain.EmailService
	logService     domain.LogService
	logger         *slog.Logger
	tokenExpiry    time.Duration
	contextTimeout time.Duration
}

// NewAuthService wires login and the OTP-based password recovery flow.
func NewAuthService(
	userRepo domain.UserRepository,
	otpRepo domain.OtpRepository,
	hasher domain.PasswordHasher,
	issuer domain.TokenIssuer,
	verifier domain.TokenVerifier,
	emailService domain.EmailService,
	logService domain.LogService,
	logger *slog.Logger,
	tokenExpiry time.Duration,
	timeout time.Duration,
) domain.AuthService {
	return &authService{
		userRepo:       userRepo,
		otpRepo:        otpRepo,
		hasher:         hasher,
		issuer:         issuer,
		verifier:       verifier,
		emailService:   emailService,
		logService:     logService,
		logger:         logger,
		tokenExpiry:    tokenExpiry,
		contextTimeout: timeout,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("look up user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, user.Salt, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user, s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	s.logService.Record(ctx, user.Email, "LOGIN", user.Role)
	return token, user, nil
}

// RefreshToken trades a still-valid token for a fresh one with a full
// expiry window. The user is reloaded so revoked accounts stop refreshing.
func (s *authService) RefreshToken(ctx context.Context, token string) (string, *domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	claims, err := s.verifier.Verify(token)
	if err != nil {
		return "", nil, ErrInvalidToken
	}
	user, err := s.userRepo.GetByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, ErrInvalidToken
		}
		return "", nil, fmt.Errorf("look up user: %w", err)
	}

	newToken, err := s.issuer.Issue(user, s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	s.logService.Record(ctx, user.Email, "REFRESH_TOKEN", "")
	return newToken, user, nil
}

func (s *authService) RequestPasswordReset(ctx context.Context, email string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Do not reveal which emails have accounts.
			s.logger.Info("password reset requested for unknown email", "email", email)
			return nil
		}
		return fmt.Errorf("look up user: %w", err)
	}

	code, err := generateOtp()
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}
	if err := s.otpRepo.Create(ctx, email, hashOtp(code), time.Now().Add(otpExpiry)); err != nil {
		return fmt.Errorf("store code: %w", err)
	}

	err = s.emailService.SendOtp(ctx, &domain.OtpEmailData{
		Email:            email,
		Code:             code,
		ExpiresInMinutes: int(otpExpiry.Minutes()),
	})
	if err != nil {
		return fmt.Errorf("send code: %w", err)
	}
	s.logService.Record(ctx, email, "PASSWORD_RESET_REQUESTED", "")
	return nil
}

// VerifyOtp confirms the code without consuming it. The client calls this
// before collecting a new password; the code is redeemed at ResetPassword.
func (s *authService) VerifyOtp(ctx context.Context, email, code string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	email = strings.ToLower(strings.TrimSpace(email))
	valid, err := s.otpRepo.Check(ctx, email, hashOtp(code))
	if err != nil {
		return fmt.Errorf("check code: %w", err)
	}
	if !valid {
		return ErrInvalidOtp
	}
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLength)
	}
	email = strings.ToLower(strings.TrimSpace(email))
	consumed, err := s.otpRepo.Consume(ctx, email, hashOtp(code))
	if err != nil {
		return fmt.Errorf("consume code: %w", err)
	}
	if !consumed {
		return ErrInvalidOtp
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(ctx, email, hash, salt); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	s.logService.Record(ctx, email, "PASSWORD_RESET", "")
	return nil
}

func generateOtp() (string, error) {
	max := big.NewInt(10)
	digits := make([]byte, otpLength)
	for i := range digits {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}

func hashOtp(code string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(code)))
	return hex.EncodeToString(sum[:])
}
