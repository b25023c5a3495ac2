package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

const minPasswordLength = 8

type userService struct {
	userRepo       domain.UserRepository
	hasher         domain.PasswordHasher
	logService     domain.LogService
	contextTimeout time.Duration
}

// NewUserService returns the business logic for account management.
func NewUserService(userRepo domain.UserRepository, hasher domain.PasswordHasher, logService domain.LogService, timeout time.Duration) domain.UserService {
	return &userService{
		userRepo:       userRepo,
		hasher:         hasher,
		logService:     logService,
		contextTimeout: timeout,
	}
}

func (s *userService) Create(ctx context.Context, user *domain.User, password string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	switch {
	case user.Email == "":
		return nil, fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	case user.Name == "":
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	case len(password) < minPasswordLength:
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLength)
	}
	if user.Role != domain.RoleAdmin && user.Role != domain.RoleDepartment {
		user.Role = domain.RoleDepartment
	}
	if user.Role == domain.RoleDepartment && user.Department == "" {
		return nil, fmt.Errorf("%w: department is required for department accounts", domain.ErrInvalidInput)
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.Salt = salt
	user.PasswordHash = hash
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	s.logService.Record(ctx, user.Email, "USER_CREATED", user.Role)
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) ListAll(ctx context.Context) ([]*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.userRepo.ListAll(ctx)
}

func (s *userService) Update(ctx context.Context, id string, patch *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != "" {
		existing.Name = patch.Name
	}
	if patch.Department != "" {
		existing.Department = patch.Department
	}
	if patch.Phone != "" {
		existing.Phone = patch.Phone
	}
	if patch.Role == domain.RoleAdmin || patch.Role == domain.RoleDepartment {
		existing.Role = patch.Role
	}
	existing.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	s.logService.Record(ctx, existing.Email, "USER_UPDATED", existing.Role)
	return existing, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	s.logService.Record(ctx, existing.Email, "USER_DELETED", "")
	return nil
}
