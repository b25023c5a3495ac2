package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

// Operator contact rules: Indian mobile numbers and campus or gmail
// mailboxes only.
var (
	operatorPhonePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	allowedEmailDomains  = []string{"@newhorizonindia.edu", "@gmail.com"}
)

type operatorService struct {
	operatorRepo   domain.HallOperatorRepository
	hallRepo       domain.HallRepository
	emailService   domain.EmailService
	logService     domain.LogService
	logger         *slog.Logger
	now            func() time.Time
	contextTimeout time.Duration
}

// NewHallOperatorService returns the business logic for hall operators.
func NewHallOperatorService(
	operatorRepo domain.HallOperatorRepository,
	hallRepo domain.HallRepository,
	emailService domain.EmailService,
	logService domain.LogService,
	logger *slog.Logger,
	timeout time.Duration,
) domain.HallOperatorService {
	return &operatorService{
		operatorRepo:   operatorRepo,
		hallRepo:       hallRepo,
		emailService:   emailService,
		logService:     logService,
		logger:         logger,
		now:            time.Now,
		contextTimeout: timeout,
	}
}

func (s *operatorService) Create(ctx context.Context, op *domain.HallOperator) (*domain.HallOperator, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	op.HeadName = strings.TrimSpace(op.HeadName)
	if op.HeadName == "" {
		return nil, fmt.Errorf("%w: head name is required", domain.ErrInvalidInput)
	}
	op.HeadEmail = strings.ToLower(strings.TrimSpace(op.HeadEmail))
	if err := validateOperatorEmail(op.HeadEmail); err != nil {
		return nil, err
	}
	op.Phone = strings.TrimSpace(op.Phone)
	if err := validateOperatorPhone(op.Phone); err != nil {
		return nil, err
	}

	if _, err := s.operatorRepo.GetByEmail(ctx, op.HeadEmail); err == nil {
		return nil, fmt.Errorf("%w: operator %q", domain.ErrDuplicateEmail, op.HeadEmail)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("look up operator: %w", err)
	}

	names, err := s.resolveHallNames(ctx, op.HallNames)
	if err != nil {
		return nil, err
	}
	op.HallNames = names

	now := s.now().UTC()
	op.CreatedAt = now
	op.UpdatedAt = now
	if err := s.operatorRepo.Create(ctx, op); err != nil {
		return nil, fmt.Errorf("create operator: %w", err)
	}

	// A failed welcome mail must not undo the registration.
	err = s.emailService.SendOperatorWelcome(ctx, &domain.OperatorWelcomeEmailData{
		Email:     op.HeadEmail,
		Name:      op.HeadName,
		HallNames: op.HallNames,
	})
	if err != nil {
		s.logger.Error("failed to send operator welcome email", "email", op.HeadEmail, "error", err)
	}

	s.logService.Record(ctx, op.HeadEmail, "OPERATOR_CREATED", strings.Join(op.HallNames, ", "))
	return op, nil
}

func (s *operatorService) GetByID(ctx context.Context, id string) (*domain.HallOperator, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.operatorRepo.GetByID(ctx, id)
}

func (s *operatorService) ListAll(ctx context.Context) ([]*domain.HallOperator, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.operatorRepo.ListAll(ctx)
}

func (s *operatorService) ListByHallName(ctx context.Context, hallName string) ([]*domain.HallOperator, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	hallName = strings.TrimSpace(hallName)
	if hallName == "" {
		return nil, fmt.Errorf("%w: hall name is required", domain.ErrInvalidInput)
	}
	return s.operatorRepo.ListByHallName(ctx, hallName)
}

func (s *operatorService) Update(ctx context.Context, id string, patch *domain.HallOperator) (*domain.HallOperator, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.operatorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(patch.HeadName); name != "" {
		existing.HeadName = name
	}
	if email := strings.ToLower(strings.TrimSpace(patch.HeadEmail)); email != "" {
		if err := validateOperatorEmail(email); err != nil {
			return nil, err
		}
		existing.HeadEmail = email
	}
	if phone := strings.TrimSpace(patch.Phone); phone != "" {
		if err := validateOperatorPhone(phone); err != nil {
			return nil, err
		}
		existing.Phone = phone
	}
	if len(patch.HallNames) > 0 {
		names, err := s.resolveHallNames(ctx, patch.HallNames)
		if err != nil {
			return nil, err
		}
		existing.HallNames = names
	}
	existing.UpdatedAt = s.now().UTC()
	if err := s.operatorRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update operator: %w", err)
	}
	s.logService.Record(ctx, existing.HeadEmail, "OPERATOR_UPDATED", strings.Join(existing.HallNames, ", "))
	return existing, nil
}

func (s *operatorService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.operatorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.operatorRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete operator: %w", err)
	}
	s.logService.Record(ctx, existing.HeadEmail, "OPERATOR_DELETED", "")
	return nil
}

func (s *operatorService) EmailExists(ctx context.Context, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	email = strings.ToLower(strings.TrimSpace(email))
	_, err := s.operatorRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("look up operator: %w", err)
	}
	return true, nil
}

// resolveHallNames checks every requested hall against the hall registry and
// returns the canonical names, so an operator record never points at a hall
// spelled differently from the registry.
func (s *operatorService) resolveHallNames(ctx context.Context, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return nil, fmt.Errorf("%w: at least one hall is required", domain.ErrInvalidInput)
	}
	names := make([]string, 0, len(requested))
	for _, name := range requested {
		hall, err := s.hallRepo.GetByName(ctx, strings.TrimSpace(name))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown hall %q", domain.ErrInvalidInput, name)
			}
			return nil, fmt.Errorf("look up hall: %w", err)
		}
		names = append(names, hall.Name)
	}
	return names, nil
}

func validateOperatorEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: head email is required", domain.ErrInvalidInput)
	}
	for _, d := range allowedEmailDomains {
		if strings.HasSuffix(email, d) {
			return nil
		}
	}
	return fmt.Errorf("%w: head email must end with %s", domain.ErrInvalidInput, strings.Join(allowedEmailDomains, " or "))
}

func validateOperatorPhone(phone string) error {
	if phone == "" {
		return nil
	}
	if !operatorPhonePattern.MatchString(phone) {
		return fmt.Errorf("%w: phone must be 10 digits starting with 6-9", domain.ErrInvalidInput)
	}
	return nil
}
