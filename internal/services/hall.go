package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

type hallService struct {
	hallRepo       domain.HallRepository
	logService     domain.LogService
	contextTimeout time.Duration
}

// NewHallService returns the business logic for hall management.
func NewHallService(hallRepo domain.HallRepository, logService domain.LogService, timeout time.Duration) domain.HallService {
	return &hallService{
		hallRepo:       hallRepo,
		logService:     logService,
		contextTimeout: timeout,
	}
}

func (s *hallService) Create(ctx context.Context, h *domain.Hall) (*domain.Hall, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	h.Name = strings.TrimSpace(h.Name)
	if h.Name == "" {
		return nil, fmt.Errorf("%w: hall name is required", domain.ErrInvalidInput)
	}
	if h.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity must not be negative", domain.ErrInvalidInput)
	}
	if _, err := s.hallRepo.GetByName(ctx, h.Name); err == nil {
		return nil, fmt.Errorf("%w: hall %q", domain.ErrDuplicate, h.Name)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("look up hall: %w", err)
	}
	if err := s.hallRepo.Create(ctx, h); err != nil {
		return nil, fmt.Errorf("create hall: %w", err)
	}
	s.logService.Record(ctx, "", "HALL_CREATED", h.Name)
	return h, nil
}

func (s *hallService) GetByID(ctx context.Context, id string) (*domain.Hall, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.hallRepo.GetByID(ctx, id)
}

func (s *hallService) ListAll(ctx context.Context) ([]*domain.Hall, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.hallRepo.ListAll(ctx)
}

func (s *hallService) Update(ctx context.Context, id string, h *domain.Hall) (*domain.Hall, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.hallRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(h.Name); name != "" {
		existing.Name = name
	}
	if h.Capacity > 0 {
		existing.Capacity = h.Capacity
	}
	if err := s.hallRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update hall: %w", err)
	}
	s.logService.Record(ctx, "", "HALL_UPDATED", existing.Name)
	return existing, nil
}

func (s *hallService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.hallRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.hallRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete hall: %w", err)
	}
	s.logService.Record(ctx, "", "HALL_DELETED", existing.Name)
	return nil
}
