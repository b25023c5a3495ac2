package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

type departmentService struct {
	departmentRepo domain.DepartmentRepository
	contextTimeout time.Duration
}

// NewDepartmentService returns the business logic for department management.
func NewDepartmentService(departmentRepo domain.DepartmentRepository, timeout time.Duration) domain.DepartmentService {
	return &departmentService{
		departmentRepo: departmentRepo,
		contextTimeout: timeout,
	}
}

func (s *departmentService) Create(ctx context.Context, d *domain.Department) (*domain.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return nil, fmt.Errorf("%w: department name is required", domain.ErrInvalidInput)
	}
	if _, err := s.departmentRepo.GetByName(ctx, d.Name); err == nil {
		return nil, fmt.Errorf("%w: department %q", domain.ErrDuplicate, d.Name)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("look up department: %w", err)
	}
	if err := s.departmentRepo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("create department: %w", err)
	}
	return d, nil
}

func (s *departmentService) ListAll(ctx context.Context) ([]*domain.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.departmentRepo.ListAll(ctx)
}

func (s *departmentService) Update(ctx context.Context, id string, d *domain.Department) (*domain.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	existing, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: department name is required", domain.ErrInvalidInput)
	}
	existing.Name = name
	if err := s.departmentRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update department: %w", err)
	}
	return existing, nil
}

func (s *departmentService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, err := s.departmentRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.departmentRepo.Delete(ctx, id)
}
