package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

type logService struct {
	logRepo        domain.LogRepository
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewLogService returns the audit-trail service. Record is best-effort:
// storage failures are logged and swallowed so they never break the
// operation being audited.
func NewLogService(logRepo domain.LogRepository, logger *slog.Logger, timeout time.Duration) domain.LogService {
	return &logService{
		logRepo:        logRepo,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *logService) Record(ctx context.Context, email, action, detail string) {
	entry := &domain.LogEntry{
		Email:     email,
		Action:    action,
		Detail:    detail,
		CreatedAt: time.Now(),
	}
	if err := s.logRepo.Create(ctx, entry); err != nil {
		s.logger.Error("failed to record audit entry", "action", action, "error", err)
	}
}

func (s *logService) ListAll(ctx context.Context, params domain.PaginationParams) ([]*domain.LogEntry, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.logRepo.ListAll(ctx, params)
}

func (s *logService) ListByEmail(ctx context.Context, email string, params domain.PaginationParams) ([]*domain.LogEntry, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.logRepo.ListByEmail(ctx, email, params)
}
