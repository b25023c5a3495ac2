package domain

import (
	"context"
	"time"
)

// LogEntry is one audit-trail record of a booking or account mutation.
// swagger:model LogEntry
type LogEntry struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

// LogRepository defines the interface for audit log storage
type LogRepository interface {
	Create(ctx context.Context, e *LogEntry) error
	ListAll(ctx context.Context, params PaginationParams) ([]*LogEntry, int, error)
	ListByEmail(ctx context.Context, email string, params PaginationParams) ([]*LogEntry, int, error)
}

// LogService records and queries audit entries. Recording failures are
// logged, never surfaced to the caller.
type LogService interface {
	Record(ctx context.Context, email, action, detail string)
	ListAll(ctx context.Context, params PaginationParams) ([]*LogEntry, int, error)
	ListByEmail(ctx context.Context, email string, params PaginationParams) ([]*LogEntry, int, error)
}
