package domain

import (
	"context"
	"time"
)

// HallOperator is the staff contact responsible for one or more halls.
// HeadEmail is unique; one operator record per mailbox.
type HallOperator struct {
	ID        string    `json:"id"`
	HallNames []string  `json:"hallNames"`
	HeadName  string    `json:"headName"`
	HeadEmail string    `json:"headEmail"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HallOperatorRepository defines the interface for operator storage
type HallOperatorRepository interface {
	Create(ctx context.Context, op *HallOperator) error
	GetByID(ctx context.Context, id string) (*HallOperator, error)
	GetByEmail(ctx context.Context, email string) (*HallOperator, error)
	ListAll(ctx context.Context) ([]*HallOperator, error)
	ListByHallName(ctx context.Context, hallName string) ([]*HallOperator, error)
	Update(ctx context.Context, op *HallOperator) error
	Delete(ctx context.Context, id string) error
}

// HallOperatorService defines the business logic for hall operators
type HallOperatorService interface {
	Create(ctx context.Context, op *HallOperator) (*HallOperator, error)
	GetByID(ctx context.Context, id string) (*HallOperator, error)
	ListAll(ctx context.Context) ([]*HallOperator, error)
	ListByHallName(ctx context.Context, hallName string) ([]*HallOperator, error)
	Update(ctx context.Context, id string, patch *HallOperator) (*HallOperator, error)
	Delete(ctx context.Context, id string) error
	EmailExists(ctx context.Context, email string) (bool, error)
}
