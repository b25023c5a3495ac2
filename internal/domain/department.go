package domain

import "context"

// Department represents an academic department that books halls.
// swagger:model Department
type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DepartmentRepository defines the interface for department storage
type DepartmentRepository interface {
	Create(ctx context.Context, d *Department) error
	GetByID(ctx context.Context, id string) (*Department, error)
	GetByName(ctx context.Context, name string) (*Department, error)
	ListAll(ctx context.Context) ([]*Department, error)
	Update(ctx context.Context, d *Department) error
	Delete(ctx context.Context, id string) error
}

// DepartmentService defines the business logic for department management
type DepartmentService interface {
	Create(ctx context.Context, d *Department) (*Department, error)
	ListAll(ctx context.Context) ([]*Department, error)
	Update(ctx context.Context, id string, d *Department) (*Department, error)
	Delete(ctx context.Context, id string) error
}
