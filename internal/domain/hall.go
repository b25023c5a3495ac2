package domain

import "context"

// Hall represents a bookable seminar hall. Halls are matched by name
// (case-insensitive) throughout the booking flow.
// swagger:model Hall
type Hall struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// NewHall returns a new Hall with the given fields. ID is typically set by the repository on create.
func NewHall(name string, capacity int) *Hall {
	return &Hall{Name: name, Capacity: capacity}
}

// HallRepository defines the interface for hall storage
type HallRepository interface {
	Create(ctx context.Context, h *Hall) error
	GetByID(ctx context.Context, id string) (*Hall, error)
	GetByName(ctx context.Context, name string) (*Hall, error)
	ListAll(ctx context.Context) ([]*Hall, error)
	Update(ctx context.Context, h *Hall) error
	Delete(ctx context.Context, id string) error
}

// HallService defines the business logic for hall management
type HallService interface {
	Create(ctx context.Context, h *Hall) (*Hall, error)
	GetByID(ctx context.Context, id string) (*Hall, error)
	ListAll(ctx context.Context) ([]*Hall, error)
	Update(ctx context.Context, id string, h *Hall) (*Hall, error)
	Delete(ctx context.Context, id string) error
}
