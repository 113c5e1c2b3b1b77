package vehicle

import "context"

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// Repository defines the interface for vehicle repository operations
type Repository interface {
	Create(ctx context.Context, v *Vehicle) error
	GetByID(ctx context.Context, id int64) (*Vehicle, error)
	List(ctx context.Context, filter *Filter) ([]*Vehicle, error)
	Update(ctx context.Context, v *Vehicle) error
}

// Filter represents filtering options for listing vehicles
type Filter struct {
	CarrierID *int64
	Status    *Status
}
