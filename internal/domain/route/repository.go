package route

import "context"

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// Repository defines the interface for route repository operations
type Repository interface {
	Create(ctx context.Context, r *Route) error
	GetByID(ctx context.Context, id int64) (*Route, error)
	List(ctx context.Context, filter *Filter) ([]*Route, error)
	Update(ctx context.Context, r *Route) error
	CountByStatus(ctx context.Context) (map[Status]int64, error)
}

// Filter represents filtering options for listing routes
type Filter struct {
	OrderID   *int64
	VehicleID *int64
	Statuses  []Status
}
