package transportation

import "context"

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// Repository defines the interface for transportation request repository operations
type Repository interface {
	Create(ctx context.Context, r *Request) error
	GetByID(ctx context.Context, id int64) (*Request, error)
	List(ctx context.Context, filter *Filter) ([]*Request, error)
	Update(ctx context.Context, r *Request) error
	CountByStatus(ctx context.Context) (map[Status]int64, error)
}

type Filter struct {
	OrderID   *int64
	CarrierID *int64
	Status    *Status
}
