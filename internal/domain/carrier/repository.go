package carrier

import "context"

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// Repository defines the interface for carrier repository operations
type Repository interface {
	Create(ctx context.Context, c *Carrier) error
	GetByID(ctx context.Context, id int64) (*Carrier, error)
	List(ctx context.Context, filter *Filter) ([]*Carrier, error)
	Update(ctx context.Context, c *Carrier) error
}

type Filter struct {
	Search string
}
