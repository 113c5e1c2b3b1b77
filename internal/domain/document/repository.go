package document

import "context"

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// Repository defines the interface for document repository operations.
// GetByID and List leave FileData empty; GetWithData loads it.
type Repository interface {
	Create(ctx context.Context, d *Document) error
	GetByID(ctx context.Context, id int64) (*Document, error)
	GetWithData(ctx context.Context, id int64) (*Document, error)
	List(ctx context.Context, filter *Filter) ([]*Document, error)
	Update(ctx context.Context, d *Document) error
}

type Filter struct {
	OrderID *int64
}
