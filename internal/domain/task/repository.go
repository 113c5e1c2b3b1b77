package task

import "context"

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// Repository defines the interface for task repository operations
type Repository interface {
	Create(ctx context.Context, t *Task) error
	GetByID(ctx context.Context, id int64) (*Task, error)
	List(ctx context.Context, filter *Filter) ([]*Task, error)
	Update(ctx context.Context, t *Task) error
	Count(ctx context.Context, filter *Filter) (int64, error)
}

// Filter represents filtering options for listing tasks
type Filter struct {
	AssignedTo     *int64
	RelatedOrderID *int64
	Status         *Status
}
