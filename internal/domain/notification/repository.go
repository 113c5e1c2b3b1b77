package notification

import "context"

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// Repository defines the interface for notification repository operations
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id int64) (*Notification, error)
	List(ctx context.Context, filter *Filter) ([]*Notification, error)
	Update(ctx context.Context, n *Notification) error
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
}

type Filter struct {
	UserID     *int64
	OrderID    *int64
	UnreadOnly bool
}
