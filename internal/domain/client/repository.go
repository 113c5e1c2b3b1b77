package client

import "context"

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// Repository defines the interface for client repository operations
type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByID(ctx context.Context, id int64) (*Client, error)
	List(ctx context.Context, filter *Filter) ([]*Client, error)
	Update(ctx context.Context, c *Client) error
}

// Filter represents filtering options for listing clients
type Filter struct {
	Search string
}
