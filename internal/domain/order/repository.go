package order

import (
	"context"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// Repository defines the interface for order repository operations
type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id int64) (*Order, error)
	List(ctx context.Context, filter *Filter) ([]*Order, error)
	Update(ctx context.Context, o *Order) error
	CountByStatus(ctx context.Context) (map[Status]int64, error)
	SumPrice(ctx context.Context, status Status) (decimal.Decimal, error)
}

// Filter represents filtering options for listing orders
type Filter struct {
	Status    *Status
	ClientID  *int64
	CarrierID *int64
	ManagerID *int64
}
