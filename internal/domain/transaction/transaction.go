package transaction

import "context"

//go:generate mockgen -source=transaction.go -destination=mocks/mock_transaction.go -package=mocks

// Manager runs fn inside a single database transaction. Repositories called
// with the ctx passed to fn join that transaction; any error rolls it back.
type Manager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
