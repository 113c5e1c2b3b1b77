package postgres

import (
	"context"

	"logistics-backoffice/internal/domain/transaction"

	"gorm.io/gorm"
)

type txKey struct{}

// TxManager implements transaction.Manager on top of gorm transactions.
type TxManager struct {
	db *DB
}

func NewTxManager(db *DB) transaction.Manager {
	return &TxManager{db: db}
}

// WithinTransaction joins an enclosing transaction if ctx already carries one.
func (m *TxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	return m.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
