package order

import appErrors "logistics-backoffice/pkg/errors"

var (
	ErrOrderNotFound     = appErrors.NewNotFound("Order not found")
	ErrOrderNumberExists = appErrors.NewConflict("Order number already exists")
	ErrManagerNotFound   = appErrors.NewNotFound("Manager not found")
)
