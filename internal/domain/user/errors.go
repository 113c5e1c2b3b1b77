package user

import appErrors "logistics-backoffice/pkg/errors"

var (
	ErrUserNotFound      = appErrors.NewNotFound("User not found")
	ErrUserAlreadyExists = appErrors.NewConflict("Username already exists")
)
