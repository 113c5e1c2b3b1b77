package task

import appErrors "logistics-backoffice/pkg/errors"

var (
	ErrTaskNotFound = appErrors.NewNotFound("Task not found")
)
