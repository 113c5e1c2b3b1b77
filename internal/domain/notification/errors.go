package notification

import appErrors "logistics-backoffice/pkg/errors"

var (
	ErrNotificationNotFound = appErrors.NewNotFound("Notification not found")
)
