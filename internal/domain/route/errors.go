package route

import appErrors "logistics-backoffice/pkg/errors"

var (
	ErrRouteNotFound = appErrors.NewNotFound("Route not found")
)
