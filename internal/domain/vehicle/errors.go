package vehicle

import appErrors "logistics-backoffice/pkg/errors"

var (
	ErrVehicleNotFound = appErrors.NewNotFound("Vehicle not found")
)
