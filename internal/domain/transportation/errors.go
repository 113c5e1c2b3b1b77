package transportation

import appErrors "logistics-backoffice/pkg/errors"

var (
	ErrRequestNotFound = appErrors.NewNotFound("Transportation request not found")
)
