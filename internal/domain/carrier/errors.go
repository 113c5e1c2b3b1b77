package carrier

import appErrors "logistics-backoffice/pkg/errors"

var (
	ErrCarrierNotFound = appErrors.NewNotFound("Carrier not found")
)
