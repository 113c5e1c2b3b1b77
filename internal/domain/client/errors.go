package client

import appErrors "logistics-backoffice/pkg/errors"

var (
	ErrClientNotFound = appErrors.NewNotFound("Client not found")
)
