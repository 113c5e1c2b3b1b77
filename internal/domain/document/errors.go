package document

import appErrors "logistics-backoffice/pkg/errors"

var (
	ErrDocumentNotFound = appErrors.NewNotFound("Document not found")
	ErrNoFileData       = appErrors.NewNotFound("Document has no stored file data")
)
