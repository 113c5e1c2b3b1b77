package document

import (
	"time"

	domainDocument "logistics-backoffice/internal/domain/document"
	"logistics-backoffice/pkg/utils"
)

// CreateDocumentRequest registers a document from JSON. FileData travels base64 encoded.
type CreateDocumentRequest struct {
	OrderID    int64   `json:"orderId" validate:"required,gt=0"`
	FileName   string  `json:"fileName" validate:"required,min=1,max=255"`
	FileType   string  `json:"fileType" validate:"omitempty,max=100"`
	FileData   []byte  `json:"fileData"`
	FileURL    *string `json:"fileUrl" validate:"omitnil,url,max=2000"`
	UploadedBy *int64  `json:"uploadedBy" validate:"omitnil,gt=0"`
}

// UploadDocumentRequest is assembled by the transport layer from a multipart form.
type UploadDocumentRequest struct {
	OrderID    int64  `validate:"required,gt=0"`
	FileName   string `validate:"required,min=1,max=255"`
	FileType   string `validate:"omitempty,max=100"`
	Data       []byte
	UploadedBy *int64
}

type UpdateDocumentRequest struct {
	FileName *string `json:"fileName" validate:"omitnil,min=1,max=255"`
	FileType *string `json:"fileType" validate:"omitnil,min=1,max=100"`
	FileURL  *string `json:"fileUrl" validate:"omitnil,url,max=2000"`
}

type ListDocumentsRequest struct {
	OrderID *int64 `form:"orderId" validate:"omitnil,gt=0"`
}

func (r *CreateDocumentRequest) Sanitize() {
	r.FileName = utils.SanitizeString(r.FileName)
	r.FileType = utils.SanitizeString(r.FileType)
	r.FileURL = utils.SanitizeOptional(r.FileURL)
}

func (r *UploadDocumentRequest) Sanitize() {
	r.FileName = utils.SanitizeString(r.FileName)
	r.FileType = utils.SanitizeString(r.FileType)
}

func (r *UpdateDocumentRequest) Sanitize() {
	r.FileName = utils.SanitizeOptional(r.FileName)
	r.FileType = utils.SanitizeOptional(r.FileType)
	r.FileURL = utils.SanitizeOptional(r.FileURL)
}

func (r *UpdateDocumentRequest) ApplyTo(d *domainDocument.Document) {
	if r.FileName != nil {
		d.FileName = *r.FileName
	}
	if r.FileType != nil {
		d.FileType = *r.FileType
	}
	if r.FileURL != nil {
		d.FileURL = r.FileURL
	}
}

// DocumentResponse never carries the file content; it is served by the download endpoint.
type DocumentResponse struct {
	ID         int64     `json:"id"`
	OrderID    int64     `json:"orderId"`
	FileName   string    `json:"fileName"`
	FileType   string    `json:"fileType"`
	FileURL    *string   `json:"fileUrl"`
	FileSize   int64     `json:"fileSize"`
	HasData    bool      `json:"hasData"`
	UploadedBy *int64    `json:"uploadedBy"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func ToDocumentResponse(d *domainDocument.Document) *DocumentResponse {
	return &DocumentResponse{
		ID:         d.ID,
		OrderID:    d.OrderID,
		FileName:   d.FileName,
		FileType:   d.FileType,
		FileURL:    d.FileURL,
		FileSize:   d.FileSize,
		HasData:    d.HasData(),
		UploadedBy: d.UploadedBy,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func ToDocumentResponses(documents []*domainDocument.Document) []*DocumentResponse {
	out := make([]*DocumentResponse, len(documents))
	for i, d := range documents {
		out[i] = ToDocumentResponse(d)
	}
	return out
}
