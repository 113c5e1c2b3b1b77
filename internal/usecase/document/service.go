package document

import (
	"context"

	domainDocument "logistics-backoffice/internal/domain/document"
	domainOrder "logistics-backoffice/internal/domain/order"
	domainUser "logistics-backoffice/internal/domain/user"
	"logistics-backoffice/internal/logger"
	appErrors "logistics-backoffice/pkg/errors"
	"logistics-backoffice/pkg/utils"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

type Service struct {
	documentRepo domainDocument.Repository
	orderRepo    domainOrder.Repository
	userRepo     domainUser.Repository
}

func NewService(documentRepo domainDocument.Repository, orderRepo domainOrder.Repository, userRepo domainUser.Repository) *Service {
	return &Service{
		documentRepo: documentRepo,
		orderRepo:    orderRepo,
		userRepo:     userRepo,
	}
}

func (s *Service) Create(ctx context.Context, req *CreateDocumentRequest) (*DocumentResponse, error) {
	req.Sanitize()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if len(req.FileData) == 0 && req.FileURL == nil {
		return nil, appErrors.NewValidationError(appErrors.FieldError{
			Field:   "fileData",
			Message: "is required when fileUrl is not set",
		})
	}

	return s.store(ctx, &domainDocument.Document{
		OrderID:    req.OrderID,
		FileName:   req.FileName,
		FileType:   req.FileType,
		FileData:   req.FileData,
		FileURL:    req.FileURL,
		UploadedBy: req.UploadedBy,
	})
}

// Upload stores file content received as multipart form data.
func (s *Service) Upload(ctx context.Context, req *UploadDocumentRequest) (*DocumentResponse, error) {
	req.Sanitize()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if len(req.Data) == 0 {
		return nil, appErrors.NewValidationError(appErrors.FieldError{Field: "file", Message: "is required"})
	}

	return s.store(ctx, &domainDocument.Document{
		OrderID:    req.OrderID,
		FileName:   req.FileName,
		FileType:   req.FileType,
		FileData:   req.Data,
		UploadedBy: req.UploadedBy,
	})
}

func (s *Service) store(ctx context.Context, d *domainDocument.Document) (*DocumentResponse, error) {
	if _, err := s.orderRepo.GetByID(ctx, d.OrderID); err != nil {
		return nil, err
	}
	if d.UploadedBy != nil {
		if _, err := s.userRepo.GetByID(ctx, *d.UploadedBy); err != nil {
			return nil, err
		}
	}

	if d.FileType == "" {
		if len(d.FileData) == 0 {
			return nil, appErrors.NewValidationError(appErrors.FieldError{Field: "fileType", Message: "is required"})
		}
		d.FileType = mimetype.Detect(d.FileData).String()
	}

	if err := s.documentRepo.Create(ctx, d); err != nil {
		return nil, err
	}

	logger.Info("Document stored",
		zap.Int64("document_id", d.ID),
		zap.Int64("order_id", d.OrderID),
		zap.String("file_type", d.FileType),
		zap.Int64("file_size", d.FileSize),
		zap.String("event", "document_created"),
	)

	return ToDocumentResponse(d), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*DocumentResponse, error) {
	d, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToDocumentResponse(d), nil
}

// Download returns the document with its content loaded.
func (s *Service) Download(ctx context.Context, id int64) (*domainDocument.Document, error) {
	d, err := s.documentRepo.GetWithData(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(d.FileData) == 0 {
		return nil, domainDocument.ErrNoFileData
	}
	return d, nil
}

func (s *Service) List(ctx context.Context, req *ListDocumentsRequest) ([]*DocumentResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	documents, err := s.documentRepo.List(ctx, &domainDocument.Filter{OrderID: req.OrderID})
	if err != nil {
		return nil, err
	}
	return ToDocumentResponses(documents), nil
}

func (s *Service) ListByOrder(ctx context.Context, orderID int64) ([]*DocumentResponse, error) {
	if _, err := s.orderRepo.GetByID(ctx, orderID); err != nil {
		return nil, err
	}
	return s.List(ctx, &ListDocumentsRequest{OrderID: &orderID})
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateDocumentRequest) (*DocumentResponse, error) {
	req.Sanitize()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	d, err := s.documentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(d)
	if err := s.documentRepo.Update(ctx, d); err != nil {
		return nil, err
	}
	return ToDocumentResponse(d), nil
}
