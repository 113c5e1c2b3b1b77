package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics-backoffice/internal/domain/document"
	"logistics-backoffice/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

// documentMetaColumns is every column except file_data.
var documentMetaColumns = []string{
	"id", "order_id", "file_name", "file_type", "file_url",
	"file_size", "uploaded_by", "created_at", "updated_at",
}

type DocumentRepository struct {
	db *DB
}

func NewDocumentRepository(db *DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(ctx context.Context, d *document.Document) error {
	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now
	d.FileSize = int64(len(d.FileData))

	dbModel := toDocumentModel(d)
	if err := r.db.conn(ctx).Create(dbModel).Error; err != nil {
		return translateWriteError(err, "create document", nil)
	}

	d.ID = dbModel.ID
	return nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id int64) (*document.Document, error) {
	return r.get(ctx, id, documentMetaColumns)
}

func (r *DocumentRepository) GetWithData(ctx context.Context, id int64) (*document.Document, error) {
	return r.get(ctx, id, nil)
}

func (r *DocumentRepository) get(ctx context.Context, id int64, columns []string) (*document.Document, error) {
	var dbModel models.DocumentModel

	db := r.db.conn(ctx)
	if columns != nil {
		db = db.Select(columns)
	}
	err := db.Where("id = ?", id).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, document.ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return toDocumentEntity(&dbModel), nil
}

func (r *DocumentRepository) List(ctx context.Context, filter *document.Filter) ([]*document.Document, error) {
	var dbModels []models.DocumentModel

	db := r.db.conn(ctx).Model(&models.DocumentModel{}).Select(documentMetaColumns)
	if filter != nil && filter.OrderID != nil {
		db = db.Where("order_id = ?", *filter.OrderID)
	}

	if err := db.Order("created_at DESC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	documents := make([]*document.Document, len(dbModels))
	for i := range dbModels {
		documents[i] = toDocumentEntity(&dbModels[i])
	}
	return documents, nil
}

// Update rewrites the metadata only. Stored file content is immutable.
func (r *DocumentRepository) Update(ctx context.Context, d *document.Document) error {
	d.UpdatedAt = time.Now()

	result := r.db.conn(ctx).
		Model(&models.DocumentModel{}).
		Where("id = ?", d.ID).
		Updates(map[string]interface{}{
			"file_name":   d.FileName,
			"file_type":   d.FileType,
			"file_url":    d.FileURL,
			"uploaded_by": d.UploadedBy,
			"updated_at":  d.UpdatedAt,
		})

	if result.Error != nil {
		return translateWriteError(result.Error, "update document", nil)
	}
	if result.RowsAffected == 0 {
		return document.ErrDocumentNotFound
	}
	return nil
}

func toDocumentModel(d *document.Document) *models.DocumentModel {
	return &models.DocumentModel{
		ID:         d.ID,
		OrderID:    d.OrderID,
		FileName:   d.FileName,
		FileType:   d.FileType,
		FileData:   d.FileData,
		FileURL:    d.FileURL,
		FileSize:   d.FileSize,
		UploadedBy: d.UploadedBy,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func toDocumentEntity(m *models.DocumentModel) *document.Document {
	return &document.Document{
		ID:         m.ID,
		OrderID:    m.OrderID,
		FileName:   m.FileName,
		FileType:   m.FileType,
		FileData:   m.FileData,
		FileURL:    m.FileURL,
		FileSize:   m.FileSize,
		UploadedBy: m.UploadedBy,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
