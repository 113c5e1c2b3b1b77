package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics-backoffice/internal/domain/transportation"
	"logistics-backoffice/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

type TransportationRequestRepository struct {
	db *DB
}

func NewTransportationRequestRepository(db *DB) *TransportationRequestRepository {
	return &TransportationRequestRepository{db: db}
}

func (r *TransportationRequestRepository) Create(ctx context.Context, req *transportation.Request) error {
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now
	if req.Status == "" {
		req.Status = transportation.StatusPending
	}

	dbModel := toTransportationRequestModel(req)
	if err := r.db.conn(ctx).Create(dbModel).Error; err != nil {
		return translateWriteError(err, "create transportation request", nil)
	}

	req.ID = dbModel.ID
	return nil
}

func (r *TransportationRequestRepository) GetByID(ctx context.Context, id int64) (*transportation.Request, error) {
	var dbModel models.TransportationRequestModel
	err := r.db.conn(ctx).Where("id = ?", id).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, transportation.ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transportation request: %w", err)
	}

	return toTransportationRequestEntity(&dbModel), nil
}

func (r *TransportationRequestRepository) List(ctx context.Context, filter *transportation.Filter) ([]*transportation.Request, error) {
	var dbModels []models.TransportationRequestModel

	db := r.db.conn(ctx).Model(&models.TransportationRequestModel{})
	if filter != nil {
		if filter.OrderID != nil {
			db = db.Where("order_id = ?", *filter.OrderID)
		}
		if filter.CarrierID != nil {
			db = db.Where("carrier_id = ?", *filter.CarrierID)
		}
		if filter.Status != nil {
			db = db.Where("status = ?", string(*filter.Status))
		}
	}

	if err := db.Order("created_at DESC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list transportation requests: %w", err)
	}

	requests := make([]*transportation.Request, len(dbModels))
	for i := range dbModels {
		requests[i] = toTransportationRequestEntity(&dbModels[i])
	}
	return requests, nil
}

func (r *TransportationRequestRepository) Update(ctx context.Context, req *transportation.Request) error {
	req.UpdatedAt = time.Now()

	result := r.db.conn(ctx).
		Model(&models.TransportationRequestModel{}).
		Where("id = ?", req.ID).
		Updates(map[string]interface{}{
			"order_id":       req.OrderID,
			"carrier_id":     req.CarrierID,
			"request_number": req.RequestNumber,
			"description":    req.Description,
			"cargo_details":  req.CargoDetails,
			"price":          req.Price,
			"status":         string(req.Status),
			"request_date":   req.RequestDate,
			"delivery_date":  req.DeliveryDate,
			"notes":          req.Notes,
			"updated_at":     req.UpdatedAt,
		})

	if result.Error != nil {
		return translateWriteError(result.Error, "update transportation request", nil)
	}
	if result.RowsAffected == 0 {
		return transportation.ErrRequestNotFound
	}
	return nil
}

func (r *TransportationRequestRepository) CountByStatus(ctx context.Context) (map[transportation.Status]int64, error) {
	var rows []statusCount
	err := r.db.conn(ctx).
		Model(&models.TransportationRequestModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count transportation requests by status: %w", err)
	}

	counts := make(map[transportation.Status]int64, len(rows))
	for _, row := range rows {
		counts[transportation.Status(row.Status)] = row.Count
	}
	return counts, nil
}

func toTransportationRequestModel(req *transportation.Request) *models.TransportationRequestModel {
	return &models.TransportationRequestModel{
		ID:            req.ID,
		OrderID:       req.OrderID,
		CarrierID:     req.CarrierID,
		RequestNumber: req.RequestNumber,
		Description:   req.Description,
		CargoDetails:  req.CargoDetails,
		Price:         req.Price,
		Status:        string(req.Status),
		RequestDate:   req.RequestDate,
		DeliveryDate:  req.DeliveryDate,
		Notes:         req.Notes,
		CreatedAt:     req.CreatedAt,
		UpdatedAt:     req.UpdatedAt,
	}
}

func toTransportationRequestEntity(m *models.TransportationRequestModel) *transportation.Request {
	return &transportation.Request{
		ID:            m.ID,
		OrderID:       m.OrderID,
		CarrierID:     m.CarrierID,
		RequestNumber: m.RequestNumber,
		Description:   m.Description,
		CargoDetails:  m.CargoDetails,
		Price:         m.Price,
		Status:        transportation.Status(m.Status),
		RequestDate:   m.RequestDate,
		DeliveryDate:  m.DeliveryDate,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
