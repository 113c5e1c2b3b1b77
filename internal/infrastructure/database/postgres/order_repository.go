package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics-backoffice/internal/domain/order"
	"logistics-backoffice/internal/infrastructure/database/postgres/models"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *DB
}

func NewOrderRepository(db *DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now
	if o.Status == "" {
		o.Status = order.StatusPending
	}

	dbModel := toOrderModel(o)
	if err := r.db.conn(ctx).Create(dbModel).Error; err != nil {
		return translateWriteError(err, "create order", order.ErrOrderNumberExists)
	}

	o.ID = dbModel.ID
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	var dbModel models.OrderModel
	err := r.db.conn(ctx).Where("id = ?", id).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, order.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return toOrderEntity(&dbModel), nil
}

func (r *OrderRepository) List(ctx context.Context, filter *order.Filter) ([]*order.Order, error) {
	var dbModels []models.OrderModel

	db := r.db.conn(ctx).Model(&models.OrderModel{})
	if filter != nil {
		if filter.Status != nil {
			db = db.Where("status = ?", string(*filter.Status))
		}
		if filter.ClientID != nil {
			db = db.Where("client_id = ?", *filter.ClientID)
		}
		if filter.CarrierID != nil {
			db = db.Where("carrier_id = ?", *filter.CarrierID)
		}
		if filter.ManagerID != nil {
			db = db.Where("manager_id = ?", *filter.ManagerID)
		}
	}

	if err := db.Order("created_at DESC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]*order.Order, len(dbModels))
	for i := range dbModels {
		orders[i] = toOrderEntity(&dbModels[i])
	}
	return orders, nil
}

func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	o.UpdatedAt = time.Now()
	dbModel := toOrderModel(o)

	result := r.db.conn(ctx).
		Model(&models.OrderModel{}).
		Where("id = ?", o.ID).
		Updates(map[string]interface{}{
			"order_number":        dbModel.OrderNumber,
			"client_id":           dbModel.ClientID,
			"carrier_id":          dbModel.CarrierID,
			"manager_id":          dbModel.ManagerID,
			"route":               dbModel.Route,
			"origin_address":      dbModel.OriginAddress,
			"destination_address": dbModel.DestinationAddress,
			"status":              dbModel.Status,
			"weight":              dbModel.Weight,
			"volume":              dbModel.Volume,
			"price":               dbModel.Price,
			"cost":                dbModel.Cost,
			"order_date":          dbModel.OrderDate,
			"delivery_date":       dbModel.DeliveryDate,
			"details":             dbModel.Details,
			"notes":               dbModel.Notes,
			"updated_at":          o.UpdatedAt,
		})

	if result.Error != nil {
		return translateWriteError(result.Error, "update order", order.ErrOrderNumberExists)
	}
	if result.RowsAffected == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) CountByStatus(ctx context.Context) (map[order.Status]int64, error) {
	var rows []statusCount
	err := r.db.conn(ctx).
		Model(&models.OrderModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}

	counts := make(map[order.Status]int64, len(rows))
	for _, row := range rows {
		counts[order.Status(row.Status)] = row.Count
	}
	return counts, nil
}

func (r *OrderRepository) SumPrice(ctx context.Context, status order.Status) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.conn(ctx).
		Model(&models.OrderModel{}).
		Select("COALESCE(SUM(price), 0)").
		Where("status = ?", string(status)).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum order prices: %w", err)
	}
	return total, nil
}

// statusCount is the scan target for GROUP BY status queries.
type statusCount struct {
	Status string
	Count  int64
}

func toOrderModel(o *order.Order) *models.OrderModel {
	details := o.Details
	if details.Timeline == nil {
		details.Timeline = []order.TimelineEntry{}
	}

	return &models.OrderModel{
		ID:                 o.ID,
		OrderNumber:        o.OrderNumber,
		ClientID:           o.ClientID,
		CarrierID:          o.CarrierID,
		ManagerID:          o.ManagerID,
		Route:              o.Route,
		OriginAddress:      o.OriginAddress,
		DestinationAddress: o.DestinationAddress,
		Status:             string(o.Status),
		Weight:             o.Weight,
		Volume:             o.Volume,
		Price:              o.Price,
		Cost:               o.Cost,
		OrderDate:          o.OrderDate,
		DeliveryDate:       o.DeliveryDate,
		Details:            datatypes.NewJSONType(details),
		Notes:              o.Notes,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func toOrderEntity(m *models.OrderModel) *order.Order {
	details := m.Details.Data()
	if details.Timeline == nil {
		details.Timeline = []order.TimelineEntry{}
	}

	return &order.Order{
		ID:                 m.ID,
		OrderNumber:        m.OrderNumber,
		ClientID:           m.ClientID,
		CarrierID:          m.CarrierID,
		ManagerID:          m.ManagerID,
		Route:              m.Route,
		OriginAddress:      m.OriginAddress,
		DestinationAddress: m.DestinationAddress,
		Status:             order.Status(m.Status),
		Weight:             m.Weight,
		Volume:             m.Volume,
		Price:              m.Price,
		Cost:               m.Cost,
		OrderDate:          m.OrderDate,
		DeliveryDate:       m.DeliveryDate,
		Details:            details,
		Notes:              m.Notes,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}
