package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics-backoffice/internal/domain/carrier"
	"logistics-backoffice/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

type CarrierRepository struct {
	db *DB
}

func NewCarrierRepository(db *DB) *CarrierRepository {
	return &CarrierRepository{db: db}
}

func (r *CarrierRepository) Create(ctx context.Context, c *carrier.Carrier) error {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	dbModel := toCarrierModel(c)
	if err := r.db.conn(ctx).Create(dbModel).Error; err != nil {
		return translateWriteError(err, "create carrier", nil)
	}

	c.ID = dbModel.ID
	return nil
}

func (r *CarrierRepository) GetByID(ctx context.Context, id int64) (*carrier.Carrier, error) {
	var dbModel models.CarrierModel
	err := r.db.conn(ctx).Where("id = ?", id).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, carrier.ErrCarrierNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get carrier: %w", err)
	}

	return toCarrierEntity(&dbModel), nil
}

func (r *CarrierRepository) List(ctx context.Context, filter *carrier.Filter) ([]*carrier.Carrier, error) {
	var dbModels []models.CarrierModel

	db := r.db.conn(ctx).Model(&models.CarrierModel{})
	if filter != nil && filter.Search != "" {
		pattern := containsPattern(filter.Search)
		db = db.Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(vehicle_type) LIKE ? ESCAPE '\'`, pattern, pattern)
	}

	if err := db.Order("created_at DESC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list carriers: %w", err)
	}

	carriers := make([]*carrier.Carrier, len(dbModels))
	for i := range dbModels {
		carriers[i] = toCarrierEntity(&dbModels[i])
	}
	return carriers, nil
}

func (r *CarrierRepository) Update(ctx context.Context, c *carrier.Carrier) error {
	c.UpdatedAt = time.Now()

	result := r.db.conn(ctx).
		Model(&models.CarrierModel{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"name":           c.Name,
			"contact_person": c.ContactPerson,
			"phone":          c.Phone,
			"email":          c.Email,
			"address":        c.Address,
			"vehicle_type":   c.VehicleType,
			"notes":          c.Notes,
			"updated_at":     c.UpdatedAt,
		})

	if result.Error != nil {
		return translateWriteError(result.Error, "update carrier", nil)
	}
	if result.RowsAffected == 0 {
		return carrier.ErrCarrierNotFound
	}
	return nil
}

func toCarrierModel(c *carrier.Carrier) *models.CarrierModel {
	return &models.CarrierModel{
		ID:            c.ID,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Phone:         c.Phone,
		Email:         c.Email,
		Address:       c.Address,
		VehicleType:   c.VehicleType,
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toCarrierEntity(m *models.CarrierModel) *carrier.Carrier {
	return &carrier.Carrier{
		ID:            m.ID,
		Name:          m.Name,
		ContactPerson: m.ContactPerson,
		Phone:         m.Phone,
		Email:         m.Email,
		Address:       m.Address,
		VehicleType:   m.VehicleType,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
