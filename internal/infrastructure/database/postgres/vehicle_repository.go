package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics-backoffice/internal/domain/vehicle"
	"logistics-backoffice/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

type VehicleRepository struct {
	db *DB
}

func NewVehicleRepository(db *DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, v *vehicle.Vehicle) error {
	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now
	if v.Status == "" {
		v.Status = vehicle.StatusAvailable
	}

	dbModel := toVehicleModel(v)
	if err := r.db.conn(ctx).Create(dbModel).Error; err != nil {
		return translateWriteError(err, "create vehicle", nil)
	}

	v.ID = dbModel.ID
	return nil
}

func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (*vehicle.Vehicle, error) {
	var dbModel models.VehicleModel
	err := r.db.conn(ctx).Where("id = ?", id).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, vehicle.ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return toVehicleEntity(&dbModel), nil
}

func (r *VehicleRepository) List(ctx context.Context, filter *vehicle.Filter) ([]*vehicle.Vehicle, error) {
	var dbModels []models.VehicleModel

	db := r.db.conn(ctx).Model(&models.VehicleModel{})
	if filter != nil {
		if filter.CarrierID != nil {
			db = db.Where("carrier_id = ?", *filter.CarrierID)
		}
		if filter.Status != nil {
			db = db.Where("status = ?", string(*filter.Status))
		}
	}

	if err := db.Order("created_at DESC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	vehicles := make([]*vehicle.Vehicle, len(dbModels))
	for i := range dbModels {
		vehicles[i] = toVehicleEntity(&dbModels[i])
	}
	return vehicles, nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	v.UpdatedAt = time.Now()

	result := r.db.conn(ctx).
		Model(&models.VehicleModel{}).
		Where("id = ?", v.ID).
		Updates(map[string]interface{}{
			"carrier_id":       v.CarrierID,
			"type":             v.Type,
			"reg_number":       v.RegNumber,
			"driver_name":      v.DriverName,
			"driver_phone":     v.DriverPhone,
			"status":           string(v.Status),
			"maintenance_date": v.MaintenanceDate,
			"updated_at":       v.UpdatedAt,
		})

	if result.Error != nil {
		return translateWriteError(result.Error, "update vehicle", nil)
	}
	if result.RowsAffected == 0 {
		return vehicle.ErrVehicleNotFound
	}
	return nil
}

func toVehicleModel(v *vehicle.Vehicle) *models.VehicleModel {
	return &models.VehicleModel{
		ID:              v.ID,
		CarrierID:       v.CarrierID,
		Type:            v.Type,
		RegNumber:       v.RegNumber,
		DriverName:      v.DriverName,
		DriverPhone:     v.DriverPhone,
		Status:          string(v.Status),
		MaintenanceDate: v.MaintenanceDate,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func toVehicleEntity(m *models.VehicleModel) *vehicle.Vehicle {
	return &vehicle.Vehicle{
		ID:              m.ID,
		CarrierID:       m.CarrierID,
		Type:            m.Type,
		RegNumber:       m.RegNumber,
		DriverName:      m.DriverName,
		DriverPhone:     m.DriverPhone,
		Status:          vehicle.Status(m.Status),
		MaintenanceDate: m.MaintenanceDate,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
