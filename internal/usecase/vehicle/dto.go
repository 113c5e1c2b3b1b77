package vehicle

import (
	"time"

	domainVehicle "logistics-backoffice/internal/domain/vehicle"
	"logistics-backoffice/pkg/types"
	"logistics-backoffice/pkg/utils"
)

// Request DTOs
type CreateVehicleRequest struct {
	CarrierID       int64                 `json:"carrierId" validate:"required,gt=0"`
	Type            string                `json:"type" validate:"required,max=100"`
	RegNumber       string                `json:"regNumber" validate:"required,max=50"`
	DriverName      *string               `json:"driverName" validate:"omitempty,max=255"`
	DriverPhone     *string               `json:"driverPhone" validate:"omitempty,phone"`
	Status          *domainVehicle.Status `json:"status" validate:"omitnil,oneof=available active maintenance inactive"`
	MaintenanceDate *types.Date           `json:"maintenanceDate"`
}

type UpdateVehicleRequest struct {
	CarrierID       *int64                `json:"carrierId" validate:"omitnil,gt=0"`
	Type            *string               `json:"type" validate:"omitnil,min=1,max=100"`
	RegNumber       *string               `json:"regNumber" validate:"omitnil,min=1,max=50"`
	DriverName      *string               `json:"driverName" validate:"omitempty,max=255"`
	DriverPhone     *string               `json:"driverPhone" validate:"omitempty,phone"`
	Status          *domainVehicle.Status `json:"status" validate:"omitnil,oneof=available active maintenance inactive"`
	MaintenanceDate *types.Date           `json:"maintenanceDate"`
}

type ListVehiclesRequest struct {
	CarrierID *int64                `form:"carrierId" validate:"omitnil,gt=0"`
	Status    *domainVehicle.Status `form:"status" validate:"omitnil,oneof=available active maintenance inactive"`
}

func (r *CreateVehicleRequest) Sanitize() {
	r.Type = utils.SanitizeString(r.Type)
	r.RegNumber = utils.SanitizeString(r.RegNumber)
	r.DriverName = utils.SanitizeOptional(r.DriverName)
	r.DriverPhone = utils.SanitizeOptionalPhone(r.DriverPhone)
}

func (r *UpdateVehicleRequest) Sanitize() {
	r.Type = utils.SanitizeOptional(r.Type)
	r.RegNumber = utils.SanitizeOptional(r.RegNumber)
	r.DriverName = utils.SanitizeOptional(r.DriverName)
	r.DriverPhone = utils.SanitizeOptionalPhone(r.DriverPhone)
}

func (r *UpdateVehicleRequest) ApplyTo(v *domainVehicle.Vehicle) {
	if r.CarrierID != nil {
		v.CarrierID = *r.CarrierID
	}
	if r.Type != nil {
		v.Type = *r.Type
	}
	if r.RegNumber != nil {
		v.RegNumber = *r.RegNumber
	}
	if r.DriverName != nil {
		v.DriverName = r.DriverName
	}
	if r.DriverPhone != nil {
		v.DriverPhone = r.DriverPhone
	}
	if r.Status != nil {
		v.Status = *r.Status
	}
	if r.MaintenanceDate != nil {
		v.MaintenanceDate = r.MaintenanceDate.TimePtr()
	}
}

// Response DTOs
type VehicleResponse struct {
	ID              int64                `json:"id"`
	CarrierID       int64                `json:"carrierId"`
	Type            string               `json:"type"`
	RegNumber       string               `json:"regNumber"`
	DriverName      *string              `json:"driverName"`
	DriverPhone     *string              `json:"driverPhone"`
	Status          domainVehicle.Status `json:"status"`
	MaintenanceDate *time.Time           `json:"maintenanceDate"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

func ToVehicleResponse(v *domainVehicle.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:              v.ID,
		CarrierID:       v.CarrierID,
		Type:            v.Type,
		RegNumber:       v.RegNumber,
		DriverName:      v.DriverName,
		DriverPhone:     v.DriverPhone,
		Status:          v.Status,
		MaintenanceDate: v.MaintenanceDate,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func ToVehicleResponses(vehicles []*domainVehicle.Vehicle) []*VehicleResponse {
	out := make([]*VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		out[i] = ToVehicleResponse(v)
	}
	return out
}
