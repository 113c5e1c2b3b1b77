package vehicle

import (
	"context"

	domainCarrier "logistics-backoffice/internal/domain/carrier"
	domainVehicle "logistics-backoffice/internal/domain/vehicle"
	"logistics-backoffice/internal/logger"
	"logistics-backoffice/pkg/utils"

	"go.uber.org/zap"
)

// Service implements vehicle use cases
type Service struct {
	vehicleRepo domainVehicle.Repository
	carrierRepo domainCarrier.Repository
}

func NewService(vehicleRepo domainVehicle.Repository, carrierRepo domainCarrier.Repository) *Service {
	return &Service{
		vehicleRepo: vehicleRepo,
		carrierRepo: carrierRepo,
	}
}

func (s *Service) Create(ctx context.Context, req *CreateVehicleRequest) (*VehicleResponse, error) {
	req.Sanitize()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	if _, err := s.carrierRepo.GetByID(ctx, req.CarrierID); err != nil {
		return nil, err
	}

	v := &domainVehicle.Vehicle{
		CarrierID:       req.CarrierID,
		Type:            req.Type,
		RegNumber:       req.RegNumber,
		DriverName:      req.DriverName,
		DriverPhone:     req.DriverPhone,
		Status:          domainVehicle.StatusAvailable,
		MaintenanceDate: req.MaintenanceDate.TimePtr(),
	}
	if req.Status != nil {
		v.Status = *req.Status
	}

	if err := s.vehicleRepo.Create(ctx, v); err != nil {
		return nil, err
	}

	logger.Info("Vehicle created",
		zap.Int64("vehicle_id", v.ID),
		zap.Int64("carrier_id", v.CarrierID),
		zap.String("event", "vehicle_created"),
	)

	return ToVehicleResponse(v), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*VehicleResponse, error) {
	v, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToVehicleResponse(v), nil
}

func (s *Service) List(ctx context.Context, req *ListVehiclesRequest) ([]*VehicleResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	vehicles, err := s.vehicleRepo.List(ctx, &domainVehicle.Filter{
		CarrierID: req.CarrierID,
		Status:    req.Status,
	})
	if err != nil {
		return nil, err
	}
	return ToVehicleResponses(vehicles), nil
}

// ListByCarrier returns the carrier's vehicles, or the carrier's not-found error.
func (s *Service) ListByCarrier(ctx context.Context, carrierID int64) ([]*VehicleResponse, error) {
	if _, err := s.carrierRepo.GetByID(ctx, carrierID); err != nil {
		return nil, err
	}
	return s.List(ctx, &ListVehiclesRequest{CarrierID: &carrierID})
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateVehicleRequest) (*VehicleResponse, error) {
	req.Sanitize()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	v, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CarrierID != nil && *req.CarrierID != v.CarrierID {
		if _, err := s.carrierRepo.GetByID(ctx, *req.CarrierID); err != nil {
			return nil, err
		}
	}

	req.ApplyTo(v)
	if err := s.vehicleRepo.Update(ctx, v); err != nil {
		return nil, err
	}

	logger.Info("Vehicle updated",
		zap.Int64("vehicle_id", v.ID),
		zap.String("status", string(v.Status)),
		zap.String("event", "vehicle_updated"),
	)

	return ToVehicleResponse(v), nil
}
