package carrier

import (
	"context"

	domainCarrier "logistics-backoffice/internal/domain/carrier"
	"logistics-backoffice/internal/logger"
	"logistics-backoffice/pkg/utils"

	"go.uber.org/zap"
)

// Service implements carrier use cases
type Service struct {
	carrierRepo domainCarrier.Repository
}

func NewService(carrierRepo domainCarrier.Repository) *Service {
	return &Service{carrierRepo: carrierRepo}
}

func (s *Service) Create(ctx context.Context, req *CreateCarrierRequest) (*CarrierResponse, error) {
	req.Sanitize()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	c := &domainCarrier.Carrier{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		VehicleType:   req.VehicleType,
		Notes:         req.Notes,
	}
	if err := s.carrierRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	logger.Info("Carrier created",
		zap.Int64("carrier_id", c.ID),
		zap.String("event", "carrier_created"),
	)

	return ToCarrierResponse(c), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*CarrierResponse, error) {
	c, err := s.carrierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToCarrierResponse(c), nil
}

func (s *Service) List(ctx context.Context, req *ListCarriersRequest) ([]*CarrierResponse, error) {
	carriers, err := s.carrierRepo.List(ctx, &domainCarrier.Filter{
		Search: utils.SanitizeString(req.Search),
	})
	if err != nil {
		return nil, err
	}
	return ToCarrierResponses(carriers), nil
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateCarrierRequest) (*CarrierResponse, error) {
	req.Sanitize()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	c, err := s.carrierRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(c)
	if err := s.carrierRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	logger.Info("Carrier updated",
		zap.Int64("carrier_id", c.ID),
		zap.String("event", "carrier_updated"),
	)

	return ToCarrierResponse(c), nil
}
