package transportation

import (
	"context"

	domainCarrier "logistics-backoffice/internal/domain/carrier"
	"logistics-backoffice/internal/domain/event"
	domainOrder "logistics-backoffice/internal/domain/order"
	domainTR "logistics-backoffice/internal/domain/transportation"
	"logistics-backoffice/internal/logger"
	"logistics-backoffice/internal/metrics"
	"logistics-backoffice/pkg/utils"

	"go.uber.org/zap"
)

// Service implements transportation request use cases
type Service struct {
	requestRepo domainTR.Repository
	orderRepo   domainOrder.Repository
	carrierRepo domainCarrier.Repository
	publisher   event.Publisher
}

func NewService(
	requestRepo domainTR.Repository,
	orderRepo domainOrder.Repository,
	carrierRepo domainCarrier.Repository,
	publisher event.Publisher,
) *Service {
	return &Service{
		requestRepo: requestRepo,
		orderRepo:   orderRepo,
		carrierRepo: carrierRepo,
		publisher:   publisher,
	}
}

func (s *Service) Create(ctx context.Context, req *CreateRequestRequest) (*RequestResponse, error) {
	req.Sanitize()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, &req.OrderID, &req.CarrierID); err != nil {
		return nil, err
	}

	tr := &domainTR.Request{
		OrderID:       req.OrderID,
		CarrierID:     req.CarrierID,
		RequestNumber: req.RequestNumber,
		Description:   req.Description,
		CargoDetails:  req.CargoDetails,
		Price:         req.Price,
		Status:        domainTR.StatusPending,
		RequestDate:   req.RequestDate.Time,
		DeliveryDate:  req.DeliveryDate.TimePtr(),
		Notes:         req.Notes,
	}

	if err := s.requestRepo.Create(ctx, tr); err != nil {
		return nil, err
	}

	logger.Info("Transportation request created",
		zap.Int64("request_id", tr.ID),
		zap.Int64("order_id", tr.OrderID),
		zap.Int64("carrier_id", tr.CarrierID),
		zap.String("event", "transportation_request_created"),
	)

	return ToRequestResponse(tr), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*RequestResponse, error) {
	tr, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToRequestResponse(tr), nil
}

func (s *Service) List(ctx context.Context, req *ListRequestsRequest) ([]*RequestResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	requests, err := s.requestRepo.List(ctx, &domainTR.Filter{
		OrderID:   req.OrderID,
		CarrierID: req.CarrierID,
		Status:    req.Status,
	})
	if err != nil {
		return nil, err
	}
	return ToRequestResponses(requests), nil
}

func (s *Service) ListByOrder(ctx context.Context, orderID int64) ([]*RequestResponse, error) {
	if _, err := s.orderRepo.GetByID(ctx, orderID); err != nil {
		return nil, err
	}
	return s.List(ctx, &ListRequestsRequest{OrderID: &orderID})
}

func (s *Service) ListByCarrier(ctx context.Context, carrierID int64) ([]*RequestResponse, error) {
	if _, err := s.carrierRepo.GetByID(ctx, carrierID); err != nil {
		return nil, err
	}
	return s.List(ctx, &ListRequestsRequest{CarrierID: &carrierID})
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateRequestRequest) (*RequestResponse, error) {
	req.Sanitize()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	tr, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var orderID, carrierID *int64
	if req.OrderID != nil && *req.OrderID != tr.OrderID {
		orderID = req.OrderID
	}
	if req.CarrierID != nil && *req.CarrierID != tr.CarrierID {
		carrierID = req.CarrierID
	}
	if err := s.checkReferences(ctx, orderID, carrierID); err != nil {
		return nil, err
	}

	previous := tr.Status
	req.ApplyTo(tr)
	if req.Status != nil {
		if err := tr.ChangeStatus(*req.Status); err != nil {
			return nil, err
		}
	}

	if err := s.requestRepo.Update(ctx, tr); err != nil {
		return nil, err
	}

	s.statusChanged(ctx, tr, previous)
	return ToRequestResponse(tr), nil
}

// Accept, Reject, Complete and Cancel are shortcuts for a status-only update.
func (s *Service) Accept(ctx context.Context, id int64) (*RequestResponse, error) {
	return s.transition(ctx, id, domainTR.StatusAccepted)
}

func (s *Service) Reject(ctx context.Context, id int64) (*RequestResponse, error) {
	return s.transition(ctx, id, domainTR.StatusRejected)
}

func (s *Service) Complete(ctx context.Context, id int64) (*RequestResponse, error) {
	return s.transition(ctx, id, domainTR.StatusCompleted)
}

func (s *Service) Cancel(ctx context.Context, id int64) (*RequestResponse, error) {
	return s.transition(ctx, id, domainTR.StatusCancelled)
}

func (s *Service) transition(ctx context.Context, id int64, next domainTR.Status) (*RequestResponse, error) {
	tr, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := tr.Status
	if err := tr.ChangeStatus(next); err != nil {
		return nil, err
	}
	if tr.Status == previous {
		return ToRequestResponse(tr), nil
	}

	if err := s.requestRepo.Update(ctx, tr); err != nil {
		return nil, err
	}

	s.statusChanged(ctx, tr, previous)
	return ToRequestResponse(tr), nil
}

func (s *Service) statusChanged(ctx context.Context, tr *domainTR.Request, previous domainTR.Status) {
	if tr.Status == previous {
		logger.Info("Transportation request updated", zap.Int64("request_id", tr.ID))
		return
	}

	metrics.StatusTransitions.WithLabelValues("transportation_request", string(previous), string(tr.Status)).Inc()
	logger.Info("Transportation request status changed",
		zap.Int64("request_id", tr.ID),
		zap.String("from", string(previous)),
		zap.String("to", string(tr.Status)),
		zap.String("event", "transportation_request_status_changed"),
	)

	e := event.TransportationRequestStatusChanged(tr.ID, string(previous), string(tr.Status))
	if err := s.publisher.Publish(ctx, e); err != nil {
		logger.Warn("Failed to publish event", zap.String("topic", e.Topic), zap.Error(err))
	}
}

func (s *Service) checkReferences(ctx context.Context, orderID, carrierID *int64) error {
	if orderID != nil {
		if _, err := s.orderRepo.GetByID(ctx, *orderID); err != nil {
			return err
		}
	}
	if carrierID != nil {
		if _, err := s.carrierRepo.GetByID(ctx, *carrierID); err != nil {
			return err
		}
	}
	return nil
}
