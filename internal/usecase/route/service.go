package route

import (
	"context"

	domainOrder "logistics-backoffice/internal/domain/order"
	domainRoute "logistics-backoffice/internal/domain/route"
	domainVehicle "logistics-backoffice/internal/domain/vehicle"
	"logistics-backoffice/internal/logger"
	"logistics-backoffice/internal/metrics"
	"logistics-backoffice/pkg/utils"

	"go.uber.org/zap"
)

// Service implements route use cases
type Service struct {
	routeRepo   domainRoute.Repository
	orderRepo   domainOrder.Repository
	vehicleRepo domainVehicle.Repository
}

func NewService(
	routeRepo domainRoute.Repository,
	orderRepo domainOrder.Repository,
	vehicleRepo domainVehicle.Repository,
) *Service {
	return &Service{
		routeRepo:   routeRepo,
		orderRepo:   orderRepo,
		vehicleRepo: vehicleRepo,
	}
}

func (s *Service) Create(ctx context.Context, req *CreateRouteRequest) (*RouteResponse, error) {
	req.Sanitize()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, &req.OrderID, req.VehicleID); err != nil {
		return nil, err
	}

	rt := &domainRoute.Route{
		OrderID:    req.OrderID,
		VehicleID:  req.VehicleID,
		StartPoint: req.StartPoint,
		EndPoint:   req.EndPoint,
		Waypoints:  req.Waypoints,
		Status:     domainRoute.StatusPending,
		StartDate:  req.StartDate.TimePtr(),
		EndDate:    req.EndDate.TimePtr(),
		Notes:      req.Notes,
	}
	if p := req.Progress.IntPtr(); p != nil {
		rt.SetProgress(*p)
	}

	if err := s.routeRepo.Create(ctx, rt); err != nil {
		return nil, err
	}

	logger.Info("Route created",
		zap.Int64("route_id", rt.ID),
		zap.Int64("order_id", rt.OrderID),
		zap.String("event", "route_created"),
	)

	return ToRouteResponse(rt), nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*RouteResponse, error) {
	rt, err := s.routeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToRouteResponse(rt), nil
}

func (s *Service) List(ctx context.Context, req *ListRoutesRequest) ([]*RouteResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	filter := &domainRoute.Filter{
		OrderID:   req.OrderID,
		VehicleID: req.VehicleID,
	}
	if req.Status != nil {
		filter.Statuses = []domainRoute.Status{*req.Status}
	}

	routes, err := s.routeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToRouteResponses(routes), nil
}

// ListActive returns routes that are pending or under way.
func (s *Service) ListActive(ctx context.Context) ([]*RouteResponse, error) {
	routes, err := s.routeRepo.List(ctx, &domainRoute.Filter{Statuses: domainRoute.ActiveStatuses})
	if err != nil {
		return nil, err
	}
	return ToRouteResponses(routes), nil
}

func (s *Service) ListByOrder(ctx context.Context, orderID int64) ([]*RouteResponse, error) {
	if _, err := s.orderRepo.GetByID(ctx, orderID); err != nil {
		return nil, err
	}
	return s.List(ctx, &ListRoutesRequest{OrderID: &orderID})
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateRouteRequest) (*RouteResponse, error) {
	req.Sanitize()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	rt, err := s.routeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var orderID, vehicleID *int64
	if req.OrderID != nil && *req.OrderID != rt.OrderID {
		orderID = req.OrderID
	}
	if req.VehicleID != nil && (rt.VehicleID == nil || *req.VehicleID != *rt.VehicleID) {
		vehicleID = req.VehicleID
	}
	if err := s.checkReferences(ctx, orderID, vehicleID); err != nil {
		return nil, err
	}

	previous := rt.Status
	req.ApplyTo(rt)
	if req.Status != nil {
		if err := rt.ChangeStatus(*req.Status); err != nil {
			return nil, err
		}
	}

	if err := s.routeRepo.Update(ctx, rt); err != nil {
		return nil, err
	}

	if rt.Status != previous {
		metrics.StatusTransitions.WithLabelValues("route", string(previous), string(rt.Status)).Inc()
	}

	logger.Info("Route updated",
		zap.Int64("route_id", rt.ID),
		zap.String("status", string(rt.Status)),
		zap.Int("progress", rt.Progress),
		zap.String("event", "route_updated"),
	)

	return ToRouteResponse(rt), nil
}

func (s *Service) checkReferences(ctx context.Context, orderID, vehicleID *int64) error {
	if orderID != nil {
		if _, err := s.orderRepo.GetByID(ctx, *orderID); err != nil {
			return err
		}
	}
	if vehicleID != nil {
		if _, err := s.vehicleRepo.GetByID(ctx, *vehicleID); err != nil {
			return err
		}
	}
	return nil
}
