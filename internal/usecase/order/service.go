package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainCarrier "logistics-backoffice/internal/domain/carrier"
	domainClient "logistics-backoffice/internal/domain/client"
	"logistics-backoffice/internal/domain/event"
	domainNotification "logistics-backoffice/internal/domain/notification"
	domainOrder "logistics-backoffice/internal/domain/order"
	domainRoute "logistics-backoffice/internal/domain/route"
	"logistics-backoffice/internal/domain/transaction"
	domainUser "logistics-backoffice/internal/domain/user"
	domainVehicle "logistics-backoffice/internal/domain/vehicle"
	"logistics-backoffice/internal/logger"
	"logistics-backoffice/internal/metrics"
	"logistics-backoffice/pkg/utils"

	"go.uber.org/zap"
)

// Repositories groups the stores the order use cases touch.
type Repositories struct {
	Orders        domainOrder.Repository
	Clients       domainClient.Repository
	Carriers      domainCarrier.Repository
	Users         domainUser.Repository
	Vehicles      domainVehicle.Repository
	Routes        domainRoute.Repository
	Notifications domainNotification.Repository
}

// Service implements order use cases
type Service struct {
	repos     Repositories
	tx        transaction.Manager
	publisher event.Publisher
	now       func() time.Time
}

func NewService(repos Repositories, tx transaction.Manager, publisher event.Publisher) *Service {
	return &Service{
		repos:     repos,
		tx:        tx,
		publisher: publisher,
		now:       time.Now,
	}
}

// Create inserts the order, the manager notification and the optional initial route
// in one transaction. Events are published only after commit.
func (s *Service) Create(ctx context.Context, req *CreateOrderRequest) (*OrderResponse, error) {
	req.Sanitize()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, &req.ClientID, req.CarrierID, req.ManagerID); err != nil {
		return nil, err
	}
	if req.InitialRoute != nil && req.InitialRoute.VehicleID != nil {
		if _, err := s.repos.Vehicles.GetByID(ctx, *req.InitialRoute.VehicleID); err != nil {
			return nil, err
		}
	}

	now := s.now()
	o := &domainOrder.Order{
		OrderNumber:        req.OrderNumber,
		ClientID:           req.ClientID,
		CarrierID:          req.CarrierID,
		ManagerID:          req.ManagerID,
		Route:              req.Route,
		OriginAddress:      req.OriginAddress,
		DestinationAddress: req.DestinationAddress,
		Status:             domainOrder.StatusPending,
		Weight:             req.Weight,
		Volume:             req.Volume,
		Price:              req.Price,
		Cost:               req.Cost,
		OrderDate:          req.OrderDate.Time,
		DeliveryDate:       req.DeliveryDate.TimePtr(),
		Notes:              req.Notes,
		Details: domainOrder.Details{
			Timeline: []domainOrder.TimelineEntry{
				{Status: domainOrder.StatusPending, Date: now, Note: "Order created"},
			},
		},
	}
	req.Details.applyTo(&o.Details)

	var (
		managerNote *domainNotification.Notification
		route       *domainRoute.Route
	)
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.repos.Orders.Create(ctx, o); err != nil {
			return err
		}

		if o.ManagerID != nil {
			managerNote = &domainNotification.Notification{
				UserID:         *o.ManagerID,
				Title:          "New order assigned",
				Message:        fmt.Sprintf("Order %s has been assigned to you", o.OrderNumber),
				Type:           domainNotification.TypeInfo,
				RelatedOrderID: &o.ID,
			}
			if err := s.repos.Notifications.Create(ctx, managerNote); err != nil {
				return fmt.Errorf("failed to notify manager: %w", err)
			}
		}

		if ir := req.InitialRoute; ir != nil {
			route = &domainRoute.Route{
				OrderID:    o.ID,
				VehicleID:  ir.VehicleID,
				StartPoint: ir.StartPoint,
				EndPoint:   ir.EndPoint,
				Waypoints:  ir.Waypoints,
				Status:     domainRoute.StatusPending,
			}
			if err := s.repos.Routes.Create(ctx, route); err != nil {
				return fmt.Errorf("failed to create initial route: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Order created",
		zap.Int64("order_id", o.ID),
		zap.String("order_number", o.OrderNumber),
		zap.Int64("client_id", o.ClientID),
		zap.Bool("with_route", route != nil),
		zap.String("event", "order_created"),
	)

	if managerNote != nil {
		s.publish(ctx, event.NotificationCreated(managerNote.UserID, managerNote))
	}

	resp := ToOrderResponse(o)
	if route != nil {
		resp.InitialRoute = &InitialRouteResponse{ID: route.ID, Status: route.Status}
	}
	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*OrderResponse, error) {
	o, err := s.repos.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(o), nil
}

func (s *Service) List(ctx context.Context, req *ListOrdersRequest) ([]*OrderResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	orders, err := s.repos.Orders.List(ctx, &domainOrder.Filter{
		Status:    req.Status,
		ClientID:  req.ClientID,
		CarrierID: req.CarrierID,
		ManagerID: req.ManagerID,
	})
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders), nil
}

// ListByClient returns the client's orders, or the client's not-found error.
func (s *Service) ListByClient(ctx context.Context, clientID int64) ([]*OrderResponse, error) {
	if _, err := s.repos.Clients.GetByID(ctx, clientID); err != nil {
		return nil, err
	}
	return s.List(ctx, &ListOrdersRequest{ClientID: &clientID})
}

// Update merges the supplied fields. A status change must be allowed by the
// transition table and is appended to the order timeline.
func (s *Service) Update(ctx context.Context, id int64, req *UpdateOrderRequest) (*OrderResponse, error) {
	req.Sanitize()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	o, err := s.repos.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	clientID := changed(req.ClientID, &o.ClientID)
	if err := s.checkReferences(ctx, clientID, changed(req.CarrierID, o.CarrierID), changed(req.ManagerID, o.ManagerID)); err != nil {
		return nil, err
	}

	previous := o.Status
	req.ApplyTo(o)
	if req.Status != nil {
		note := ""
		if req.StatusNote != nil {
			note = *req.StatusNote
		}
		if err := o.ChangeStatus(*req.Status, s.now(), note); err != nil {
			return nil, err
		}
	}

	if err := s.repos.Orders.Update(ctx, o); err != nil {
		return nil, err
	}

	logger.Info("Order updated",
		zap.Int64("order_id", o.ID),
		zap.String("status", string(o.Status)),
		zap.String("event", "order_updated"),
	)

	if o.Status != previous {
		metrics.StatusTransitions.WithLabelValues("order", string(previous), string(o.Status)).Inc()
		s.publish(ctx, event.OrderStatusChanged(o.ID, string(previous), string(o.Status)))
	}

	return ToOrderResponse(o), nil
}

// checkReferences verifies that every referenced parent row exists.
// Nil ids are skipped.
func (s *Service) checkReferences(ctx context.Context, clientID, carrierID, managerID *int64) error {
	if clientID != nil {
		if _, err := s.repos.Clients.GetByID(ctx, *clientID); err != nil {
			return err
		}
	}
	if carrierID != nil {
		if _, err := s.repos.Carriers.GetByID(ctx, *carrierID); err != nil {
			return err
		}
	}
	if managerID != nil {
		if _, err := s.repos.Users.GetByID(ctx, *managerID); err != nil {
			if errors.Is(err, domainUser.ErrUserNotFound) {
				return domainOrder.ErrManagerNotFound
			}
			return err
		}
	}
	return nil
}

func (s *Service) publish(ctx context.Context, e event.Event) {
	if err := s.publisher.Publish(ctx, e); err != nil {
		logger.Warn("Event not delivered",
			zap.String("topic", e.Topic),
			zap.Error(err),
		)
	}
}

// changed returns next when it differs from current, nil otherwise.
func changed(next, current *int64) *int64 {
	if next == nil || (current != nil && *next == *current) {
		return nil
	}
	return next
}
