package notification

import (
	"context"

	"logistics-backoffice/internal/domain/event"
	domainNotification "logistics-backoffice/internal/domain/notification"
	domainOrder "logistics-backoffice/internal/domain/order"
	domainUser "logistics-backoffice/internal/domain/user"
	"logistics-backoffice/internal/logger"
	"logistics-backoffice/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	notificationRepo domainNotification.Repository
	userRepo         domainUser.Repository
	orderRepo        domainOrder.Repository
	publisher        event.Publisher
}

func NewService(
	notificationRepo domainNotification.Repository,
	userRepo domainUser.Repository,
	orderRepo domainOrder.Repository,
	publisher event.Publisher,
) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		orderRepo:        orderRepo,
		publisher:        publisher,
	}
}

func (s *Service) Create(ctx context.Context, req *CreateNotificationRequest) (*NotificationResponse, error) {
	req.Sanitize()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, err
	}
	if req.RelatedOrderID != nil {
		if _, err := s.orderRepo.GetByID(ctx, *req.RelatedOrderID); err != nil {
			return nil, err
		}
	}

	n := &domainNotification.Notification{
		UserID:         req.UserID,
		Title:          req.Title,
		Message:        req.Message,
		Type:           domainNotification.TypeInfo,
		RelatedOrderID: req.RelatedOrderID,
	}
	if req.Type != nil {
		n.Type = *req.Type
	}

	if err := s.notificationRepo.Create(ctx, n); err != nil {
		return nil, err
	}

	logger.Info("Notification created",
		zap.Int64("notification_id", n.ID),
		zap.Int64("user_id", n.UserID),
		zap.String("event", "notification_created"),
	)

	resp := ToNotificationResponse(n)
	e := event.NotificationCreated(n.UserID, resp)
	if err := s.publisher.Publish(ctx, e); err != nil {
		logger.Warn("Failed to publish event", zap.String("topic", e.Topic), zap.Error(err))
	}

	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*NotificationResponse, error) {
	n, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToNotificationResponse(n), nil
}

func (s *Service) List(ctx context.Context, req *ListNotificationsRequest) ([]*NotificationResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	notifications, err := s.notificationRepo.List(ctx, &domainNotification.Filter{
		UserID:     req.UserID,
		OrderID:    req.OrderID,
		UnreadOnly: req.UnreadOnly,
	})
	if err != nil {
		return nil, err
	}
	return ToNotificationResponses(notifications), nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64, req *ListNotificationsRequest) ([]*NotificationResponse, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.List(ctx, &ListNotificationsRequest{UserID: &userID, UnreadOnly: req.UnreadOnly})
}

func (s *Service) Update(ctx context.Context, id int64, req *UpdateNotificationRequest) (*NotificationResponse, error) {
	req.Sanitize()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	n, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RelatedOrderID != nil && (n.RelatedOrderID == nil || *req.RelatedOrderID != *n.RelatedOrderID) {
		if _, err := s.orderRepo.GetByID(ctx, *req.RelatedOrderID); err != nil {
			return nil, err
		}
	}

	req.ApplyTo(n)
	if err := s.notificationRepo.Update(ctx, n); err != nil {
		return nil, err
	}

	logger.Info("Notification updated",
		zap.Int64("notification_id", n.ID),
		zap.String("event", "notification_updated"),
	)
	return ToNotificationResponse(n), nil
}

// MarkRead flags one notification as read. Marking it again is a no-op.
func (s *Service) MarkRead(ctx context.Context, id int64) (*NotificationResponse, error) {
	n, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n.IsRead {
		return ToNotificationResponse(n), nil
	}

	n.IsRead = true
	if err := s.notificationRepo.Update(ctx, n); err != nil {
		return nil, err
	}
	return ToNotificationResponse(n), nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID int64) (*MarkAllReadResponse, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	updated, err := s.notificationRepo.MarkAllRead(ctx, userID)
	if err != nil {
		return nil, err
	}

	logger.Info("Notifications marked read",
		zap.Int64("user_id", userID),
		zap.Int64("updated", updated),
	)
	return &MarkAllReadResponse{Updated: updated}, nil
}
