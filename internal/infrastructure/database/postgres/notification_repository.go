package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics-backoffice/internal/domain/notification"
	"logistics-backoffice/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *DB
}

func NewNotificationRepository(db *DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	now := time.Now()
	n.CreatedAt = now
	n.UpdatedAt = now
	if n.Type == "" {
		n.Type = notification.TypeInfo
	}

	dbModel := toNotificationModel(n)
	if err := r.db.conn(ctx).Create(dbModel).Error; err != nil {
		return translateWriteError(err, "create notification", nil)
	}

	n.ID = dbModel.ID
	return nil
}

func (r *NotificationRepository) GetByID(ctx context.Context, id int64) (*notification.Notification, error) {
	var dbModel models.NotificationModel
	err := r.db.conn(ctx).Where("id = ?", id).First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notification.ErrNotificationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	return toNotificationEntity(&dbModel), nil
}

func (r *NotificationRepository) List(ctx context.Context, filter *notification.Filter) ([]*notification.Notification, error) {
	var dbModels []models.NotificationModel

	db := r.db.conn(ctx).Model(&models.NotificationModel{})
	if filter != nil {
		if filter.UserID != nil {
			db = db.Where("user_id = ?", *filter.UserID)
		}
		if filter.OrderID != nil {
			db = db.Where("related_order_id = ?", *filter.OrderID)
		}
		if filter.UnreadOnly {
			db = db.Where("is_read = ?", false)
		}
	}

	if err := db.Order("created_at DESC").Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	notifications := make([]*notification.Notification, len(dbModels))
	for i := range dbModels {
		notifications[i] = toNotificationEntity(&dbModels[i])
	}
	return notifications, nil
}

func (r *NotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	n.UpdatedAt = time.Now()

	result := r.db.conn(ctx).
		Model(&models.NotificationModel{}).
		Where("id = ?", n.ID).
		Updates(map[string]interface{}{
			"title":            n.Title,
			"message":          n.Message,
			"type":             string(n.Type),
			"is_read":          n.IsRead,
			"related_order_id": n.RelatedOrderID,
			"updated_at":       n.UpdatedAt,
		})

	if result.Error != nil {
		return translateWriteError(result.Error, "update notification", nil)
	}
	if result.RowsAffected == 0 {
		return notification.ErrNotificationNotFound
	}
	return nil
}

// MarkAllRead flags every unread notification of userID and reports how many changed.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	result := r.db.conn(ctx).
		Model(&models.NotificationModel{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{
			"is_read":    true,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func toNotificationModel(n *notification.Notification) *models.NotificationModel {
	return &models.NotificationModel{
		ID:             n.ID,
		UserID:         n.UserID,
		Title:          n.Title,
		Message:        n.Message,
		Type:           string(n.Type),
		IsRead:         n.IsRead,
		RelatedOrderID: n.RelatedOrderID,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
	}
}

func toNotificationEntity(m *models.NotificationModel) *notification.Notification {
	return &notification.Notification{
		ID:             m.ID,
		UserID:         m.UserID,
		Title:          m.Title,
		Message:        m.Message,
		Type:           notification.Type(m.Type),
		IsRead:         m.IsRead,
		RelatedOrderID: m.RelatedOrderID,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
