package notification

import (
	"time"

	domainNotification "logistics-backoffice/internal/domain/notification"
	"logistics-backoffice/pkg/utils"
)

type CreateNotificationRequest struct {
	UserID         int64                    `json:"userId" validate:"required,gt=0"`
	Title          string                   `json:"title" validate:"required,min=1,max=255"`
	Message        string                   `json:"message" validate:"required,min=1,max=5000"`
	Type           *domainNotification.Type `json:"type" validate:"omitnil,oneof=info success warning message"`
	RelatedOrderID *int64                   `json:"relatedOrderId" validate:"omitnil,gt=0"`
}

type UpdateNotificationRequest struct {
	Title          *string                  `json:"title" validate:"omitnil,min=1,max=255"`
	Message        *string                  `json:"message" validate:"omitnil,min=1,max=5000"`
	Type           *domainNotification.Type `json:"type" validate:"omitnil,oneof=info success warning message"`
	IsRead         *bool                    `json:"isRead"`
	RelatedOrderID *int64                   `json:"relatedOrderId" validate:"omitnil,gt=0"`
}

type ListNotificationsRequest struct {
	UserID     *int64 `form:"userId" validate:"omitnil,gt=0"`
	OrderID    *int64 `form:"orderId" validate:"omitnil,gt=0"`
	UnreadOnly bool   `form:"unread"`
}

func (r *CreateNotificationRequest) Sanitize() {
	r.Title = utils.SanitizeString(r.Title)
	r.Message = utils.SanitizeText(r.Message)
}

func (r *UpdateNotificationRequest) Sanitize() {
	r.Title = utils.SanitizeOptional(r.Title)
	r.Message = utils.SanitizeOptionalText(r.Message)
}

func (r *UpdateNotificationRequest) ApplyTo(n *domainNotification.Notification) {
	if r.Title != nil {
		n.Title = *r.Title
	}
	if r.Message != nil {
		n.Message = *r.Message
	}
	if r.Type != nil {
		n.Type = *r.Type
	}
	if r.IsRead != nil {
		n.IsRead = *r.IsRead
	}
	if r.RelatedOrderID != nil {
		n.RelatedOrderID = r.RelatedOrderID
	}
}

type NotificationResponse struct {
	ID             int64                   `json:"id"`
	UserID         int64                   `json:"userId"`
	Title          string                  `json:"title"`
	Message        string                  `json:"message"`
	Type           domainNotification.Type `json:"type"`
	IsRead         bool                    `json:"isRead"`
	RelatedOrderID *int64                  `json:"relatedOrderId"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

func ToNotificationResponse(n *domainNotification.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:             n.ID,
		UserID:         n.UserID,
		Title:          n.Title,
		Message:        n.Message,
		Type:           n.Type,
		IsRead:         n.IsRead,
		RelatedOrderID: n.RelatedOrderID,
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
	}
}

func ToNotificationResponses(notifications []*domainNotification.Notification) []*NotificationResponse {
	out := make([]*NotificationResponse, len(notifications))
	for i, n := range notifications {
		out[i] = ToNotificationResponse(n)
	}
	return out
}
