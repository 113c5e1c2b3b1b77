package event

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=event.go -destination=mocks/mock_event.go -package=mocks

// Event is a message published after a state change has been committed.
// Topic is relative; publishers add their own prefix.
type Event struct {
	Topic   string
	Payload interface{}
}

// Publisher delivers events on a best-effort basis.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// StatusChange is the payload of the *StatusChanged events.
type StatusChange struct {
	ID   int64  `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
}

func NotificationCreated(userID int64, payload interface{}) Event {
	return Event{Topic: fmt.Sprintf("notifications/%d", userID), Payload: payload}
}

func OrderStatusChanged(orderID int64, from, to string) Event {
	return Event{
		Topic:   fmt.Sprintf("orders/%d/status", orderID),
		Payload: StatusChange{ID: orderID, From: from, To: to},
	}
}

func TransportationRequestStatusChanged(requestID int64, from, to string) Event {
	return Event{
		Topic:   fmt.Sprintf("transportation-requests/%d/status", requestID),
		Payload: StatusChange{ID: requestID, From: from, To: to},
	}
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error {
	return nil
}
