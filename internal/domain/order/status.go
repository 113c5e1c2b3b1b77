package order

import appErrors "logistics-backoffice/pkg/errors"

// Status represents the lifecycle state of an order
type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusWaiting   Status = "waiting"
	StatusActive    Status = "active"
	StatusInTransit Status = "in_transit"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every known order status in display order.
var Statuses = []Status{
	StatusPending,
	StatusPreparing,
	StatusWaiting,
	StatusActive,
	StatusInTransit,
	StatusCompleted,
	StatusCancelled,
}

var validTransitions = map[Status][]Status{
	StatusPending:   {StatusPreparing, StatusWaiting, StatusActive, StatusInTransit, StatusCancelled},
	StatusPreparing: {StatusWaiting, StatusActive, StatusInTransit, StatusCancelled},
	StatusWaiting:   {StatusPreparing, StatusActive, StatusInTransit, StatusCancelled},
	StatusActive:    {StatusInTransit, StatusCompleted, StatusCancelled},
	StatusInTransit: {StatusActive, StatusCompleted, StatusCancelled},
	StatusCompleted: {
		// Terminal state - no transitions
	},
	StatusCancelled: {
		// Terminal state - no transitions
	},
}

func (s Status) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

// IsActive reports whether the order counts as active on the dashboard.
func (s Status) IsActive() bool {
	return s == StatusActive
}

// ValidateStatusTransition checks if status transition is allowed
func ValidateStatusTransition(current, next Status) error {
	allowed, exists := validTransitions[current]
	if !exists {
		return appErrors.NewTransitionError("order", string(current), string(next))
	}

	for _, s := range allowed {
		if s == next {
			return nil
		}
	}

	return appErrors.NewTransitionError("order", string(current), string(next))
}

// GetAllowedTransitions returns allowed next statuses
func GetAllowedTransitions(current Status) []Status {
	return validTransitions[current]
}
