package route

import appErrors "logistics-backoffice/pkg/errors"

// Status represents the lifecycle state of a route
type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var Statuses = []Status{StatusPending, StatusActive, StatusCompleted, StatusCancelled}

// ActiveStatuses are the statuses shown in the "active routes" view.
var ActiveStatuses = []Status{StatusActive, StatusPending}

var validTransitions = map[Status][]Status{
	StatusPending:   {StatusActive, StatusCancelled},
	StatusActive:    {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

func (s Status) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

func (s Status) IsActive() bool {
	for _, a := range ActiveStatuses {
		if s == a {
			return true
		}
	}
	return false
}

// ValidateStatusTransition checks if status transition is allowed
func ValidateStatusTransition(current, next Status) error {
	for _, s := range validTransitions[current] {
		if s == next {
			return nil
		}
	}
	return appErrors.NewTransitionError("route", string(current), string(next))
}

func GetAllowedTransitions(current Status) []Status {
	return validTransitions[current]
}
