package transportation

import appErrors "logistics-backoffice/pkg/errors"

// Status represents the lifecycle state of a transportation request
type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var Statuses = []Status{StatusPending, StatusAccepted, StatusRejected, StatusCompleted, StatusCancelled}

var validTransitions = map[Status][]Status{
	StatusPending:  {StatusAccepted, StatusRejected, StatusCancelled},
	StatusAccepted: {StatusCompleted, StatusCancelled},
	StatusRejected: {
		// Terminal state - no transitions
	},
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

// ValidateStatusTransition checks if status transition is allowed
func ValidateStatusTransition(current, next Status) error {
	for _, s := range validTransitions[current] {
		if s == next {
			return nil
		}
	}
	return appErrors.NewTransitionError("transportation request", string(current), string(next))
}

func GetAllowedTransitions(current Status) []Status {
	return validTransitions[current]
}
