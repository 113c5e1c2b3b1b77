package route

import "time"

const (
	MinProgress = 0
	MaxProgress = 100
)

// Route represents the transit plan and progress tracking of one order
type Route struct {
	ID         int64
	OrderID    int64
	VehicleID  *int64
	StartPoint string
	EndPoint   string
	Waypoints  []Waypoint
	Status     Status
	StartDate  *time.Time
	EndDate    *time.Time
	Progress   int
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Waypoint is a named intermediate stop, kept in travel order.
type Waypoint struct {
	Name            string     `json:"name" validate:"required,min=2,max=255"`
	Address         string     `json:"address,omitempty" validate:"omitempty,max=500"`
	ExpectedArrival *time.Time `json:"expectedArrival,omitempty"`
	ArrivedAt       *time.Time `json:"arrivedAt,omitempty"`
}

// ClampProgress bounds p to [MinProgress, MaxProgress].
func ClampProgress(p int) int {
	if p < MinProgress {
		return MinProgress
	}
	if p > MaxProgress {
		return MaxProgress
	}
	return p
}

// SetProgress stores p clamped to the allowed range.
func (r *Route) SetProgress(p int) {
	r.Progress = ClampProgress(p)
}

// ChangeStatus moves the route to next. Completing a route pins progress to 100.
func (r *Route) ChangeStatus(next Status) error {
	if next == r.Status {
		return nil
	}
	if err := ValidateStatusTransition(r.Status, next); err != nil {
		return err
	}

	r.Status = next
	if next == StatusCompleted {
		r.Progress = MaxProgress
	}
	return nil
}
