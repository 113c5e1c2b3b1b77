package carrier

import "time"

// Carrier represents a third-party transport provider
type Carrier struct {
	ID            int64
	Name          string
	ContactPerson *string
	Phone         *string
	Email         *string
	Address       *string
	VehicleType   *string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
