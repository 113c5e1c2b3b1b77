package vehicle

import "time"

// Status is the operational state of a vehicle
type Status string

const (
	StatusAvailable   Status = "available"
	StatusActive      Status = "active"
	StatusMaintenance Status = "maintenance"
	StatusInactive    Status = "inactive"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusActive, StatusMaintenance, StatusInactive:
		return true
	}
	return false
}

// Vehicle belongs to exactly one carrier
type Vehicle struct {
	ID              int64
	CarrierID       int64
	Type            string
	RegNumber       string
	DriverName      *string
	DriverPhone     *string
	Status          Status
	MaintenanceDate *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
