package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents a single freight shipment engagement with a client
type Order struct {
	ID          int64
	OrderNumber string

	// Parties
	ClientID  int64
	CarrierID *int64
	ManagerID *int64

	// Route description and addresses
	Route              *string
	OriginAddress      string
	DestinationAddress string

	Status Status

	// Cargo and money
	Weight *string
	Volume *string
	Price  *decimal.Decimal
	Cost   *decimal.Decimal

	OrderDate    time.Time
	DeliveryDate *time.Time

	Details Details
	Notes   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Details holds the auxiliary sender/recipient/cargo data and the status timeline.
type Details struct {
	Sender    *Party          `json:"sender,omitempty"`
	Recipient *Party          `json:"recipient,omitempty"`
	Cargo     *Cargo          `json:"cargo,omitempty"`
	Timeline  []TimelineEntry `json:"timeline"`
}

type Party struct {
	Name          string `json:"name,omitempty" validate:"omitempty,max=255"`
	ContactPerson string `json:"contactPerson,omitempty" validate:"omitempty,max=255"`
	Phone         string `json:"phone,omitempty" validate:"omitempty,phone"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	Address       string `json:"address,omitempty" validate:"omitempty,max=500"`
}

type Cargo struct {
	Description     string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Packaging       string `json:"packaging,omitempty" validate:"omitempty,max=255"`
	Places          int    `json:"places,omitempty" validate:"omitempty,min=0"`
	Weight          string `json:"weight,omitempty" validate:"omitempty,max=100"`
	Volume          string `json:"volume,omitempty" validate:"omitempty,max=100"`
	Dangerous       bool   `json:"dangerous,omitempty"`
	TemperatureMode string `json:"temperatureMode,omitempty" validate:"omitempty,max=100"`
}

type TimelineEntry struct {
	Status Status    `json:"status"`
	Date   time.Time `json:"date"`
	Note   string    `json:"note,omitempty"`
}

// ChangeStatus moves the order to next, recording the change in the timeline.
// Setting the current status again is a no-op.
func (o *Order) ChangeStatus(next Status, at time.Time, note string) error {
	if next == o.Status {
		return nil
	}
	if err := ValidateStatusTransition(o.Status, next); err != nil {
		return err
	}

	o.Status = next
	o.Details.Timeline = append(o.Details.Timeline, TimelineEntry{
		Status: next,
		Date:   at,
		Note:   note,
	})
	return nil
}
