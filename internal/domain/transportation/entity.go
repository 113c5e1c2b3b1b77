package transportation

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request is a transport offer sent to a carrier for one order
type Request struct {
	ID            int64
	OrderID       int64
	CarrierID     int64
	RequestNumber string
	Description   *string
	CargoDetails  *string
	Price         *decimal.Decimal
	Status        Status
	RequestDate   time.Time
	DeliveryDate  *time.Time
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ChangeStatus moves the request to next. Setting the current status again is a no-op.
func (r *Request) ChangeStatus(next Status) error {
	if next == r.Status {
		return nil
	}
	if err := ValidateStatusTransition(r.Status, next); err != nil {
		return err
	}
	r.Status = next
	return nil
}
