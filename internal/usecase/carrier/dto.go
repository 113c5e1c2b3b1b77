package carrier

import (
	"time"

	domainCarrier "logistics-backoffice/internal/domain/carrier"
	"logistics-backoffice/pkg/utils"
)

// Request DTOs
type CreateCarrierRequest struct {
	Name          string  `json:"name" validate:"required,min=2,max=255"`
	ContactPerson *string `json:"contactPerson" validate:"omitempty,max=255"`
	Phone         *string `json:"phone" validate:"omitempty,phone"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Address       *string `json:"address" validate:"omitempty,max=500"`
	VehicleType   *string `json:"vehicleType" validate:"omitempty,max=100"`
	Notes         *string `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateCarrierRequest struct {
	Name          *string `json:"name" validate:"omitnil,min=2,max=255"`
	ContactPerson *string `json:"contactPerson" validate:"omitempty,max=255"`
	Phone         *string `json:"phone" validate:"omitempty,phone"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Address       *string `json:"address" validate:"omitempty,max=500"`
	VehicleType   *string `json:"vehicleType" validate:"omitempty,max=100"`
	Notes         *string `json:"notes" validate:"omitempty,max=2000"`
}

type ListCarriersRequest struct {
	Search string `form:"search"`
}

func (r *CreateCarrierRequest) Sanitize() {
	r.Name = utils.SanitizeString(r.Name)
	r.ContactPerson = utils.SanitizeOptional(r.ContactPerson)
	r.Phone = utils.SanitizeOptionalPhone(r.Phone)
	r.Email = utils.SanitizeOptionalEmail(r.Email)
	r.Address = utils.SanitizeOptional(r.Address)
	r.VehicleType = utils.SanitizeOptional(r.VehicleType)
	r.Notes = utils.SanitizeOptionalText(r.Notes)
}

func (r *UpdateCarrierRequest) Sanitize() {
	r.Name = utils.SanitizeOptional(r.Name)
	r.ContactPerson = utils.SanitizeOptional(r.ContactPerson)
	r.Phone = utils.SanitizeOptionalPhone(r.Phone)
	r.Email = utils.SanitizeOptionalEmail(r.Email)
	r.Address = utils.SanitizeOptional(r.Address)
	r.VehicleType = utils.SanitizeOptional(r.VehicleType)
	r.Notes = utils.SanitizeOptionalText(r.Notes)
}

func (r *UpdateCarrierRequest) ApplyTo(c *domainCarrier.Carrier) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.ContactPerson != nil {
		c.ContactPerson = r.ContactPerson
	}
	if r.Phone != nil {
		c.Phone = r.Phone
	}
	if r.Email != nil {
		c.Email = r.Email
	}
	if r.Address != nil {
		c.Address = r.Address
	}
	if r.VehicleType != nil {
		c.VehicleType = r.VehicleType
	}
	if r.Notes != nil {
		c.Notes = r.Notes
	}
}

// Response DTOs
type CarrierResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	ContactPerson *string   `json:"contactPerson"`
	Phone         *string   `json:"phone"`
	Email         *string   `json:"email"`
	Address       *string   `json:"address"`
	VehicleType   *string   `json:"vehicleType"`
	Notes         *string   `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func ToCarrierResponse(c *domainCarrier.Carrier) *CarrierResponse {
	return &CarrierResponse{
		ID:            c.ID,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Phone:         c.Phone,
		Email:         c.Email,
		Address:       c.Address,
		VehicleType:   c.VehicleType,
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func ToCarrierResponses(carriers []*domainCarrier.Carrier) []*CarrierResponse {
	out := make([]*CarrierResponse, len(carriers))
	for i, c := range carriers {
		out[i] = ToCarrierResponse(c)
	}
	return out
}
