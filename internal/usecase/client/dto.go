package client

import (
	"time"

	domainClient "logistics-backoffice/internal/domain/client"
	"logistics-backoffice/pkg/utils"
)

// Request DTOs
type CreateClientRequest struct {
	Name          string  `json:"name" validate:"required,min=2,max=255"`
	ContactPerson *string `json:"contactPerson" validate:"omitempty,max=255"`
	Phone         *string `json:"phone" validate:"omitempty,phone"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Address       *string `json:"address" validate:"omitempty,max=500"`
	Notes         *string `json:"notes" validate:"omitempty,max=2000"`
}

type UpdateClientRequest struct {
	Name          *string `json:"name" validate:"omitnil,min=2,max=255"`
	ContactPerson *string `json:"contactPerson" validate:"omitempty,max=255"`
	Phone         *string `json:"phone" validate:"omitempty,phone"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Address       *string `json:"address" validate:"omitempty,max=500"`
	Notes         *string `json:"notes" validate:"omitempty,max=2000"`
}

type ListClientsRequest struct {
	Search string `form:"search"`
}

func (r *CreateClientRequest) Sanitize() {
	r.Name = utils.SanitizeString(r.Name)
	r.ContactPerson = utils.SanitizeOptional(r.ContactPerson)
	r.Phone = utils.SanitizeOptionalPhone(r.Phone)
	r.Email = utils.SanitizeOptionalEmail(r.Email)
	r.Address = utils.SanitizeOptional(r.Address)
	r.Notes = utils.SanitizeOptionalText(r.Notes)
}

func (r *UpdateClientRequest) Sanitize() {
	r.Name = utils.SanitizeOptional(r.Name)
	r.ContactPerson = utils.SanitizeOptional(r.ContactPerson)
	r.Phone = utils.SanitizeOptionalPhone(r.Phone)
	r.Email = utils.SanitizeOptionalEmail(r.Email)
	r.Address = utils.SanitizeOptional(r.Address)
	r.Notes = utils.SanitizeOptionalText(r.Notes)
}

// ApplyTo overlays the supplied fields onto c.
func (r *UpdateClientRequest) ApplyTo(c *domainClient.Client) {
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
	if r.Notes != nil {
		c.Notes = r.Notes
	}
}

// Response DTOs
type ClientResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	ContactPerson *string   `json:"contactPerson"`
	Phone         *string   `json:"phone"`
	Email         *string   `json:"email"`
	Address       *string   `json:"address"`
	Notes         *string   `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func ToClientResponse(c *domainClient.Client) *ClientResponse {
	return &ClientResponse{
		ID:            c.ID,
		Name:          c.Name,
		ContactPerson: c.ContactPerson,
		Phone:         c.Phone,
		Email:         c.Email,
		Address:       c.Address,
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func ToClientResponses(clients []*domainClient.Client) []*ClientResponse {
	out := make([]*ClientResponse, len(clients))
	for i, c := range clients {
		out[i] = ToClientResponse(c)
	}
	return out
}
