package client

import "time"

// Client represents a customer company that places orders
type Client struct {
	ID            int64
	Name          string
	ContactPerson *string
	Phone         *string
	Email         *string
	Address       *string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
