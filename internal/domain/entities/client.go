package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// ClientStatus represents the relationship stage with a client
type ClientStatus string

const (
	ClientStatusLead     ClientStatus = "lead"
	ClientStatusActive   ClientStatus = "active"
	ClientStatusArchived ClientStatus = "archived"
)

// Client represents a client/customer record
type Client struct {
	ID          uuid.UUID    `json:"id"`
	UserID      uuid.UUID    `json:"userId"`
	Company     string       `json:"company"`
	ContactName string       `json:"contactName"`
	Email       string       `json:"email"`
	Phone       null.String  `json:"phone,omitempty"`
	Address     null.String  `json:"address,omitempty"`
	Status      ClientStatus `json:"status"`
	Notes       null.String  `json:"notes,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	DeletedAt   null.Time    `json:"-"`
}
