package dto

import (
	"time"

	"github.com/yalejo-dev/gyie_backend/internal/core/domain"
)

// CreateClientRequest is the payload for registering a client or employee.
type CreateClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// UpdateEmployeeRequest is the payload for editing an employee's details.
type UpdateEmployeeRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID   string    `json:"clientID"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	IsEmployee bool      `json:"isEmployee"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToClientResponse converts a domain.Client to its DTO.
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:   c.ClientID,
		Name:       c.Name,
		Phone:      c.Phone,
		Notes:      c.Notes,
		IsEmployee: c.IsEmployee,
		CreatedAt:  c.CreatedAt,
	}
}

// ToClientResponses converts a slice of domain clients.
func ToClientResponses(cs []domain.Client) []ClientResponse {
	responses := make([]ClientResponse, len(cs))
	for i := range cs {
		responses[i] = ToClientResponse(&cs[i])
	}
	return responses
}
