package domain

import "time"

// Client represents a person the shop does business with. Employees are
// clients with the IsEmployee flag set; removing an employee only clears
// the flag so historical transactions keep resolving to a valid client.
type Client struct {
	ClientID   string    `json:"clientID"` // Primary Key (UUID)
	Name       string    `json:"name"`
	Phone      string    `json:"phone,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	IsEmployee bool      `json:"isEmployee"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
