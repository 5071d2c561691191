package domain

import "time"

// EmployeeSession identifies the employee acting in the current session.
// It is carried explicitly (as the subject of the session token) instead
// of living in a mutable global slot; starting a new session simply
// supersedes the previous token.
type EmployeeSession struct {
	EmployeeID string    `json:"employeeID"`
	Name       string    `json:"name"`
	StartedAt  time.Time `json:"startedAt"`
}
