package datachange

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// DataChangeRequest is a free-text request from an employee asking HR to
// correct their stored personal data.
type DataChangeRequest struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	RequestDate  time.Time
	Message      string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
