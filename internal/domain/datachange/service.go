package datachange

import "context"

type DataChangeService interface {
	// CreateRequest files a free-text correction request for the employee.
	CreateRequest(ctx context.Context, employeeID string, req CreateDataChangeRequest) (DataChangeResponse, error)

	// ListByEmployee returns one employee's requests, newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]DataChangeResponse, error)

	// ListRequests returns all requests, optionally filtered by status (admin only).
	ListRequests(ctx context.Context, status *Status) ([]DataChangeResponse, error)

	// Approve marks a pending request as approved.
	Approve(ctx context.Context, id string) (DataChangeResponse, error)

	// Reject marks a pending request as rejected.
	Reject(ctx context.Context, id string) (DataChangeResponse, error)
}
