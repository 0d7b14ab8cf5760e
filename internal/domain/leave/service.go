package leave

import (
	"context"
	"io"
)

type LeaveService interface {
	// CreateRequest files a new leave request in pending state.
	CreateRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)

	// GetRequest retrieves a single leave request by ID.
	GetRequest(ctx context.Context, id string) (LeaveRequestResponse, error)

	// ListRequests returns all leave requests, optionally filtered by status
	// (admin only).
	ListRequests(ctx context.Context, status *LeaveRequestStatus) ([]LeaveRequestResponse, error)

	// ListByEmployee returns one employee's leave requests.
	ListByEmployee(ctx context.Context, employeeID string, status *LeaveRequestStatus) ([]LeaveRequestResponse, error)

	// Approve flips a pending request to approved. Approving an annual
	// request deducts its working days from the employee's balance in the
	// same transaction.
	Approve(ctx context.Context, id string) (LeaveRequestResponse, error)

	// AttachDocument uploads a supporting document and links it to the
	// request, replacing any document attached before.
	AttachDocument(ctx context.Context, id string, file io.Reader, filename string) (LeaveRequestResponse, error)

	// Reject flips a pending request to rejected with a mandatory reason.
	Reject(ctx context.Context, id string, req RejectLeaveRequestRequest) (LeaveRequestResponse, error)

	// GetSummary computes the read-only leave balance view for an employee.
	GetSummary(ctx context.Context, employeeID string) (Summary, error)
}
