package leave

import "context"

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	GetByEmployeeID(ctx context.Context, employeeID string, status *LeaveRequestStatus) ([]LeaveRequest, error)
	List(ctx context.Context, status *LeaveRequestStatus) ([]LeaveRequest, error)
	// GetApprovedByType returns approved requests of one leave type for an employee.
	GetApprovedByType(ctx context.Context, employeeID string, leaveType LeaveType) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status LeaveRequestStatus, rejectionReason *string) error
	SetSupportingDocument(ctx context.Context, id string, path string) error
}
