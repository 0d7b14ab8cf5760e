package datachange

import "context"

type DataChangeRequestRepository interface {
	Create(ctx context.Context, req DataChangeRequest) (DataChangeRequest, error)
	GetByID(ctx context.Context, id string) (DataChangeRequest, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]DataChangeRequest, error)
	List(ctx context.Context, status *Status) ([]DataChangeRequest, error)
	UpdateStatus(ctx context.Context, id string, status Status) (int64, error)
}
