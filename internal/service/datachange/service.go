package datachange

import (
	"context"
	"fmt"
	"time"

	"github.com/kerjapedia/hrms-backend-go/internal/domain/datachange"
	"github.com/kerjapedia/hrms-backend-go/internal/domain/employee"
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/database"
)

const dateLayout = "2006-01-02"

type DataChangeServiceImpl struct {
	db           *database.DB
	requestRepo  datachange.DataChangeRequestRepository
	employeeRepo employee.EmployeeRepository
}

func NewDataChangeService(
	db *database.DB,
	requestRepo datachange.DataChangeRequestRepository,
	employeeRepo employee.EmployeeRepository,
) datachange.DataChangeService {
	return &DataChangeServiceImpl{
		db:           db,
		requestRepo:  requestRepo,
		employeeRepo: employeeRepo,
	}
}

// CreateRequest implements datachange.DataChangeService.
func (s *DataChangeServiceImpl) CreateRequest(ctx context.Context, employeeID string, req datachange.CreateDataChangeRequest) (datachange.DataChangeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return datachange.DataChangeResponse{}, err
	}

	newRequest := datachange.DataChangeRequest{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName,
		RequestDate:  time.Now(),
		Message:      req.Message,
		Status:       datachange.StatusPending,
	}

	created, err := s.requestRepo.Create(ctx, newRequest)
	if err != nil {
		return datachange.DataChangeResponse{}, fmt.Errorf("failed to create data change request: %w", err)
	}

	return toDataChangeResponse(created), nil
}

// ListByEmployee implements datachange.DataChangeService.
func (s *DataChangeServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]datachange.DataChangeResponse, error) {
	requests, err := s.requestRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list data change requests: %w", err)
	}
	return toDataChangeResponses(requests), nil
}

// ListRequests implements datachange.DataChangeService.
func (s *DataChangeServiceImpl) ListRequests(ctx context.Context, status *datachange.Status) ([]datachange.DataChangeResponse, error) {
	requests, err := s.requestRepo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list data change requests: %w", err)
	}
	return toDataChangeResponses(requests), nil
}

// Approve implements datachange.DataChangeService.
func (s *DataChangeServiceImpl) Approve(ctx context.Context, id string) (datachange.DataChangeResponse, error) {
	return s.resolve(ctx, id, datachange.StatusApproved)
}

// Reject implements datachange.DataChangeService.
func (s *DataChangeServiceImpl) Reject(ctx context.Context, id string) (datachange.DataChangeResponse, error) {
	return s.resolve(ctx, id, datachange.StatusRejected)
}

func (s *DataChangeServiceImpl) resolve(ctx context.Context, id string, status datachange.Status) (datachange.DataChangeResponse, error) {
	request, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return datachange.DataChangeResponse{}, err
	}
	if request.Status != datachange.StatusPending {
		return datachange.DataChangeResponse{}, datachange.ErrRequestAlreadyProcessed
	}

	// The conditional update is what actually decides the race: when two
	// admins resolve the same request, only one flips it out of pending.
	rowsAffected, err := s.requestRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return datachange.DataChangeResponse{}, err
	}
	if rowsAffected == 0 {
		return datachange.DataChangeResponse{}, datachange.ErrRequestAlreadyProcessed
	}

	request.Status = status
	return toDataChangeResponse(request), nil
}

func toDataChangeResponse(dcr datachange.DataChangeRequest) datachange.DataChangeResponse {
	return datachange.DataChangeResponse{
		ID:           dcr.ID,
		EmployeeID:   dcr.EmployeeID,
		EmployeeName: dcr.EmployeeName,
		RequestDate:  dcr.RequestDate.Format(dateLayout),
		Message:      dcr.Message,
		Status:       string(dcr.Status),
	}
}

func toDataChangeResponses(requests []datachange.DataChangeRequest) []datachange.DataChangeResponse {
	responses := make([]datachange.DataChangeResponse, 0, len(requests))
	for _, dcr := range requests {
		responses = append(responses, toDataChangeResponse(dcr))
	}
	return responses
}
