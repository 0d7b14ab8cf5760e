package leave

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kerjapedia/hrms-backend-go/internal/domain/employee"
	"github.com/kerjapedia/hrms-backend-go/internal/domain/leave"
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/database"
	"github.com/kerjapedia/hrms-backend-go/internal/repository/postgresql"
	"github.com/kerjapedia/hrms-backend-go/internal/service/file"
)

const dateLayout = "2006-01-02"

type LeaveServiceImpl struct {
	db           *database.DB
	leaveRepo    leave.LeaveRequestRepository
	employeeRepo employee.EmployeeRepository
	fileService  file.FileService
}

func NewLeaveService(
	db *database.DB,
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	fileService file.FileService,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:           db,
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		fileService:  fileService,
	}
}

// CreateRequest implements leave.LeaveService. The handler resolves the
// target employee before calling in, so EmployeeID is always set here.
func (s *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if req.EmployeeID == nil {
		return leave.LeaveRequestResponse{}, employee.ErrEmployeeNotFound
	}

	emp, err := s.employeeRepo.GetByID(ctx, *req.EmployeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, _ := time.Parse(dateLayout, req.StartDate)
	endDate, _ := time.Parse(dateLayout, req.EndDate)

	newRequest := leave.LeaveRequest{
		EmployeeID:         emp.ID,
		EmployeeName:       emp.FullName,
		Type:               leave.LeaveType(req.Type),
		StartDate:          startDate,
		EndDate:            endDate,
		Reason:             req.Reason,
		Status:             leave.LeaveRequestStatusPending,
		SupportingDocument: req.SupportingDocument,
	}

	created, err := s.leaveRepo.Create(ctx, newRequest)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return s.toResponse(ctx, created), nil
}

// GetRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) GetRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return s.toResponse(ctx, request), nil
}

// ListRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListRequests(ctx context.Context, status *leave.LeaveRequestStatus) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.leaveRepo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return s.toResponses(ctx, requests), nil
}

// ListByEmployee implements leave.LeaveService.
func (s *LeaveServiceImpl) ListByEmployee(ctx context.Context, employeeID string, status *leave.LeaveRequestStatus) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.leaveRepo.GetByEmployeeID(ctx, employeeID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return s.toResponses(ctx, requests), nil
}

// Approve implements leave.LeaveService. The status flip and the balance
// deduction for annual leave commit or roll back together; a vanished
// employee row fails the whole approval.
func (s *LeaveServiceImpl) Approve(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	var approved leave.LeaveRequest

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		request, err := s.leaveRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if request.Status != leave.LeaveRequestStatusPending {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		if err := s.leaveRepo.UpdateStatus(txCtx, id, leave.LeaveRequestStatusApproved, nil); err != nil {
			return fmt.Errorf("failed to update leave request status: %w", err)
		}

		if request.Type == leave.LeaveTypeAnnual {
			days := WorkingDays(request.StartDate, request.EndDate)
			rowsAffected, err := s.employeeRepo.AdjustLeaveBalance(txCtx, request.EmployeeID, -days)
			if err != nil {
				return fmt.Errorf("failed to deduct leave balance: %w", err)
			}
			if rowsAffected == 0 {
				return employee.ErrEmployeeNotFound
			}
		}

		approved, err = s.leaveRepo.GetByID(txCtx, id)
		return err
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return s.toResponse(ctx, approved), nil
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, id string, req leave.RejectLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if req.RejectionReason == "" {
		return leave.LeaveRequestResponse{}, leave.ErrRejectionReasonRequired
	}

	var rejected leave.LeaveRequest

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		request, err := s.leaveRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if request.Status != leave.LeaveRequestStatusPending {
			return leave.ErrLeaveRequestAlreadyProcessed
		}

		if err := s.leaveRepo.UpdateStatus(txCtx, id, leave.LeaveRequestStatusRejected, &req.RejectionReason); err != nil {
			return fmt.Errorf("failed to update leave request status: %w", err)
		}

		rejected, err = s.leaveRepo.GetByID(txCtx, id)
		return err
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return s.toResponse(ctx, rejected), nil
}

// GetSummary implements leave.LeaveService. The summary is read-only and
// recomputed on every call; it never writes the stored balance.
func (s *LeaveServiceImpl) GetSummary(ctx context.Context, employeeID string) (leave.Summary, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return leave.Summary{}, err
	}

	approved, err := s.leaveRepo.GetApprovedByType(ctx, employeeID, leave.LeaveTypeAnnual)
	if err != nil {
		return leave.Summary{}, fmt.Errorf("failed to get approved leave requests: %w", err)
	}

	taken := 0
	for _, request := range approved {
		taken += WorkingDays(request.StartDate, request.EndDate)
	}

	holidays := NationalHolidayCount(time.Now().Year())

	return leave.Summary{
		InitialAllotment:    employee.DefaultLeaveBalance,
		NationalHolidays:    holidays,
		ApprovedLeaveTaken:  taken,
		CurrentBalance:      emp.LeaveBalance,
		CalculatedRemaining: employee.DefaultLeaveBalance - holidays - taken,
	}, nil
}

// AttachDocument implements leave.LeaveService.
func (s *LeaveServiceImpl) AttachDocument(ctx context.Context, id string, f io.Reader, filename string) (leave.LeaveRequestResponse, error) {
	request, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	path, err := s.fileService.UploadLeaveAttachment(ctx, request.EmployeeID, f, filename)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to upload supporting document: %w", err)
	}

	if err := s.leaveRepo.SetSupportingDocument(ctx, id, path); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if request.SupportingDocument != nil && *request.SupportingDocument != "" {
		// Best effort; an orphaned file never blocks the replacement.
		_ = s.fileService.DeleteFile(ctx, *request.SupportingDocument)
	}

	request.SupportingDocument = &path
	return s.toResponse(ctx, request), nil
}

func (s *LeaveServiceImpl) toResponse(ctx context.Context, lr leave.LeaveRequest) leave.LeaveRequestResponse {
	// The stored value is a storage path; expose the public URL.
	var document *string
	if lr.SupportingDocument != nil && *lr.SupportingDocument != "" {
		if url, err := s.fileService.GetFileURL(ctx, *lr.SupportingDocument, 0); err == nil {
			document = &url
		} else {
			document = lr.SupportingDocument
		}
	}
	resp := toLeaveRequestResponse(lr)
	resp.SupportingDocument = document
	return resp
}

func (s *LeaveServiceImpl) toResponses(ctx context.Context, requests []leave.LeaveRequest) []leave.LeaveRequestResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, lr := range requests {
		responses = append(responses, s.toResponse(ctx, lr))
	}
	return responses
}

func toLeaveRequestResponse(lr leave.LeaveRequest) leave.LeaveRequestResponse {
	return leave.LeaveRequestResponse{
		ID:                 lr.ID,
		EmployeeID:         lr.EmployeeID,
		EmployeeName:       lr.EmployeeName,
		Type:               string(lr.Type),
		StartDate:          lr.StartDate.Format(dateLayout),
		EndDate:            lr.EndDate.Format(dateLayout),
		WorkingDays:        WorkingDays(lr.StartDate, lr.EndDate),
		Reason:             lr.Reason,
		Status:             string(lr.Status),
		SupportingDocument: lr.SupportingDocument,
		RejectionReason:    lr.RejectionReason,
		CreatedAt:          lr.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          lr.UpdatedAt.Format(time.RFC3339),
	}
}

