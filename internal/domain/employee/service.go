package employee

import (
	"context"
	"io"
)

type EmployeeService interface {
	// CreateEmployee creates an employee plus a linked employee-role user
	// account in one transaction (admin only).
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID.
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ListEmployees returns employees, optionally filtered to active ones.
	ListEmployees(ctx context.Context, activeOnly bool) ([]EmployeeResponse, error)

	// UpdateEmployee applies a partial update and syncs the linked user's
	// name and email in the same transaction (admin only).
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// UpdatePayrollInfo replaces the employee's payroll configuration.
	// Already generated payslips are not touched.
	UpdatePayrollInfo(ctx context.Context, req UpdatePayrollInfoRequest) (EmployeeResponse, error)

	// UploadAvatar stores a profile photo and records its URL.
	UploadAvatar(ctx context.Context, employeeID string, file io.Reader, filename string) (EmployeeResponse, error)

	// DeleteEmployee removes an employee record (admin only).
	DeleteEmployee(ctx context.Context, id string) error
}
