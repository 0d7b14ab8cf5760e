package payroll

import "context"

type PayrollService interface {
	// GeneratePayslip materializes an immutable payslip snapshot from the
	// employee's current payroll configuration (admin only). One payslip
	// per employee and period.
	GeneratePayslip(ctx context.Context, req GeneratePayslipRequest) (PayslipResponse, error)

	// GetPayslip retrieves a single payslip by ID.
	GetPayslip(ctx context.Context, id string) (PayslipResponse, error)

	// ListPayslips returns payslips, optionally filtered by period (admin only).
	ListPayslips(ctx context.Context, period *string) ([]PayslipResponse, error)

	// ListByEmployee returns one employee's payslips, newest period first.
	ListByEmployee(ctx context.Context, employeeID string) ([]PayslipResponse, error)
}
