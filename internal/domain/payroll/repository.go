package payroll

import "context"

type PayslipRepository interface {
	Create(ctx context.Context, payslip Payslip) (Payslip, error)
	GetByID(ctx context.Context, id string) (Payslip, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]Payslip, error)
	List(ctx context.Context, period *string) ([]Payslip, error)
	ExistsByEmployeeAndPeriod(ctx context.Context, employeeID, period string) (bool, error)
}
