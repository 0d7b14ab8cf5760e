package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByNIP(ctx context.Context, nip string) (Employee, error)
	List(ctx context.Context, activeOnly bool) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (int64, error)
	UpdatePayrollInfo(ctx context.Context, employeeID string, info PayrollInfo) (int64, error)
	UpdateAvatarURL(ctx context.Context, employeeID, avatarURL string) error
	// AdjustLeaveBalance adds delta (may be negative) to the stored balance and
	// returns the number of rows affected.
	AdjustLeaveBalance(ctx context.Context, employeeID string, delta int) (int64, error)
	Delete(ctx context.Context, id string) error
}
