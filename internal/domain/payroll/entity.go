package payroll

import (
	"time"

	"github.com/kerjapedia/hrms-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// Payslip is an immutable snapshot generated by an explicit payroll run.
// Later changes to the employee's payroll configuration never touch it.
type Payslip struct {
	ID              string
	EmployeeID      string
	EmployeeName    string
	Period          string // e.g. "2026-01" or "Januari 2026"
	BaseSalary      decimal.Decimal
	Incomes         employee.PayrollComponents
	Deductions      employee.PayrollComponents
	TotalIncome     decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
	CreatedAt       time.Time
}
