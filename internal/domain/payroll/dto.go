package payroll

import (
	"github.com/kerjapedia/hrms-backend-go/internal/domain/employee"
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GeneratePayslipRequest struct {
	EmployeeID string `json:"employee_id"`
	Period     string `json:"period"`
}

func (r *GeneratePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Period) {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayslipResponse struct {
	ID              string                     `json:"id"`
	EmployeeID      string                     `json:"employee_id"`
	EmployeeName    string                     `json:"employee_name"`
	Period          string                     `json:"period"`
	BaseSalary      decimal.Decimal            `json:"base_salary"`
	Incomes         employee.PayrollComponents `json:"incomes"`
	Deductions      employee.PayrollComponents `json:"deductions"`
	TotalIncome     decimal.Decimal            `json:"total_income"`
	TotalDeductions decimal.Decimal            `json:"total_deductions"`
	NetSalary       decimal.Decimal            `json:"net_salary"`
	CreatedAt       string                     `json:"created_at"`
}
