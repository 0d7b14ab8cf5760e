package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/kerjapedia/hrms-backend-go/internal/domain/employee"
	"github.com/kerjapedia/hrms-backend-go/internal/domain/payroll"
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/database"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	db           *database.DB
	payslipRepo  payroll.PayslipRepository
	employeeRepo employee.EmployeeRepository
}

func NewPayrollService(
	db *database.DB,
	payslipRepo payroll.PayslipRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:           db,
		payslipRepo:  payslipRepo,
		employeeRepo: employeeRepo,
	}
}

// ComputeTotals derives the three payslip totals from a base salary and the
// income and deduction components.
func ComputeTotals(base decimal.Decimal, incomes, deductions employee.PayrollComponents) (totalIncome, totalDeductions, netSalary decimal.Decimal) {
	totalIncome = base
	for _, c := range incomes {
		totalIncome = totalIncome.Add(c.Amount)
	}

	totalDeductions = decimal.Zero
	for _, c := range deductions {
		totalDeductions = totalDeductions.Add(c.Amount)
	}

	return totalIncome, totalDeductions, totalIncome.Sub(totalDeductions)
}

// GeneratePayslip implements payroll.PayrollService. The snapshot copies the
// employee's payroll configuration as it stands; later configuration changes
// never touch it.
func (s *PayrollServiceImpl) GeneratePayslip(ctx context.Context, req payroll.GeneratePayslipRequest) (payroll.PayslipResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	exists, err := s.payslipRepo.ExistsByEmployeeAndPeriod(ctx, req.EmployeeID, req.Period)
	if err != nil {
		return payroll.PayslipResponse{}, fmt.Errorf("failed to check existing payslip: %w", err)
	}
	if exists {
		return payroll.PayslipResponse{}, payroll.ErrPayslipAlreadyExists
	}

	info := emp.PayrollInfo
	totalIncome, totalDeductions, netSalary := ComputeTotals(info.BaseSalary, info.Incomes, info.Deductions)

	snapshot := payroll.Payslip{
		EmployeeID:      emp.ID,
		EmployeeName:    emp.FullName,
		Period:          req.Period,
		BaseSalary:      info.BaseSalary,
		Incomes:         info.Incomes,
		Deductions:      info.Deductions,
		TotalIncome:     totalIncome,
		TotalDeductions: totalDeductions,
		NetSalary:       netSalary,
	}

	// The unique (employee, period) index still backstops concurrent runs.
	created, err := s.payslipRepo.Create(ctx, snapshot)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	return toPayslipResponse(created), nil
}

// GetPayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, id string) (payroll.PayslipResponse, error) {
	payslip, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	return toPayslipResponse(payslip), nil
}

// ListPayslips implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayslips(ctx context.Context, period *string) ([]payroll.PayslipResponse, error) {
	payslips, err := s.payslipRepo.List(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	return toPayslipResponses(payslips), nil
}

// ListByEmployee implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.PayslipResponse, error) {
	payslips, err := s.payslipRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	return toPayslipResponses(payslips), nil
}

func toPayslipResponse(p payroll.Payslip) payroll.PayslipResponse {
	return payroll.PayslipResponse{
		ID:              p.ID,
		EmployeeID:      p.EmployeeID,
		EmployeeName:    p.EmployeeName,
		Period:          p.Period,
		BaseSalary:      p.BaseSalary,
		Incomes:         p.Incomes,
		Deductions:      p.Deductions,
		TotalIncome:     p.TotalIncome,
		TotalDeductions: p.TotalDeductions,
		NetSalary:       p.NetSalary,
		CreatedAt:       p.CreatedAt.Format(time.RFC3339),
	}
}

func toPayslipResponses(payslips []payroll.Payslip) []payroll.PayslipResponse {
	responses := make([]payroll.PayslipResponse, 0, len(payslips))
	for _, p := range payslips {
		responses = append(responses, toPayslipResponse(p))
	}
	return responses
}
