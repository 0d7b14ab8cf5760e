package payroll

import (
	"testing"

	"github.com/kerjapedia/hrms-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	base := decimal.NewFromInt(5_000_000)
	incomes := employee.PayrollComponents{
		{ID: "1", Name: "Transport Allowance", Amount: decimal.NewFromInt(500_000)},
		{ID: "2", Name: "Meal Allowance", Amount: decimal.NewFromInt(300_000)},
	}
	deductions := employee.PayrollComponents{
		{ID: "3", Name: "BPJS", Amount: decimal.NewFromInt(100_000)},
		{ID: "4", Name: "Income Tax", Amount: decimal.NewFromInt(250_000)},
	}

	totalIncome, totalDeductions, netSalary := ComputeTotals(base, incomes, deductions)

	assert.True(t, totalIncome.Equal(decimal.NewFromInt(5_800_000)), "total income = %s", totalIncome)
	assert.True(t, totalDeductions.Equal(decimal.NewFromInt(350_000)), "total deductions = %s", totalDeductions)
	assert.True(t, netSalary.Equal(decimal.NewFromInt(5_450_000)), "net salary = %s", netSalary)
}

func TestComputeTotalsNoComponents(t *testing.T) {
	base := decimal.NewFromInt(5_000_000)

	totalIncome, totalDeductions, netSalary := ComputeTotals(base, nil, nil)

	assert.True(t, totalIncome.Equal(base))
	assert.True(t, totalDeductions.IsZero())
	assert.True(t, netSalary.Equal(base))
}

func TestComputeTotalsDeductionsExceedIncome(t *testing.T) {
	base := decimal.NewFromInt(1_000_000)
	deductions := employee.PayrollComponents{
		{ID: "1", Name: "Loan Repayment", Amount: decimal.NewFromInt(1_500_000)},
	}

	_, _, netSalary := ComputeTotals(base, nil, deductions)

	assert.True(t, netSalary.Equal(decimal.NewFromInt(-500_000)), "net salary = %s", netSalary)
}

func TestComputeTotalsPreservesCents(t *testing.T) {
	base := decimal.RequireFromString("5000000.50")
	incomes := employee.PayrollComponents{
		{ID: "1", Name: "Allowance", Amount: decimal.RequireFromString("0.25")},
	}

	totalIncome, _, _ := ComputeTotals(base, incomes, nil)

	assert.True(t, totalIncome.Equal(decimal.RequireFromString("5000000.75")), "total income = %s", totalIncome)
}
