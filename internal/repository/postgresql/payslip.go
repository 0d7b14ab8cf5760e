package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kerjapedia/hrms-backend-go/internal/domain/payroll"
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/database"
)

type payslipRepositoryImpl struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payroll.PayslipRepository {
	return &payslipRepositoryImpl{db: db}
}

const payslipColumns = `id, employee_id, employee_name, period, base_salary, incomes, deductions,
	total_income, total_deductions, net_salary, created_at`

func scanPayslip(row pgx.Row) (payroll.Payslip, error) {
	var p payroll.Payslip
	err := row.Scan(
		&p.ID,
		&p.EmployeeID,
		&p.EmployeeName,
		&p.Period,
		&p.BaseSalary,
		&p.Incomes,
		&p.Deductions,
		&p.TotalIncome,
		&p.TotalDeductions,
		&p.NetSalary,
		&p.CreatedAt,
	)
	return p, err
}

func (r *payslipRepositoryImpl) Create(ctx context.Context, p payroll.Payslip) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (
			id, employee_id, employee_name, period, base_salary, incomes, deductions,
			total_income, total_deductions, net_salary, created_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, NOW()
		) RETURNING ` + payslipColumns

	created, err := scanPayslip(q.QueryRow(ctx, query,
		p.EmployeeID, p.EmployeeName, p.Period, p.BaseSalary, p.Incomes, p.Deductions,
		p.TotalIncome, p.TotalDeductions, p.NetSalary,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payroll.Payslip{}, payroll.ErrPayslipAlreadyExists
		}
		return payroll.Payslip{}, err
	}
	return created, nil
}

func (r *payslipRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipColumns + ` FROM payslips WHERE id = $1`
	p, err := scanPayslip(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, err
	}
	return p, nil
}

func (r *payslipRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipColumns + ` FROM payslips WHERE employee_id = $1 ORDER BY period DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPayslips(rows)
}

func (r *payslipRepositoryImpl) List(ctx context.Context, period *string) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + payslipColumns + ` FROM payslips`
	args := []interface{}{}
	if period != nil {
		query += ` WHERE period = $1`
		args = append(args, *period)
	}
	query += ` ORDER BY period DESC, created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPayslips(rows)
}

func (r *payslipRepositoryImpl) ExistsByEmployeeAndPeriod(ctx context.Context, employeeID, period string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM payslips WHERE employee_id = $1 AND period = $2)`,
		employeeID, period,
	).Scan(&exists)
	return exists, err
}

func collectPayslips(rows pgx.Rows) ([]payroll.Payslip, error) {
	var payslips []payroll.Payslip
	for rows.Next() {
		p, err := scanPayslip(rows)
		if err != nil {
			return nil, err
		}
		payslips = append(payslips, p)
	}
	return payslips, rows.Err()
}
