package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kerjapedia/hrms-backend-go/internal/domain/employee"
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, nip, full_name, email, position, grade, department, join_date, avatar_url,
	leave_balance, is_active, address, phone, place_of_birth, date_of_birth, religion,
	marital_status, number_of_children, education, work_history, certificates, payroll_info,
	created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.NIP,
		&e.FullName,
		&e.Email,
		&e.Position,
		&e.Grade,
		&e.Department,
		&e.JoinDate,
		&e.AvatarURL,
		&e.LeaveBalance,
		&e.IsActive,
		&e.Address,
		&e.Phone,
		&e.PlaceOfBirth,
		&e.DateOfBirth,
		&e.Religion,
		&e.MaritalStatus,
		&e.NumberOfChildren,
		&e.Education,
		&e.WorkHistory,
		&e.Certificates,
		&e.PayrollInfo,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

func mapEmployeeConstraintErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if strings.Contains(pgErr.ConstraintName, "nip") {
			return employee.ErrNIPExists
		}
		return employee.ErrEmailExists
	}
	return err
}

func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, nip, full_name, email, position, grade, department, join_date, avatar_url,
			leave_balance, is_active, address, phone, place_of_birth, date_of_birth, religion,
			marital_status, number_of_children, education, work_history, certificates, payroll_info,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21,
			NOW(), NOW()
		) RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.NIP, emp.FullName, emp.Email, emp.Position, emp.Grade, emp.Department, emp.JoinDate, emp.AvatarURL,
		emp.LeaveBalance, emp.IsActive, emp.Address, emp.Phone, emp.PlaceOfBirth, emp.DateOfBirth, emp.Religion,
		emp.MaritalStatus, emp.NumberOfChildren, emp.Education, emp.WorkHistory, emp.Certificates, emp.PayrollInfo,
	))
	if err != nil {
		return employee.Employee{}, mapEmployeeConstraintErr(err)
	}

	return created, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepositoryImpl) GetByNIP(ctx context.Context, nip string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE nip = $1`
	e, err := scanEmployee(q.QueryRow(ctx, query, nip))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY full_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// Update applies a partial update and returns the number of rows affected.
// The caller decides whether zero rows is an error.
func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (int64, error) {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argIndex := 1

	appendSet := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argIndex))
		args = append(args, value)
		argIndex++
	}

	if req.FullName != nil {
		appendSet("full_name", *req.FullName)
	}
	if req.Email != nil {
		appendSet("email", *req.Email)
	}
	if req.Position != nil {
		appendSet("position", *req.Position)
	}
	if req.Grade != nil {
		appendSet("grade", *req.Grade)
	}
	if req.Department != nil {
		appendSet("department", *req.Department)
	}
	if req.JoinDate != nil {
		appendSet("join_date", *req.JoinDate)
	}
	if req.IsActive != nil {
		appendSet("is_active", *req.IsActive)
	}
	if req.Address != nil {
		appendSet("address", *req.Address)
	}
	if req.Phone != nil {
		appendSet("phone", *req.Phone)
	}
	if req.PlaceOfBirth != nil {
		appendSet("place_of_birth", *req.PlaceOfBirth)
	}
	if req.DateOfBirth != nil {
		appendSet("date_of_birth", *req.DateOfBirth)
	}
	if req.Religion != nil {
		appendSet("religion", *req.Religion)
	}
	if req.MaritalStatus != nil {
		appendSet("marital_status", *req.MaritalStatus)
	}
	if req.NumberOfChildren != nil {
		appendSet("number_of_children", *req.NumberOfChildren)
	}
	if req.Education != nil {
		appendSet("education", *req.Education)
	}
	if req.WorkHistory != nil {
		appendSet("work_history", *req.WorkHistory)
	}
	if req.Certificates != nil {
		appendSet("certificates", *req.Certificates)
	}

	query := fmt.Sprintf("UPDATE employees SET %s WHERE id = $%d", strings.Join(setClauses, ", "), argIndex)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, mapEmployeeConstraintErr(err)
	}
	return commandTag.RowsAffected(), nil
}

func (r *employeeRepositoryImpl) UpdatePayrollInfo(ctx context.Context, employeeID string, info employee.PayrollInfo) (int64, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE employees SET payroll_info = $1, updated_at = NOW() WHERE id = $2`,
		info, employeeID,
	)
	if err != nil {
		return 0, err
	}
	return commandTag.RowsAffected(), nil
}

func (r *employeeRepositoryImpl) UpdateAvatarURL(ctx context.Context, employeeID, avatarURL string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE employees SET avatar_url = $1, updated_at = NOW() WHERE id = $2`,
		avatarURL, employeeID,
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (r *employeeRepositoryImpl) AdjustLeaveBalance(ctx context.Context, employeeID string, delta int) (int64, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE employees SET leave_balance = leave_balance + $1, updated_at = NOW() WHERE id = $2`,
		delta, employeeID,
	)
	if err != nil {
		return 0, err
	}
	return commandTag.RowsAffected(), nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
