package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/kerjapedia/hrms-backend-go/internal/domain/datachange"
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/database"
)

type dataChangeRequestRepositoryImpl struct {
	db *database.DB
}

func NewDataChangeRequestRepository(db *database.DB) datachange.DataChangeRequestRepository {
	return &dataChangeRequestRepositoryImpl{db: db}
}

const dataChangeRequestColumns = `id, employee_id, employee_name, request_date, message,
	status, created_at, updated_at`

func scanDataChangeRequest(row pgx.Row) (datachange.DataChangeRequest, error) {
	var dcr datachange.DataChangeRequest
	err := row.Scan(
		&dcr.ID,
		&dcr.EmployeeID,
		&dcr.EmployeeName,
		&dcr.RequestDate,
		&dcr.Message,
		&dcr.Status,
		&dcr.CreatedAt,
		&dcr.UpdatedAt,
	)
	return dcr, err
}

func (r *dataChangeRequestRepositoryImpl) Create(ctx context.Context, dcr datachange.DataChangeRequest) (datachange.DataChangeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO data_change_requests (
			id, employee_id, employee_name, request_date, message,
			status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, NOW(), NOW()
		) RETURNING ` + dataChangeRequestColumns

	created, err := scanDataChangeRequest(q.QueryRow(ctx, query,
		dcr.EmployeeID, dcr.EmployeeName, dcr.RequestDate, dcr.Message, dcr.Status,
	))
	if err != nil {
		return datachange.DataChangeRequest{}, err
	}
	return created, nil
}

func (r *dataChangeRequestRepositoryImpl) GetByID(ctx context.Context, id string) (datachange.DataChangeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + dataChangeRequestColumns + ` FROM data_change_requests WHERE id = $1`
	dcr, err := scanDataChangeRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return datachange.DataChangeRequest{}, datachange.ErrRequestNotFound
		}
		return datachange.DataChangeRequest{}, err
	}
	return dcr, nil
}

func (r *dataChangeRequestRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) ([]datachange.DataChangeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + dataChangeRequestColumns + ` FROM data_change_requests
		WHERE employee_id = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectDataChangeRequests(rows)
}

func (r *dataChangeRequestRepositoryImpl) List(ctx context.Context, status *datachange.Status) ([]datachange.DataChangeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + dataChangeRequestColumns + ` FROM data_change_requests`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectDataChangeRequests(rows)
}

// UpdateStatus flips a request out of pending. Zero rows affected means the
// request either does not exist or was already resolved; the service
// distinguishes the two.
func (r *dataChangeRequestRepositoryImpl) UpdateStatus(ctx context.Context, id string, status datachange.Status) (int64, error) {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE data_change_requests SET status = $1, updated_at = NOW()
		 WHERE id = $2 AND status = 'pending'`,
		status, id,
	)
	if err != nil {
		return 0, err
	}
	return commandTag.RowsAffected(), nil
}

func collectDataChangeRequests(rows pgx.Rows) ([]datachange.DataChangeRequest, error) {
	var requests []datachange.DataChangeRequest
	for rows.Next() {
		dcr, err := scanDataChangeRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, dcr)
	}
	return requests, rows.Err()
}
