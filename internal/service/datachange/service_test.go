package datachange

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	domaindatachange "github.com/kerjapedia/hrms-backend-go/internal/domain/datachange"
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/database"
	"github.com/kerjapedia/hrms-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDataChangeDB *database.DB

func dataChangeTestInit(t *testing.T) {
	t.Helper()
	if testDataChangeDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	var err error
	testDataChangeDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
}

func truncateDataChangeTables(t *testing.T, ctx context.Context) {
	for _, table := range []string{"data_change_requests", "employees"} {
		_, err := testDataChangeDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createDataChangeTestEmployee(t *testing.T, ctx context.Context) string {
	var employeeID string
	nip := fmt.Sprintf("%d", time.Now().UnixNano()%1_000_000_000_000)
	email := fmt.Sprintf("datachange-test-%d@example.com", time.Now().UnixNano())
	err := testDataChangeDB.QueryRow(ctx, `
		INSERT INTO employees (id, nip, full_name, email, position, grade, department, join_date,
			leave_balance, is_active, education, work_history, certificates, payroll_info, created_at, updated_at)
		VALUES (uuidv7(), $1, 'Data Change Test Employee', $2, 'Engineer', 'G1', 'Engineering', NOW(),
			18, true, '[]', '[]', '[]', '{"base_salary":"5000000","incomes":[],"deductions":[]}', NOW(), NOW())
		RETURNING id
	`, nip, email).Scan(&employeeID)
	require.NoError(t, err)
	return employeeID
}

func newTestDataChangeService() domaindatachange.DataChangeService {
	requestRepo := postgresql.NewDataChangeRequestRepository(testDataChangeDB)
	employeeRepo := postgresql.NewEmployeeRepository(testDataChangeDB)
	return NewDataChangeService(testDataChangeDB, requestRepo, employeeRepo)
}

func TestDataChangeService_ApproveThenRejectConflicts(t *testing.T) {
	ctx := context.Background()
	dataChangeTestInit(t)
	truncateDataChangeTables(t, ctx)

	employeeID := createDataChangeTestEmployee(t, ctx)
	svc := newTestDataChangeService()

	created, err := svc.CreateRequest(ctx, employeeID, domaindatachange.CreateDataChangeRequest{
		Message: "Please correct my home address",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", created.Status)

	approved, err := svc.Approve(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)

	_, err = svc.Reject(ctx, created.ID)
	assert.ErrorIs(t, err, domaindatachange.ErrRequestAlreadyProcessed)

	_, err = svc.Approve(ctx, created.ID)
	assert.ErrorIs(t, err, domaindatachange.ErrRequestAlreadyProcessed)

	var status string
	err = testDataChangeDB.QueryRow(ctx, "SELECT status FROM data_change_requests WHERE id = $1", created.ID).Scan(&status)
	require.NoError(t, err)
	assert.Equal(t, "approved", status)
}

func TestDataChangeService_ResolveLosesRaceToEarlierWrite(t *testing.T) {
	ctx := context.Background()
	dataChangeTestInit(t)
	truncateDataChangeTables(t, ctx)

	employeeID := createDataChangeTestEmployee(t, ctx)
	svc := newTestDataChangeService()

	created, err := svc.CreateRequest(ctx, employeeID, domaindatachange.CreateDataChangeRequest{
		Message: "Please update my phone number",
	})
	require.NoError(t, err)

	// Flip the row behind the service's back, as a concurrent admin would
	// between the pending check and the status write.
	requestRepo := postgresql.NewDataChangeRequestRepository(testDataChangeDB)
	rowsAffected, err := requestRepo.UpdateStatus(ctx, created.ID, domaindatachange.StatusRejected)
	require.NoError(t, err)
	require.EqualValues(t, 1, rowsAffected)

	rowsAffected, err = requestRepo.UpdateStatus(ctx, created.ID, domaindatachange.StatusApproved)
	require.NoError(t, err)
	assert.EqualValues(t, 0, rowsAffected)

	var status string
	err = testDataChangeDB.QueryRow(ctx, "SELECT status FROM data_change_requests WHERE id = $1", created.ID).Scan(&status)
	require.NoError(t, err)
	assert.Equal(t, "rejected", status)
}
