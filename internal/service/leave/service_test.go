package leave

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	domainemployee "github.com/kerjapedia/hrms-backend-go/internal/domain/employee"
	domainleave "github.com/kerjapedia/hrms-backend-go/internal/domain/leave"
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/database"
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/storage"
	"github.com/kerjapedia/hrms-backend-go/internal/repository/postgresql"
	"github.com/kerjapedia/hrms-backend-go/internal/service/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLeaveDB *database.DB

func leaveTestInit(t *testing.T) {
	t.Helper()
	if testLeaveDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	var err error
	testLeaveDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
}

func truncateLeaveTables(t *testing.T, ctx context.Context) {
	for _, table := range []string{"leave_requests", "employees"} {
		_, err := testLeaveDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createLeaveTestEmployee(t *testing.T, ctx context.Context, leaveBalance int) string {
	var employeeID string
	nip := fmt.Sprintf("%d", time.Now().UnixNano()%1_000_000_000_000)
	email := fmt.Sprintf("leave-test-%d@example.com", time.Now().UnixNano())
	err := testLeaveDB.QueryRow(ctx, `
		INSERT INTO employees (id, nip, full_name, email, position, grade, department, join_date,
			leave_balance, is_active, education, work_history, certificates, payroll_info, created_at, updated_at)
		VALUES (uuidv7(), $1, 'Leave Test Employee', $2, 'Engineer', 'G1', 'Engineering', NOW(),
			$3, true, '[]', '[]', '[]', '{"base_salary":"5000000","incomes":[],"deductions":[]}', NOW(), NOW())
		RETURNING id
	`, nip, email, leaveBalance).Scan(&employeeID)
	require.NoError(t, err)
	return employeeID
}

func newTestLeaveService(t *testing.T) domainleave.LeaveService {
	t.Helper()
	leaveRepo := postgresql.NewLeaveRequestRepository(testLeaveDB)
	employeeRepo := postgresql.NewEmployeeRepository(testLeaveDB)
	localStorage, err := storage.NewLocalStorage(t.TempDir(), "http://localhost/uploads")
	require.NoError(t, err)
	return NewLeaveService(testLeaveDB, leaveRepo, employeeRepo, file.NewFileService(localStorage))
}

func TestLeaveService_ApproveDeductsBalance(t *testing.T) {
	ctx := context.Background()
	leaveTestInit(t)
	truncateLeaveTables(t, ctx)

	employeeID := createLeaveTestEmployee(t, ctx, 18)
	svc := newTestLeaveService(t)

	created, err := svc.CreateRequest(ctx, domainleave.CreateLeaveRequestRequest{
		EmployeeID: &employeeID,
		Type:       "annual",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-04",
		Reason:     "Family trip",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, 3, created.WorkingDays)

	approved, err := svc.Approve(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)

	var balance int
	err = testLeaveDB.QueryRow(ctx, "SELECT leave_balance FROM employees WHERE id = $1", employeeID).Scan(&balance)
	require.NoError(t, err)
	assert.Equal(t, 15, balance)
}

func TestLeaveService_ApproveSickLeaveKeepsBalance(t *testing.T) {
	ctx := context.Background()
	leaveTestInit(t)
	truncateLeaveTables(t, ctx)

	employeeID := createLeaveTestEmployee(t, ctx, 18)
	svc := newTestLeaveService(t)

	created, err := svc.CreateRequest(ctx, domainleave.CreateLeaveRequestRequest{
		EmployeeID: &employeeID,
		Type:       "sick",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-03",
		Reason:     "Flu",
	})
	require.NoError(t, err)

	_, err = svc.Approve(ctx, created.ID)
	require.NoError(t, err)

	var balance int
	err = testLeaveDB.QueryRow(ctx, "SELECT leave_balance FROM employees WHERE id = $1", employeeID).Scan(&balance)
	require.NoError(t, err)
	assert.Equal(t, 18, balance)
}

func TestLeaveService_ApproveTwiceConflicts(t *testing.T) {
	ctx := context.Background()
	leaveTestInit(t)
	truncateLeaveTables(t, ctx)

	employeeID := createLeaveTestEmployee(t, ctx, 18)
	svc := newTestLeaveService(t)

	created, err := svc.CreateRequest(ctx, domainleave.CreateLeaveRequestRequest{
		EmployeeID: &employeeID,
		Type:       "annual",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-02",
		Reason:     "Errand",
	})
	require.NoError(t, err)

	_, err = svc.Approve(ctx, created.ID)
	require.NoError(t, err)

	_, err = svc.Approve(ctx, created.ID)
	assert.ErrorIs(t, err, domainleave.ErrLeaveRequestAlreadyProcessed)

	// The balance must only have been deducted once.
	var balance int
	err = testLeaveDB.QueryRow(ctx, "SELECT leave_balance FROM employees WHERE id = $1", employeeID).Scan(&balance)
	require.NoError(t, err)
	assert.Equal(t, 17, balance)
}

func TestLeaveService_ApproveRollsBackWhenEmployeeGone(t *testing.T) {
	ctx := context.Background()
	leaveTestInit(t)
	truncateLeaveTables(t, ctx)

	employeeID := createLeaveTestEmployee(t, ctx, 18)
	svc := newTestLeaveService(t)

	created, err := svc.CreateRequest(ctx, domainleave.CreateLeaveRequestRequest{
		EmployeeID: &employeeID,
		Type:       "annual",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-04",
		Reason:     "Family trip",
	})
	require.NoError(t, err)

	_, err = testLeaveDB.Exec(ctx, "DELETE FROM employees WHERE id = $1", employeeID)
	require.NoError(t, err)

	_, err = svc.Approve(ctx, created.ID)
	assert.ErrorIs(t, err, domainemployee.ErrEmployeeNotFound)

	// The status flip must roll back with the failed balance deduction.
	var status string
	err = testLeaveDB.QueryRow(ctx, "SELECT status FROM leave_requests WHERE id = $1", created.ID).Scan(&status)
	require.NoError(t, err)
	assert.Equal(t, "pending", status)
}

func TestLeaveService_AttachDocument(t *testing.T) {
	ctx := context.Background()
	leaveTestInit(t)
	truncateLeaveTables(t, ctx)

	employeeID := createLeaveTestEmployee(t, ctx, 18)
	svc := newTestLeaveService(t)

	created, err := svc.CreateRequest(ctx, domainleave.CreateLeaveRequestRequest{
		EmployeeID: &employeeID,
		Type:       "sick",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-03",
		Reason:     "Flu",
	})
	require.NoError(t, err)
	assert.Nil(t, created.SupportingDocument)

	updated, err := svc.AttachDocument(ctx, created.ID, strings.NewReader("doctor note"), "note.pdf")
	require.NoError(t, err)
	require.NotNil(t, updated.SupportingDocument)
	assert.Contains(t, *updated.SupportingDocument, "leave-attachments/"+employeeID)

	var stored string
	err = testLeaveDB.QueryRow(ctx, "SELECT supporting_document FROM leave_requests WHERE id = $1", created.ID).Scan(&stored)
	require.NoError(t, err)
	assert.Contains(t, stored, "leave-attachments/"+employeeID)

	_, err = svc.AttachDocument(ctx, created.ID, strings.NewReader("notes"), "note.exe")
	assert.ErrorIs(t, err, file.ErrInvalidFileType)
}

func TestLeaveService_RejectRequiresReason(t *testing.T) {
	ctx := context.Background()
	leaveTestInit(t)
	truncateLeaveTables(t, ctx)

	employeeID := createLeaveTestEmployee(t, ctx, 18)
	svc := newTestLeaveService(t)

	created, err := svc.CreateRequest(ctx, domainleave.CreateLeaveRequestRequest{
		EmployeeID: &employeeID,
		Type:       "annual",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-02",
		Reason:     "Errand",
	})
	require.NoError(t, err)

	_, err = svc.Reject(ctx, created.ID, domainleave.RejectLeaveRequestRequest{})
	assert.ErrorIs(t, err, domainleave.ErrRejectionReasonRequired)

	rejected, err := svc.Reject(ctx, created.ID, domainleave.RejectLeaveRequestRequest{RejectionReason: "Blackout period"})
	require.NoError(t, err)
	assert.Equal(t, "rejected", rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "Blackout period", *rejected.RejectionReason)
}

func TestLeaveService_GetSummary(t *testing.T) {
	ctx := context.Background()
	leaveTestInit(t)
	truncateLeaveTables(t, ctx)

	employeeID := createLeaveTestEmployee(t, ctx, 18)
	svc := newTestLeaveService(t)

	created, err := svc.CreateRequest(ctx, domainleave.CreateLeaveRequestRequest{
		EmployeeID: &employeeID,
		Type:       "annual",
		StartDate:  "2026-03-02",
		EndDate:    "2026-03-06",
		Reason:     "Family trip",
	})
	require.NoError(t, err)
	_, err = svc.Approve(ctx, created.ID)
	require.NoError(t, err)

	summary, err := svc.GetSummary(ctx, employeeID)
	require.NoError(t, err)
	assert.Equal(t, 18, summary.InitialAllotment)
	assert.Equal(t, 5, summary.ApprovedLeaveTaken)
	assert.Equal(t, 13, summary.CurrentBalance)
}
