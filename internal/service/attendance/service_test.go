package attendance

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/kerjapedia/hrms-backend-go/internal/domain/attendance"
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/database"
	"github.com/kerjapedia/hrms-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAttendanceDB *database.DB

func attendanceTestInit(t *testing.T) {
	t.Helper()
	if testAttendanceDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	var err error
	testAttendanceDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
}

func truncateAttendanceTables(t *testing.T, ctx context.Context) {
	for _, table := range []string{"attendances", "employees"} {
		_, err := testAttendanceDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func createAttendanceTestEmployee(t *testing.T, ctx context.Context) string {
	var employeeID string
	nip := fmt.Sprintf("%d", time.Now().UnixNano()%1_000_000_000_000)
	email := fmt.Sprintf("attendance-test-%d@example.com", time.Now().UnixNano())
	err := testAttendanceDB.QueryRow(ctx, `
		INSERT INTO employees (id, nip, full_name, email, position, grade, department, join_date,
			leave_balance, is_active, education, work_history, certificates, payroll_info, created_at, updated_at)
		VALUES (uuidv7(), $1, 'Attendance Test Employee', $2, 'Engineer', 'G1', 'Engineering', NOW(),
			18, true, '[]', '[]', '[]', '{"base_salary":"5000000","incomes":[],"deductions":[]}', NOW(), NOW())
		RETURNING id
	`, nip, email).Scan(&employeeID)
	require.NoError(t, err)
	return employeeID
}

func newTestAttendanceService() attendance.AttendanceService {
	attendanceRepo := postgresql.NewAttendanceRepository(testAttendanceDB)
	employeeRepo := postgresql.NewEmployeeRepository(testAttendanceDB)
	return NewAttendanceService(testAttendanceDB, attendanceRepo, employeeRepo)
}

func TestAttendanceService_ClockInTwiceSameDay(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)
	truncateAttendanceTables(t, ctx)

	employeeID := createAttendanceTestEmployee(t, ctx)
	svc := newTestAttendanceService()

	first, err := svc.ClockIn(ctx, employeeID)
	require.NoError(t, err)
	require.NotNil(t, first.ClockIn)

	_, err = svc.ClockIn(ctx, employeeID)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)

	var count int
	err = testAttendanceDB.QueryRow(ctx, "SELECT COUNT(*) FROM attendances WHERE employee_id = $1", employeeID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAttendanceService_ClockOutWithoutClockIn(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)
	truncateAttendanceTables(t, ctx)

	employeeID := createAttendanceTestEmployee(t, ctx)
	svc := newTestAttendanceService()

	_, err := svc.ClockOut(ctx, employeeID)
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestAttendanceService_ClockOutTwiceSameDay(t *testing.T) {
	ctx := context.Background()
	attendanceTestInit(t)
	truncateAttendanceTables(t, ctx)

	employeeID := createAttendanceTestEmployee(t, ctx)
	svc := newTestAttendanceService()

	_, err := svc.ClockIn(ctx, employeeID)
	require.NoError(t, err)

	out, err := svc.ClockOut(ctx, employeeID)
	require.NoError(t, err)
	require.NotNil(t, out.WorkDuration)

	_, err = svc.ClockOut(ctx, employeeID)
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func clockTime(h, m, s int) time.Time {
	return time.Date(2026, time.March, 2, h, m, s, 0, time.UTC)
}

func TestStatusForClockIn(t *testing.T) {
	cases := []struct {
		name    string
		clockIn time.Time
		want    attendance.Status
	}{
		{"early morning", clockTime(7, 30, 0), attendance.StatusOnTime},
		{"exactly at cutoff", clockTime(9, 0, 0), attendance.StatusOnTime},
		{"one second past cutoff", clockTime(9, 0, 1), attendance.StatusLate},
		{"one minute past cutoff", clockTime(9, 1, 0), attendance.StatusLate},
		{"midday", clockTime(13, 15, 0), attendance.StatusLate},
		{"midnight", clockTime(0, 0, 0), attendance.StatusOnTime},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, StatusForClockIn(c.clockIn))
		})
	}
}

func TestFormatWorkDuration(t *testing.T) {
	cases := []struct {
		name     string
		clockIn  time.Time
		clockOut time.Time
		want     string
	}{
		{"full work day", clockTime(8, 30, 0), clockTime(17, 45, 0), "9h 15m"},
		{"under an hour", clockTime(9, 0, 0), clockTime(9, 40, 0), "0h 40m"},
		{"exact hours", clockTime(9, 0, 0), clockTime(17, 0, 0), "8h 0m"},
		{"seconds dropped", clockTime(9, 0, 0), clockTime(10, 30, 59), "1h 30m"},
		{"clock out before clock in", clockTime(17, 0, 0), clockTime(9, 0, 0), "0h 0m"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, FormatWorkDuration(c.clockIn, c.clockOut))
		})
	}
}
