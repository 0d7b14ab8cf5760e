package employee

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	domainemployee "github.com/kerjapedia/hrms-backend-go/internal/domain/employee"
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/database"
	"github.com/kerjapedia/hrms-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testEmployeeDB *database.DB

func employeeTestInit(t *testing.T) {
	t.Helper()
	if testEmployeeDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	var err error
	testEmployeeDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
}

func truncateEmployeeTables(t *testing.T, ctx context.Context) {
	for _, table := range []string{"users", "employees"} {
		_, err := testEmployeeDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func newTestEmployeeService() domainemployee.EmployeeService {
	employeeRepo := postgresql.NewEmployeeRepository(testEmployeeDB)
	userRepo := postgresql.NewUserRepository(testEmployeeDB)
	return NewEmployeeService(testEmployeeDB, employeeRepo, userRepo, nil)
}

func uniqueEmployeeEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}

func TestEmployeeService_CreateWithExplicitNIP(t *testing.T) {
	ctx := context.Background()
	employeeTestInit(t)
	truncateEmployeeTables(t, ctx)

	svc := newTestEmployeeService()
	nip := fmt.Sprintf("%d", time.Now().UnixNano()%1_000_000_000_000)

	created, err := svc.CreateEmployee(ctx, domainemployee.CreateEmployeeRequest{
		NIP:        &nip,
		FullName:   "First Hire",
		Email:      uniqueEmployeeEmail("nip-first"),
		Password:   "password123",
		Position:   "Engineer",
		Grade:      "G1",
		Department: "Engineering",
		JoinDate:   "2026-01-05",
	})
	require.NoError(t, err)
	assert.Equal(t, nip, created.NIP)
}

func TestEmployeeService_CreateDuplicateNIPRefused(t *testing.T) {
	ctx := context.Background()
	employeeTestInit(t)
	truncateEmployeeTables(t, ctx)

	svc := newTestEmployeeService()
	nip := fmt.Sprintf("%d", time.Now().UnixNano()%1_000_000_000_000)

	_, err := svc.CreateEmployee(ctx, domainemployee.CreateEmployeeRequest{
		NIP:        &nip,
		FullName:   "First Hire",
		Email:      uniqueEmployeeEmail("nip-dup-a"),
		Password:   "password123",
		Position:   "Engineer",
		Grade:      "G1",
		Department: "Engineering",
		JoinDate:   "2026-01-05",
	})
	require.NoError(t, err)

	_, err = svc.CreateEmployee(ctx, domainemployee.CreateEmployeeRequest{
		NIP:        &nip,
		FullName:   "Second Hire",
		Email:      uniqueEmployeeEmail("nip-dup-b"),
		Password:   "password123",
		Position:   "Engineer",
		Grade:      "G1",
		Department: "Engineering",
		JoinDate:   "2026-01-06",
	})
	assert.ErrorIs(t, err, domainemployee.ErrNIPExists)

	var count int
	err = testEmployeeDB.QueryRow(ctx, "SELECT COUNT(*) FROM employees WHERE nip = $1", nip).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
