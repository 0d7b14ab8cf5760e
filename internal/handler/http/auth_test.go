package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/kerjapedia/hrms-backend-go/internal/pkg/database"
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/jwt"
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/storage"
	"github.com/kerjapedia/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/kerjapedia/hrms-backend-go/internal/service/attendance"
	authService "github.com/kerjapedia/hrms-backend-go/internal/service/auth"
	datachangeService "github.com/kerjapedia/hrms-backend-go/internal/service/datachange"
	employeeService "github.com/kerjapedia/hrms-backend-go/internal/service/employee"
	fileService "github.com/kerjapedia/hrms-backend-go/internal/service/file"
	leaveService "github.com/kerjapedia/hrms-backend-go/internal/service/leave"
	payrollService "github.com/kerjapedia/hrms-backend-go/internal/service/payroll"
	performanceService "github.com/kerjapedia/hrms-backend-go/internal/service/performance"
	userService "github.com/kerjapedia/hrms-backend-go/internal/service/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testHandlerDB     *database.DB
	testHandlerRouter http.Handler
)

const (
	handlerTestSecret     = "test-secret-key-for-jwt"
	handlerTestAccessExp  = "1h"
	handlerTestRefreshExp = "24h"
)

func handlerTestInit(t *testing.T) {
	t.Helper()
	if testHandlerDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	var err error
	testHandlerDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}

	userRepo := postgresql.NewUserRepository(testHandlerDB)
	employeeRepo := postgresql.NewEmployeeRepository(testHandlerDB)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(testHandlerDB)
	leaveRepo := postgresql.NewLeaveRequestRepository(testHandlerDB)
	payslipRepo := postgresql.NewPayslipRepository(testHandlerDB)
	reviewRepo := postgresql.NewReviewRepository(testHandlerDB)
	attendanceRepo := postgresql.NewAttendanceRepository(testHandlerDB)
	dataChangeRepo := postgresql.NewDataChangeRequestRepository(testHandlerDB)

	jwtService := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp)

	uploadsDir := t.TempDir()
	localStorage, err := storage.NewLocalStorage(uploadsDir, "http://localhost/uploads")
	require.NoError(t, err)
	fileSvc := fileService.NewFileService(localStorage)

	authSvc := authService.NewAuthService(testHandlerDB, userRepo, employeeRepo, refreshTokenRepo, jwtService, nil)
	handlers := RouterHandlers{
		Auth:        NewAuthHandler(authSvc, jwtService),
		User:        NewUserHandler(userService.NewUserService(testHandlerDB, userRepo, refreshTokenRepo)),
		Employee:    NewEmployeeHandler(employeeService.NewEmployeeService(testHandlerDB, employeeRepo, userRepo, fileSvc)),
		Leave:       NewLeaveHandler(leaveService.NewLeaveService(testHandlerDB, leaveRepo, employeeRepo, fileSvc)),
		Payroll:     NewPayrollHandler(payrollService.NewPayrollService(testHandlerDB, payslipRepo, employeeRepo)),
		Performance: NewPerformanceHandler(performanceService.NewReviewService(testHandlerDB, reviewRepo, employeeRepo)),
		Attendance:  NewAttendanceHandler(attendanceService.NewAttendanceService(testHandlerDB, attendanceRepo, employeeRepo)),
		DataChange:  NewDataChangeHandler(datachangeService.NewDataChangeService(testHandlerDB, dataChangeRepo, employeeRepo)),
	}
	testHandlerRouter = NewRouter(jwtService, handlers, uploadsDir)
}

func truncateHandlerTables(t *testing.T, ctx context.Context) {
	for _, table := range []string{"refresh_tokens", "users", "employees"} {
		_, err := testHandlerDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func doJSON(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	testHandlerRouter.ServeHTTP(rec, req)
	return rec
}

func uniqueHandlerEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}

func TestAuthEndpoints_RegisterLoginAndMe(t *testing.T) {
	ctx := context.Background()
	handlerTestInit(t)
	truncateHandlerTables(t, ctx)

	email := uniqueHandlerEmail("handler-register")

	rec := doJSON(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name":     "Handler Test",
		"email":    email,
		"password": "password123",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": "password123",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var loginBody struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loginBody))
	assert.True(t, loginBody.Success)
	require.NotEmpty(t, loginBody.Data.AccessToken)

	// The refresh token only travels as an HttpOnly cookie.
	var refreshCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "refresh_token" {
			refreshCookie = c
		}
	}
	require.NotNil(t, refreshCookie)
	assert.True(t, refreshCookie.HttpOnly)

	rec = doJSON(t, http.MethodGet, "/api/v1/users/me", nil, map[string]string{
		"Authorization": "Bearer " + loginBody.Data.AccessToken,
	})
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestAuthEndpoints_RegisterValidation(t *testing.T) {
	ctx := context.Background()
	handlerTestInit(t)
	truncateHandlerTables(t, ctx)

	rec := doJSON(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name":     "",
		"email":    "not-an-email",
		"password": "short",
	}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
}

func TestProtectedEndpointsRejectAnonymous(t *testing.T) {
	handlerTestInit(t)

	for _, path := range []string{"/api/v1/users/me", "/api/v1/employees/me", "/api/v1/leaves/my"} {
		rec := doJSON(t, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestAdminEndpointsRejectEmployees(t *testing.T) {
	ctx := context.Background()
	handlerTestInit(t)
	truncateHandlerTables(t, ctx)

	email := uniqueHandlerEmail("handler-employee")
	rec := doJSON(t, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"name":     "Regular Employee",
		"email":    email,
		"password": "password123",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": "password123",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var loginBody struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &loginBody))

	headers := map[string]string{"Authorization": "Bearer " + loginBody.Data.AccessToken}
	rec = doJSON(t, http.MethodGet, "/api/v1/users", nil, headers)
	assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())

	rec = doJSON(t, http.MethodGet, "/api/v1/leaves", nil, headers)
	assert.Equal(t, http.StatusForbidden, rec.Code, rec.Body.String())
}
