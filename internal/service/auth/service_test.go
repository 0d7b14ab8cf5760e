package auth

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	domainauth "github.com/kerjapedia/hrms-backend-go/internal/domain/auth"
	domainuser "github.com/kerjapedia/hrms-backend-go/internal/domain/user"
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/database"
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/jwt"
	"github.com/kerjapedia/hrms-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testAuthDB *database.DB

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

func authTestInit(t *testing.T) {
	t.Helper()
	if testAuthDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	var err error
	testAuthDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
}

func truncateAuthTables(t *testing.T, ctx context.Context) {
	for _, table := range []string{"refresh_tokens", "users", "employees"} {
		_, err := testAuthDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func newTestAuthService() domainauth.AuthService {
	userRepo := postgresql.NewUserRepository(testAuthDB)
	employeeRepo := postgresql.NewEmployeeRepository(testAuthDB)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(testAuthDB)
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)
	return NewAuthService(testAuthDB, userRepo, employeeRepo, refreshTokenRepo, jwtService, nil)
}

func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc := newTestAuthService()
	email := uniqueEmail("register")

	registered, err := svc.Register(ctx, domainauth.RegisterRequest{
		Name:     "New Employee",
		Email:    email,
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, registered.UserID)
	assert.NotEmpty(t, registered.EmployeeID)

	// Registration seeds the default leave balance.
	var balance int
	err = testAuthDB.QueryRow(ctx, "SELECT leave_balance FROM employees WHERE id = $1", registered.EmployeeID).Scan(&balance)
	require.NoError(t, err)
	assert.Equal(t, 18, balance)

	tokens, err := svc.Login(ctx, domainauth.LoginRequest{
		Email:    email,
		Password: "password123",
	}, domainauth.SessionTrackingRequest{IPAddress: "127.0.0.1", UserAgent: "go-test"})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc := newTestAuthService()
	email := uniqueEmail("dup")

	_, err := svc.Register(ctx, domainauth.RegisterRequest{Name: "First", Email: email, Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, domainauth.RegisterRequest{Name: "Second", Email: email, Password: "password123"})
	assert.ErrorIs(t, err, domainuser.ErrUserEmailExists)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc := newTestAuthService()
	email := uniqueEmail("wrongpass")

	_, err := svc.Register(ctx, domainauth.RegisterRequest{Name: "Someone", Email: email, Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, domainauth.LoginRequest{Email: email, Password: "not-the-password"}, domainauth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, domainauth.ErrInvalidCredentials)
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc := newTestAuthService()

	_, err := svc.Login(ctx, domainauth.LoginRequest{Email: "nobody@example.com", Password: "password123"}, domainauth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, domainauth.ErrInvalidCredentials)
}

func TestAuthService_RefreshTokenRotation(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc := newTestAuthService()
	email := uniqueEmail("rotate")

	_, err := svc.Register(ctx, domainauth.RegisterRequest{Name: "Rotator", Email: email, Password: "password123"})
	require.NoError(t, err)

	tokens, err := svc.Login(ctx, domainauth.LoginRequest{Email: email, Password: "password123"}, domainauth.SessionTrackingRequest{})
	require.NoError(t, err)

	rotated, err := svc.RefreshToken(ctx, tokens.RefreshToken, domainauth.SessionTrackingRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)

	// The old refresh token was revoked by the rotation.
	_, err = svc.RefreshToken(ctx, tokens.RefreshToken, domainauth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, domainauth.ErrRefreshTokenRevoked)
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	authTestInit(t)
	truncateAuthTables(t, ctx)

	svc := newTestAuthService()
	email := uniqueEmail("logout")

	_, err := svc.Register(ctx, domainauth.RegisterRequest{Name: "Leaver", Email: email, Password: "password123"})
	require.NoError(t, err)

	tokens, err := svc.Login(ctx, domainauth.LoginRequest{Email: email, Password: "password123"}, domainauth.SessionTrackingRequest{})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, tokens.RefreshToken))

	_, err = svc.RefreshToken(ctx, tokens.RefreshToken, domainauth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, domainauth.ErrRefreshTokenRevoked)
}
