package user

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	domainuser "github.com/kerjapedia/hrms-backend-go/internal/domain/user"
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/database"
	"github.com/kerjapedia/hrms-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testUserDB *database.DB

func userTestInit(t *testing.T) {
	t.Helper()
	if testUserDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	var err error
	testUserDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
}

func truncateUserTables(t *testing.T, ctx context.Context) {
	_, err := testUserDB.Exec(ctx, "TRUNCATE TABLE users CASCADE")
	require.NoError(t, err)
}

func createTestUser(t *testing.T, ctx context.Context, role string) string {
	var userID string
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	email := fmt.Sprintf("user-test-%d@example.com", time.Now().UnixNano())
	err := testUserDB.QueryRow(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
		VALUES (uuidv7(), 'Test User', $1, $2, $3, NOW(), NOW())
		RETURNING id
	`, email, string(hashed), role).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func newTestUserService() domainuser.UserService {
	return NewUserService(testUserDB, postgresql.NewUserRepository(testUserDB), postgresql.NewRefreshTokenRepository(testUserDB))
}

func TestUserService_DeleteLastAdminRefused(t *testing.T) {
	ctx := context.Background()
	userTestInit(t)
	truncateUserTables(t, ctx)

	adminID := createTestUser(t, ctx, "admin")
	svc := newTestUserService()

	err := svc.DeleteUser(ctx, adminID)
	assert.ErrorIs(t, err, domainuser.ErrLastAdmin)
}

func TestUserService_DeleteAdminWithAnotherRemaining(t *testing.T) {
	ctx := context.Background()
	userTestInit(t)
	truncateUserTables(t, ctx)

	firstAdmin := createTestUser(t, ctx, "admin")
	createTestUser(t, ctx, "admin")
	svc := newTestUserService()

	err := svc.DeleteUser(ctx, firstAdmin)
	require.NoError(t, err)

	_, err = svc.GetUser(ctx, firstAdmin)
	assert.ErrorIs(t, err, domainuser.ErrUserNotFound)
}

func TestUserService_DemoteLastAdminRefused(t *testing.T) {
	ctx := context.Background()
	userTestInit(t)
	truncateUserTables(t, ctx)

	adminID := createTestUser(t, ctx, "admin")
	svc := newTestUserService()

	role := "employee"
	_, err := svc.UpdateUser(ctx, domainuser.UpdateUserRequest{ID: adminID, Role: &role})
	assert.ErrorIs(t, err, domainuser.ErrLastAdmin)
}

func TestUserService_DeleteEmployeeAlwaysAllowed(t *testing.T) {
	ctx := context.Background()
	userTestInit(t)
	truncateUserTables(t, ctx)

	createTestUser(t, ctx, "admin")
	employeeID := createTestUser(t, ctx, "employee")
	svc := newTestUserService()

	require.NoError(t, svc.DeleteUser(ctx, employeeID))
}

func seedRefreshToken(t *testing.T, ctx context.Context, userID string) {
	_, err := testUserDB.Exec(ctx, `
		INSERT INTO refresh_tokens (user_id, token_hash, expires_at)
		VALUES ($1, $2, NOW() + INTERVAL '1 day')
	`, userID, fmt.Sprintf("hash-%d", time.Now().UnixNano()))
	require.NoError(t, err)
}

func openSessionCount(t *testing.T, ctx context.Context, userID string) int {
	var count int
	err := testUserDB.QueryRow(ctx,
		"SELECT COUNT(*) FROM refresh_tokens WHERE user_id = $1 AND revoked_at IS NULL",
		userID,
	).Scan(&count)
	require.NoError(t, err)
	return count
}

func TestUserService_PasswordChangeRevokesSessions(t *testing.T) {
	ctx := context.Background()
	userTestInit(t)
	truncateUserTables(t, ctx)

	userID := createTestUser(t, ctx, "employee")
	seedRefreshToken(t, ctx, userID)
	seedRefreshToken(t, ctx, userID)
	require.Equal(t, 2, openSessionCount(t, ctx, userID))

	svc := newTestUserService()
	newPassword := "brand-new-password"
	_, err := svc.UpdateUser(ctx, domainuser.UpdateUserRequest{ID: userID, Password: &newPassword})
	require.NoError(t, err)

	assert.Equal(t, 0, openSessionCount(t, ctx, userID))
}

func TestUserService_NameChangeKeepsSessions(t *testing.T) {
	ctx := context.Background()
	userTestInit(t)
	truncateUserTables(t, ctx)

	userID := createTestUser(t, ctx, "employee")
	seedRefreshToken(t, ctx, userID)

	svc := newTestUserService()
	newName := "Renamed User"
	_, err := svc.UpdateUser(ctx, domainuser.UpdateUserRequest{ID: userID, Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, 1, openSessionCount(t, ctx, userID))
}
