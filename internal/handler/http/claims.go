package http

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kerjapedia/hrms-backend-go/internal/domain/user"
)

// tokenClaims is the verified access-token payload handlers care about.
// EmployeeID is empty for accounts without a linked employee record.
type tokenClaims struct {
	UserID     string
	Email      string
	EmployeeID string
	Role       user.Role
}

func claimsFromContext(ctx context.Context) (tokenClaims, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return tokenClaims{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return tokenClaims{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	tc := tokenClaims{UserID: userID}
	tc.Email, _ = claims["email"].(string)
	tc.EmployeeID, _ = claims["employee_id"].(string)
	if role, ok := claims["role"].(string); ok {
		tc.Role = user.Role(role)
	}
	return tc, nil
}

func (t tokenClaims) isAdmin() bool {
	return t.Role == user.RoleAdmin
}
