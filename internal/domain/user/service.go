package user

import "context"

type UserService interface {
	// CreateUser creates a user account (admin only).
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	// GetUser retrieves a single user by ID.
	GetUser(ctx context.Context, id string) (UserResponse, error)

	// ListUsers returns all user accounts (admin only).
	ListUsers(ctx context.Context) ([]UserResponse, error)

	// UpdateUser applies a partial update (admin only).
	UpdateUser(ctx context.Context, req UpdateUserRequest) (UserResponse, error)

	// DeleteUser removes a user account. Deleting the last remaining admin
	// is refused.
	DeleteUser(ctx context.Context, id string) error
}
