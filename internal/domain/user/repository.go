package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, newUser User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, req UpdateUserRequest) error
	UpdateByEmployeeID(ctx context.Context, employeeID, name, email string) error
	Delete(ctx context.Context, id string) error
	CountByRole(ctx context.Context, role Role) (int, error)
}
