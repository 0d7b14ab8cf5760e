package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // HR administrator - full access
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID           string
	EmployeeID   *string // nullable back-reference; a user may exist without an employee record
	Name         string
	Email        string
	PasswordHash *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user is an HR administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanApprove checks if user can approve leave and data-change requests
func (u *User) CanApprove() bool {
	return u.IsAdmin()
}
