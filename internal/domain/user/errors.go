package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUserEmailExists        = errors.New("email already registered")
	ErrInvalidRole            = errors.New("invalid role")
	ErrLastAdmin              = errors.New("cannot delete the last remaining admin user")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
