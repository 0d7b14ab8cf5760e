package user

import (
	"context"
	"fmt"
	"time"

	"github.com/kerjapedia/hrms-backend-go/internal/domain/user"
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/database"
	"github.com/kerjapedia/hrms-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	db               *database.DB
	userRepo         user.UserRepository
	refreshTokenRepo postgresql.RefreshTokenRepository
}

func NewUserService(db *database.DB, userRepo user.UserRepository, refreshTokenRepo postgresql.RefreshTokenRepository) user.UserService {
	return &UserServiceImpl{
		db:               db,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
	}
}

// CreateUser implements user.UserService.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	passwordHash := string(hash)
	newUser := user.User{
		EmployeeID:   req.EmployeeID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: &passwordHash,
		Role:         user.Role(req.Role),
	}

	created, err := s.userRepo.Create(ctx, newUser)
	if err != nil {
		return user.UserResponse{}, err
	}

	return toUserResponse(created), nil
}

// GetUser implements user.UserService.
func (s *UserServiceImpl) GetUser(ctx context.Context, id string) (user.UserResponse, error) {
	userData, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return toUserResponse(userData), nil
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toUserResponse(u))
	}
	return responses, nil
}

// UpdateUser implements user.UserService.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	// Demoting the last admin would lock everyone out the same way
	// deleting them would.
	if req.Role != nil && *req.Role == string(user.RoleEmployee) {
		current, err := s.userRepo.GetByID(ctx, req.ID)
		if err != nil {
			return user.UserResponse{}, err
		}
		if current.Role == user.RoleAdmin {
			adminCount, err := s.userRepo.CountByRole(ctx, user.RoleAdmin)
			if err != nil {
				return user.UserResponse{}, fmt.Errorf("failed to count admins: %w", err)
			}
			if adminCount <= 1 {
				return user.UserResponse{}, user.ErrLastAdmin
			}
		}
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		passwordHash := string(hash)
		req.PasswordHash = &passwordHash
	}

	if err := s.userRepo.Update(ctx, req); err != nil {
		return user.UserResponse{}, err
	}

	// A password change invalidates every open session for the account.
	if req.Password != nil {
		if err := s.refreshTokenRepo.RevokeAllForUser(ctx, req.ID); err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to revoke sessions: %w", err)
		}
	}

	updated, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return toUserResponse(updated), nil
}

// DeleteUser implements user.UserService.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) error {
	userData, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if userData.Role == user.RoleAdmin {
		adminCount, err := s.userRepo.CountByRole(ctx, user.RoleAdmin)
		if err != nil {
			return fmt.Errorf("failed to count admins: %w", err)
		}
		if adminCount <= 1 {
			return user.ErrLastAdmin
		}
	}

	if err := s.refreshTokenRepo.RevokeAllForUser(ctx, id); err != nil {
		return fmt.Errorf("failed to revoke sessions: %w", err)
	}

	return s.userRepo.Delete(ctx, id)
}

func toUserResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:         u.ID,
		EmployeeID: u.EmployeeID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  u.UpdatedAt.Format(time.RFC3339),
	}
}
