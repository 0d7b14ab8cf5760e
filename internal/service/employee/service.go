package employee

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/kerjapedia/hrms-backend-go/internal/domain/employee"
	"github.com/kerjapedia/hrms-backend-go/internal/domain/user"
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/database"
	"github.com/kerjapedia/hrms-backend-go/internal/repository/postgresql"
	"github.com/kerjapedia/hrms-backend-go/internal/service/file"
	"golang.org/x/crypto/bcrypt"
)

const dateLayout = "2006-01-02"

type EmployeeServiceImpl struct {
	db           *database.DB
	employeeRepo employee.EmployeeRepository
	userRepo     user.UserRepository
	fileService  file.FileService
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
	fileService file.FileService,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:           db,
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
		fileService:  fileService,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	joinDate, _ := time.Parse(dateLayout, req.JoinDate)

	newEmployee := employee.Employee{
		FullName:     req.FullName,
		Email:        req.Email,
		Position:     req.Position,
		Grade:        req.Grade,
		Department:   req.Department,
		JoinDate:     joinDate,
		LeaveBalance: employee.DefaultLeaveBalance,
		IsActive:     true,
		Address:      req.Address,
		Phone:        req.Phone,
		PlaceOfBirth: req.PlaceOfBirth,
		Religion:     req.Religion,
		Education:    employee.EducationHistory(req.Education),
		WorkHistory:  employee.WorkHistory(req.WorkHistory),
		Certificates: employee.Certificates(req.Certificates),
		PayrollInfo:  employee.DefaultPayrollInfo(),
	}

	if req.NIP != nil {
		if _, err := s.employeeRepo.GetByNIP(ctx, *req.NIP); err == nil {
			return employee.EmployeeResponse{}, employee.ErrNIPExists
		} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, err
		}
		newEmployee.NIP = *req.NIP
	} else {
		newEmployee.NIP = employee.GenerateNIP(time.Now())
	}
	if req.DateOfBirth != nil {
		dob, _ := time.Parse(dateLayout, *req.DateOfBirth)
		newEmployee.DateOfBirth = &dob
	}
	if req.MaritalStatus != nil {
		ms := employee.MaritalStatus(*req.MaritalStatus)
		newEmployee.MaritalStatus = &ms
	}
	if req.NumberOfChildren != nil {
		newEmployee.NumberOfChildren = *req.NumberOfChildren
	}
	if req.PayrollInfo != nil {
		newEmployee.PayrollInfo = *req.PayrollInfo
	}

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = s.employeeRepo.Create(txCtx, newEmployee)
		if err != nil {
			return err
		}

		passwordHash := string(hash)
		newUser := user.User{
			EmployeeID:   &created.ID,
			Name:         req.FullName,
			Email:        req.Email,
			PasswordHash: &passwordHash,
			Role:         user.RoleEmployee,
		}
		if _, err := s.userRepo.Create(txCtx, newUser); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, activeOnly bool) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toEmployeeResponse(emp))
	}
	return responses, nil
}

// UpdateEmployee implements employee.EmployeeService. The linked user's name
// and email follow the employee record inside the same transaction.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	var updated employee.Employee

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		rowsAffected, err := s.employeeRepo.Update(txCtx, req)
		if err != nil {
			return err
		}
		if rowsAffected == 0 {
			return employee.ErrEmployeeNotFound
		}

		updated, err = s.employeeRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		if req.FullName != nil || req.Email != nil {
			if err := s.userRepo.UpdateByEmployeeID(txCtx, updated.ID, updated.FullName, updated.Email); err != nil {
				return fmt.Errorf("failed to sync linked user: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(updated), nil
}

// UpdatePayrollInfo implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdatePayrollInfo(ctx context.Context, req employee.UpdatePayrollInfoRequest) (employee.EmployeeResponse, error) {
	info := employee.PayrollInfo{
		BaseSalary: req.BaseSalary,
		Incomes:    req.Incomes,
		Deductions: req.Deductions,
	}
	if info.Incomes == nil {
		info.Incomes = employee.PayrollComponents{}
	}
	if info.Deductions == nil {
		info.Deductions = employee.PayrollComponents{}
	}

	rowsAffected, err := s.employeeRepo.UpdatePayrollInfo(ctx, req.EmployeeID, info)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update payroll info: %w", err)
	}
	if rowsAffected == 0 {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toEmployeeResponse(emp), nil
}

// UploadAvatar implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UploadAvatar(ctx context.Context, employeeID string, f io.Reader, filename string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	path, err := s.fileService.UploadAvatar(ctx, employeeID, f, filename)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to upload avatar: %w", err)
	}

	if err := s.employeeRepo.UpdateAvatarURL(ctx, employeeID, path); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp.AvatarURL = &path
	return toEmployeeResponse(emp), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

func toEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:               e.ID,
		NIP:              e.NIP,
		FullName:         e.FullName,
		Email:            e.Email,
		Position:         e.Position,
		Grade:            e.Grade,
		Department:       e.Department,
		JoinDate:         e.JoinDate.Format(dateLayout),
		AvatarURL:        e.AvatarURL,
		LeaveBalance:     e.LeaveBalance,
		IsActive:         e.IsActive,
		Address:          e.Address,
		Phone:            e.Phone,
		PlaceOfBirth:     e.PlaceOfBirth,
		Religion:         e.Religion,
		NumberOfChildren: e.NumberOfChildren,
		Education:        e.Education,
		WorkHistory:      e.WorkHistory,
		Certificates:     e.Certificates,
		PayrollInfo:      e.PayrollInfo,
		CreatedAt:        e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        e.UpdatedAt.Format(time.RFC3339),
	}
	if e.DateOfBirth != nil {
		dob := e.DateOfBirth.Format(dateLayout)
		resp.DateOfBirth = &dob
	}
	if e.MaritalStatus != nil {
		ms := string(*e.MaritalStatus)
		resp.MaritalStatus = &ms
	}
	if resp.Education == nil {
		resp.Education = employee.EducationHistory{}
	}
	if resp.WorkHistory == nil {
		resp.WorkHistory = employee.WorkHistory{}
	}
	if resp.Certificates == nil {
		resp.Certificates = employee.Certificates{}
	}
	return resp
}
