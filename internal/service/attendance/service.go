package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kerjapedia/hrms-backend-go/internal/domain/attendance"
	"github.com/kerjapedia/hrms-backend-go/internal/domain/employee"
	"github.com/kerjapedia/hrms-backend-go/internal/pkg/database"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

type AttendanceServiceImpl struct {
	db             *database.DB
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	now            func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:             db,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            time.Now,
	}
}

// StatusForClockIn marks a clock-in late when its time of day is past the
// work start cutoff.
func StatusForClockIn(clockIn time.Time) attendance.Status {
	cutoff, _ := time.Parse(timeLayout, attendance.WorkStartCutoff)

	h, m, sec := clockIn.Clock()
	ch, cm, cs := cutoff.Clock()

	if (h*3600 + m*60 + sec) > (ch*3600 + cm*60 + cs) {
		return attendance.StatusLate
	}
	return attendance.StatusOnTime
}

// FormatWorkDuration renders the time between clock-in and clock-out as
// "Xh Ym", dropping seconds.
func FormatWorkDuration(clockIn, clockOut time.Time) string {
	d := clockOut.Sub(clockIn)
	if d < 0 {
		d = 0
	}

	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	_, err = s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's attendance: %w", err)
	}

	newAttendance := attendance.Attendance{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName,
		Date:         today,
		ClockIn:      &now,
		Status:       StatusForClockIn(now),
	}

	// The unique (employee, date) index turns a concurrent double clock-in
	// into ErrAlreadyClockedIn at the repository.
	created, err := s.attendanceRepo.Create(ctx, newAttendance)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toAttendanceResponse(created), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	if record.ClockIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotClockedIn
	}
	if record.ClockOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedOut
	}

	duration := FormatWorkDuration(*record.ClockIn, now)
	if err := s.attendanceRepo.SetClockOut(ctx, record.ID, now, duration); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record.ClockOut = &now
	record.WorkDuration = &duration
	return toAttendanceResponse(record), nil
}

// ListByEmployee implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return toAttendanceResponses(records), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, date *time.Time) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.List(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return toAttendanceResponses(records), nil
}

func toAttendanceResponse(a attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         a.Date.Format(dateLayout),
		Status:       string(a.Status),
		WorkDuration: a.WorkDuration,
	}
	if a.ClockIn != nil {
		clockIn := a.ClockIn.Format(time.RFC3339)
		resp.ClockIn = &clockIn
	}
	if a.ClockOut != nil {
		clockOut := a.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &clockOut
	}
	return resp
}

func toAttendanceResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, toAttendanceResponse(a))
	}
	return responses
}
