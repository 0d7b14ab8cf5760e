package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]Attendance, error)
	List(ctx context.Context, date *time.Time) ([]Attendance, error)
	SetClockOut(ctx context.Context, id string, clockOut time.Time, workDuration string) error
}
