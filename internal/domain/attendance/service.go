package attendance

import (
	"context"
	"time"
)

type AttendanceService interface {
	// ClockIn opens today's attendance record for the employee. A second
	// clock-in on the same day is refused.
	ClockIn(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// ClockOut closes today's open record and derives the work duration.
	ClockOut(ctx context.Context, employeeID string) (AttendanceResponse, error)

	// ListByEmployee returns one employee's attendance history, newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]AttendanceResponse, error)

	// List returns attendance records, optionally for a single date (admin only).
	List(ctx context.Context, date *time.Time) ([]AttendanceResponse, error)
}
