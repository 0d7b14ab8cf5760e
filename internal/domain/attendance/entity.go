package attendance

import "time"

type Status string

const (
	StatusOnTime Status = "on_time"
	StatusLate   Status = "late"
	StatusAbsent Status = "absent"
)

// WorkStartCutoff is the clock-in time after which an employee is marked late.
const WorkStartCutoff = "09:00:00"

// Attendance holds at most one record per (employee, date).
type Attendance struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Date         time.Time
	ClockIn      *time.Time
	ClockOut     *time.Time
	Status       Status
	WorkDuration *string // display string, derived from clock-out − clock-in
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
