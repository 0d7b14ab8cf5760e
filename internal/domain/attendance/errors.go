package attendance

import "errors"

var (
	ErrAlreadyClockedIn   = errors.New("already clocked in today")
	ErrNotClockedIn       = errors.New("no open clock-in for today")
	ErrAlreadyClockedOut  = errors.New("already clocked out today")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
