package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyClockedIn   = errors.New("already clocked in today")
	ErrNotClockedIn       = errors.New("not clocked in today")
	ErrAlreadyClockedOut  = errors.New("already clocked out today")
)
