package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusSick    Status = "sick"
	StatusExcused Status = "excused"
	StatusAbsent  Status = "absent"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPresent, StatusSick, StatusExcused, StatusAbsent:
		return true
	}
	return false
}

// Attendance is one record per employee per calendar date.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *string // HH:MM
	CheckOut   *string // HH:MM
	Status     Status
}

func (a Attendance) ToResponse() AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format("2006-01-02"),
		CheckIn:    a.CheckIn,
		CheckOut:   a.CheckOut,
		Status:     string(a.Status),
	}
}
