package leave

import (
	"math"
	"time"
)

type LeaveType string

const (
	LeaveTypeAnnual    LeaveType = "annual"
	LeaveTypeSick      LeaveType = "sick"
	LeaveTypeMaternity LeaveType = "maternity"
	LeaveTypeOther     LeaveType = "other"
)

func (t LeaveType) IsValid() bool {
	switch t {
	case LeaveTypeAnnual, LeaveTypeSick, LeaveTypeMaternity, LeaveTypeOther:
		return true
	}
	return false
}

// Label is the Indonesian display name used in notifications and calendar entries.
func (t LeaveType) Label() string {
	switch t {
	case LeaveTypeAnnual:
		return "Cuti Tahunan"
	case LeaveTypeSick:
		return "Cuti Sakit"
	case LeaveTypeMaternity:
		return "Cuti Melahirkan"
	default:
		return "Cuti Penting"
	}
}

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

// Label is the Indonesian word shown to the employee.
func (s LeaveRequestStatus) Label() string {
	switch s {
	case LeaveRequestStatusApproved:
		return "Disetujui"
	case LeaveRequestStatusRejected:
		return "Ditolak"
	default:
		return "Menunggu"
	}
}

// LeaveRequest entity
type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     LeaveRequestStatus
	CreatedAt  time.Time
}

// Days returns the inclusive day span of the request.
func (r LeaveRequest) Days() int {
	diff := r.EndDate.Sub(r.StartDate)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours()/24)) + 1
}

func (r LeaveRequest) ToResponse() LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		LeaveType:  string(r.LeaveType),
		StartDate:  r.StartDate.Format("2006-01-02"),
		EndDate:    r.EndDate.Format("2006-01-02"),
		TotalDays:  r.Days(),
		Reason:     r.Reason,
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt,
	}
}

// Balances maps employee id to remaining annual leave days.
type Balances map[string]int
