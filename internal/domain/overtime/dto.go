package overtime

import (
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
)

type SubmitOvertimeRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Reason     string `json:"reason"`

	SubmittedByAdmin bool `json:"-"`
}

// Validate rejects the submission before any request object exists.
// Times are compared as HH:MM strings, so only same-day windows pass.
func (r *SubmitOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}

	startOK := validator.IsValidClock(r.StartTime)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "start_time must be in HH:MM format"})
	}
	endOK := validator.IsValidClock(r.EndTime)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "end_time must be in HH:MM format"})
	}
	if startOK && endOK && r.StartTime >= r.EndTime {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: ErrInvalidTimeRange.Error()})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.Status != string(OvertimeRequestStatusApproved) && r.Status != string(OvertimeRequestStatusRejected) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: approved, rejected"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OvertimeRequestFilter struct {
	EmployeeID string
	Status     string
}

type OvertimeRequestResponse struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employee_id"`
	EmployeeName  string    `json:"employee_name,omitempty"`
	Date          string    `json:"date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	DurationHours float64   `json:"duration_hours"`
	Reason        string    `json:"reason"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
