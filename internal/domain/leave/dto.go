package leave

import (
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`

	// Set from the caller's role, never from the body.
	SubmittedByAdmin bool `json:"-"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !LeaveType(r.LeaveType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of: annual, sick, maternity, other",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "start_date must not be after end_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
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
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Status != string(LeaveRequestStatusApproved) && r.Status != string(LeaveRequestStatusRejected) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: approved, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestFilter struct {
	EmployeeID string
	Status     string
}

type LeaveRequestResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName string    `json:"employee_name,omitempty"`
	LeaveType    string    `json:"leave_type"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	TotalDays    int       `json:"total_days"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type BalanceResponse struct {
	EmployeeID    string `json:"employee_id"`
	EmployeeName  string `json:"employee_name,omitempty"`
	Year          int    `json:"year"`
	RemainingDays int    `json:"remaining_days"`
}

// CalendarFile is an .ics document ready for download.
type CalendarFile struct {
	FileName string
	Content  []byte
}

type CalendarLinksResponse struct {
	GoogleURL  string `json:"google_url"`
	OutlookURL string `json:"outlook_url"`
}
