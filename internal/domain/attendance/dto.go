package attendance

import (
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
)

// RecordAttendanceRequest lets an administrator set the status of a day,
// e.g. marking an employee sick or absent.
type RecordAttendanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	CheckIn    *string `json:"check_in,omitempty"`
	CheckOut   *string `json:"check_out,omitempty"`
}

func (r *RecordAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: present, sick, excused, absent"})
	}
	if r.CheckIn != nil && !validator.IsValidClock(*r.CheckIn) {
		errs = append(errs, validator.ValidationError{Field: "check_in", Message: "check_in must be in HH:MM format"})
	}
	if r.CheckOut != nil && !validator.IsValidClock(*r.CheckOut) {
		errs = append(errs, validator.ValidationError{Field: "check_out", Message: "check_out must be in HH:MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceFilter struct {
	EmployeeID string
	StartDate  string
	EndDate    string
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != "" {
		if _, ok := validator.IsValidDate(f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
		}
	}
	if f.EndDate != "" {
		if _, ok := validator.IsValidDate(f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	CheckIn      *string `json:"check_in"`
	CheckOut     *string `json:"check_out"`
	Status       string  `json:"status"`
}
