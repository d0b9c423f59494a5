package report

import (
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/performance"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
)

type DashboardSummary struct {
	TotalEmployees     int     `json:"total_employees"`
	PresentToday       int     `json:"present_today"`
	PendingLeaves      int     `json:"pending_leaves"`
	AveragePerformance float64 `json:"average_performance"`
}

type LeaveReport struct {
	Total            int            `json:"total"`
	Approved         int            `json:"approved"`
	Pending          int            `json:"pending"`
	Rejected         int            `json:"rejected"`
	TypeDistribution map[string]int `json:"type_distribution"`
}

type OvertimeReport struct {
	TotalRequests      int                `json:"total_requests"`
	TotalHours         float64            `json:"total_hours"`
	EstimatedCost      string             `json:"estimated_cost"`
	HoursPerDepartment map[string]float64 `json:"hours_per_department"`
}

type PerformanceReport struct {
	TotalReviews  int                          `json:"total_reviews"`
	AverageScore  float64                      `json:"average_score"`
	TopPerformers []performance.ReviewResponse `json:"top_performers"`
	LowPerformers []performance.ReviewResponse `json:"low_performers"`
}

type AttendanceCounts struct {
	Present int `json:"present"`
	Sick    int `json:"sick"`
	Excused int `json:"excused"`
	Absent  int `json:"absent"`
}

// AttendanceReport is the monthly status summary. Records holds the month's
// records, or only those of Date when a day is picked.
type AttendanceReport struct {
	Month   string                          `json:"month"`
	Date    string                          `json:"date,omitempty"`
	Counts  AttendanceCounts                `json:"counts"`
	Records []attendance.AttendanceResponse `json:"records"`
}

type AttendanceReportRequest struct {
	Month string `json:"month"`
	Date  string `json:"date,omitempty"`
}

func (r *AttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be in YYYY-MM format"})
	}
	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeDashboard is everything an employee sees on their own page.
type EmployeeDashboard struct {
	Employee         employee.EmployeeResponse          `json:"employee"`
	RemainingLeave   int                                `json:"remaining_leave"`
	TodayAttendance  *attendance.AttendanceResponse     `json:"today_attendance"`
	LatestReview     *performance.ReviewResponse        `json:"latest_review"`
	LeaveRequests    []leave.LeaveRequestResponse       `json:"leave_requests"`
	OvertimeRequests []overtime.OvertimeRequestResponse `json:"overtime_requests"`
}

type CustomReportType string

const (
	CustomReportEmployees  CustomReportType = "pegawai"
	CustomReportAttendance CustomReportType = "kehadiran"
)

// Column is a selectable report column with its CSV header label.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

var EmployeeColumns = []Column{
	{Key: "nip", Label: "NIP"},
	{Key: "name", Label: "Nama"},
	{Key: "position", Label: "Jabatan"},
	{Key: "department", Label: "Departemen"},
	{Key: "status", Label: "Status"},
	{Key: "join_date", Label: "Tanggal Bergabung"},
	{Key: "email", Label: "Email"},
}

var AttendanceColumns = []Column{
	{Key: "employee_name", Label: "Nama Pegawai"},
	{Key: "date", Label: "Tanggal"},
	{Key: "check_in", Label: "Jam Masuk"},
	{Key: "check_out", Label: "Jam Pulang"},
	{Key: "status", Label: "Status Kehadiran"},
}

type CustomReportRequest struct {
	Type       string   `json:"type"`
	Columns    []string `json:"columns"`
	StartDate  string   `json:"start_date,omitempty"`
	EndDate    string   `json:"end_date,omitempty"`
	Department string   `json:"department,omitempty"`
	Status     string   `json:"status,omitempty"`
}

func (r *CustomReportRequest) Validate() error {
	var errs validator.ValidationErrors

	var available []Column
	switch CustomReportType(r.Type) {
	case CustomReportEmployees:
		available = EmployeeColumns
	case CustomReportAttendance:
		available = AttendanceColumns
	default:
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type must be one of: pegawai, kehadiran"})
	}

	if len(r.Columns) == 0 {
		errs = append(errs, validator.ValidationError{Field: "columns", Message: "at least one column is required"})
	}
	if available != nil {
		for _, c := range r.Columns {
			if _, ok := FindColumn(available, c); !ok {
				errs = append(errs, validator.ValidationError{Field: "columns", Message: "unknown column: " + c})
				break
			}
		}
	}

	if r.StartDate != "" {
		if _, ok := validator.IsValidDate(r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
		}
	}
	if r.EndDate != "" {
		if _, ok := validator.IsValidDate(r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// FindColumn looks a column up by key.
func FindColumn(columns []Column, key string) (Column, bool) {
	for _, c := range columns {
		if c.Key == key {
			return c, true
		}
	}
	return Column{}, false
}

type CustomReport struct {
	Type    string              `json:"type"`
	Columns []Column            `json:"columns"`
	Rows    []map[string]string `json:"rows"`
}

type ExportFile struct {
	FileName string
	Content  []byte
}
