package report

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/performance"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/report"
	performanceservice "github.com/cmlabs-hris/hris-portal-go/internal/service/performance"
	"github.com/shopspring/decimal"
)

// OvertimeHourlyRate is the flat IDR rate used for the overtime cost estimate.
var OvertimeHourlyRate = decimal.NewFromInt(50000)

// performerCount is the size of the top and bottom performer lists.
const performerCount = 5

type ReportServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	overtimeRepo   overtime.OvertimeRequestRepository
	reviewRepo     performance.ReviewRepository
	leaveService   leave.LeaveService
	now            func() time.Time
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	leaveRepo leave.LeaveRequestRepository,
	overtimeRepo overtime.OvertimeRequestRepository,
	reviewRepo performance.ReviewRepository,
	leaveService leave.LeaveService,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		overtimeRepo:   overtimeRepo,
		reviewRepo:     reviewRepo,
		leaveService:   leaveService,
		now:            time.Now,
	}
}

func (s *ReportServiceImpl) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Dashboard summarises the whole organisation for the admin home page.
func (s *ReportServiceImpl) Dashboard(ctx context.Context) (report.DashboardSummary, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return report.DashboardSummary{}, fmt.Errorf("failed to list employees: %w", err)
	}
	records, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return report.DashboardSummary{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	requests, err := s.leaveRepo.List(ctx)
	if err != nil {
		return report.DashboardSummary{}, fmt.Errorf("failed to list leave requests: %w", err)
	}
	reviews, err := s.reviewRepo.List(ctx)
	if err != nil {
		return report.DashboardSummary{}, fmt.Errorf("failed to list reviews: %w", err)
	}

	today := s.today()
	summary := report.DashboardSummary{TotalEmployees: len(employees)}
	for _, r := range records {
		if r.Date.Equal(today) && r.Status == attendance.StatusPresent {
			summary.PresentToday++
		}
	}
	for _, r := range requests {
		if r.Status == leave.LeaveRequestStatusPending {
			summary.PendingLeaves++
		}
	}
	summary.AveragePerformance = averageScore(reviews).Round(1).InexactFloat64()

	return summary, nil
}

// EmployeeDashboard gathers an employee's own data for their home page.
func (s *ReportServiceImpl) EmployeeDashboard(ctx context.Context, employeeID string) (report.EmployeeDashboard, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return report.EmployeeDashboard{}, fmt.Errorf("failed to get employee: %w", err)
	}

	balance, err := s.leaveService.GetBalance(ctx, emp.ID)
	if err != nil {
		return report.EmployeeDashboard{}, fmt.Errorf("failed to get leave balance: %w", err)
	}
	leaves, err := s.leaveService.ListLeaveRequests(ctx, leave.LeaveRequestFilter{EmployeeID: emp.ID})
	if err != nil {
		return report.EmployeeDashboard{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	overtimes, err := s.overtimeRepo.GetByEmployeeID(ctx, emp.ID)
	if err != nil {
		return report.EmployeeDashboard{}, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	overtimeResponses := make([]overtime.OvertimeRequestResponse, 0, len(overtimes))
	for _, o := range overtimes {
		resp := o.ToResponse()
		resp.EmployeeName = emp.Name
		overtimeResponses = append(overtimeResponses, resp)
	}

	dashboard := report.EmployeeDashboard{
		Employee:         emp.ToResponse(),
		RemainingLeave:   balance.RemainingDays,
		LeaveRequests:    leaves,
		OvertimeRequests: overtimeResponses,
	}

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, s.today())
	switch {
	case err == nil:
		resp := record.ToResponse()
		dashboard.TodayAttendance = &resp
	case !errors.Is(err, attendance.ErrAttendanceNotFound):
		return report.EmployeeDashboard{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	reviews, err := s.reviewRepo.GetByEmployeeID(ctx, emp.ID)
	if err != nil {
		return report.EmployeeDashboard{}, fmt.Errorf("failed to list reviews: %w", err)
	}
	if latest, ok := performanceservice.Latest(reviews); ok {
		resp := latest.ToResponse()
		dashboard.LatestReview = &resp
	}

	return dashboard, nil
}

// AttendanceReport counts the month's records per status. An empty month
// means the current one.
func (s *ReportServiceImpl) AttendanceReport(ctx context.Context, req report.AttendanceReportRequest) (report.AttendanceReport, error) {
	if req.Month == "" {
		req.Month = s.today().Format("2006-01")
	}
	if err := req.Validate(); err != nil {
		return report.AttendanceReport{}, err
	}

	records, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return report.AttendanceReport{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return report.AttendanceReport{}, fmt.Errorf("failed to list employees: %w", err)
	}

	result := report.AttendanceReport{
		Month:   req.Month,
		Date:    req.Date,
		Records: make([]attendance.AttendanceResponse, 0),
	}
	var inMonth []attendance.Attendance
	for _, r := range records {
		if r.Date.Format("2006-01") != req.Month {
			continue
		}
		switch r.Status {
		case attendance.StatusPresent:
			result.Counts.Present++
		case attendance.StatusSick:
			result.Counts.Sick++
		case attendance.StatusExcused:
			result.Counts.Excused++
		case attendance.StatusAbsent:
			result.Counts.Absent++
		}
		if req.Date == "" || r.Date.Format("2006-01-02") == req.Date {
			inMonth = append(inMonth, r)
		}
	}

	sort.SliceStable(inMonth, func(i, j int) bool {
		return inMonth[i].Date.After(inMonth[j].Date)
	})
	for _, r := range inMonth {
		resp := r.ToResponse()
		resp.EmployeeName = employee.NameByID(employees, r.EmployeeID)
		result.Records = append(result.Records, resp)
	}
	return result, nil
}

func (s *ReportServiceImpl) LeaveReport(ctx context.Context) (report.LeaveReport, error) {
	requests, err := s.leaveRepo.List(ctx)
	if err != nil {
		return report.LeaveReport{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	result := report.LeaveReport{
		Total:            len(requests),
		TypeDistribution: make(map[string]int),
	}
	for _, r := range requests {
		switch r.Status {
		case leave.LeaveRequestStatusApproved:
			result.Approved++
		case leave.LeaveRequestStatusPending:
			result.Pending++
		case leave.LeaveRequestStatusRejected:
			result.Rejected++
		}
		result.TypeDistribution[string(r.LeaveType)]++
	}
	return result, nil
}

// OvertimeReport totals every request regardless of status. Hours of
// employees no longer on the roster count toward the total only.
func (s *ReportServiceImpl) OvertimeReport(ctx context.Context) (report.OvertimeReport, error) {
	requests, err := s.overtimeRepo.List(ctx)
	if err != nil {
		return report.OvertimeReport{}, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return report.OvertimeReport{}, fmt.Errorf("failed to list employees: %w", err)
	}

	departments := make(map[string]string, len(employees))
	for _, e := range employees {
		departments[e.ID] = e.Department
	}

	total := decimal.Zero
	perDepartment := make(map[string]decimal.Decimal)
	for _, r := range requests {
		total = total.Add(r.Duration)
		if dept, ok := departments[r.EmployeeID]; ok && dept != "" {
			perDepartment[dept] = perDepartment[dept].Add(r.Duration)
		}
	}

	result := report.OvertimeReport{
		TotalRequests:      len(requests),
		TotalHours:         total.InexactFloat64(),
		EstimatedCost:      total.Mul(OvertimeHourlyRate).Round(0).String(),
		HoursPerDepartment: make(map[string]float64, len(perDepartment)),
	}
	for dept, hours := range perDepartment {
		result.HoursPerDepartment[dept] = hours.InexactFloat64()
	}
	return result, nil
}

func (s *ReportServiceImpl) PerformanceReport(ctx context.Context) (report.PerformanceReport, error) {
	reviews, err := s.reviewRepo.List(ctx)
	if err != nil {
		return report.PerformanceReport{}, fmt.Errorf("failed to list reviews: %w", err)
	}
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return report.PerformanceReport{}, fmt.Errorf("failed to list employees: %w", err)
	}

	sorted := make([]performance.Review, len(reviews))
	copy(sorted, reviews)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	toResponses := func(reviews []performance.Review) []performance.ReviewResponse {
		out := make([]performance.ReviewResponse, 0, len(reviews))
		for _, r := range reviews {
			resp := r.ToResponse()
			resp.EmployeeName = employee.NameByID(employees, r.EmployeeID)
			out = append(out, resp)
		}
		return out
	}

	top := sorted[:min(performerCount, len(sorted))]
	bottom := make([]performance.Review, 0, performerCount)
	for i := len(sorted) - 1; i >= 0 && len(bottom) < performerCount; i-- {
		bottom = append(bottom, sorted[i])
	}

	return report.PerformanceReport{
		TotalReviews:  len(reviews),
		AverageScore:  averageScore(reviews).Round(2).InexactFloat64(),
		TopPerformers: toResponses(top),
		LowPerformers: toResponses(bottom),
	}, nil
}

func averageScore(reviews []performance.Review) decimal.Decimal {
	if len(reviews) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, r := range reviews {
		sum = sum.Add(decimal.NewFromFloat(r.Score))
	}
	return sum.Div(decimal.NewFromInt(int64(len(reviews))))
}
