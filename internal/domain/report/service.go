package report

import "context"

type ReportService interface {
	Dashboard(ctx context.Context) (DashboardSummary, error)
	EmployeeDashboard(ctx context.Context, employeeID string) (EmployeeDashboard, error)
	AttendanceReport(ctx context.Context, req AttendanceReportRequest) (AttendanceReport, error)
	LeaveReport(ctx context.Context) (LeaveReport, error)
	OvertimeReport(ctx context.Context) (OvertimeReport, error)
	PerformanceReport(ctx context.Context) (PerformanceReport, error)
	CustomReport(ctx context.Context, req CustomReportRequest) (CustomReport, error)
	ExportCustomReport(ctx context.Context, req CustomReportRequest) (ExportFile, error)
}
