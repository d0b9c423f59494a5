package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/report"
	"github.com/cmlabs-hris/hris-portal-go/internal/handler/http/response"
)

type ReportHandler interface {
	Dashboard(w http.ResponseWriter, r *http.Request)
	EmployeeDashboard(w http.ResponseWriter, r *http.Request)
	AttendanceReport(w http.ResponseWriter, r *http.Request)
	LeaveReport(w http.ResponseWriter, r *http.Request)
	OvertimeReport(w http.ResponseWriter, r *http.Request)
	PerformanceReport(w http.ResponseWriter, r *http.Request)
	CustomReport(w http.ResponseWriter, r *http.Request)
	ExportCustomReport(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
	}
}

func (h *ReportHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reportService.Dashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// EmployeeDashboard serves the caller's own dashboard. Administrators may
// look at any employee through ?employee_id.
func (h *ReportHandlerImpl) EmployeeDashboard(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(w, r)
	if !ok {
		return
	}

	employeeID, err := targetEmployee(claims, r.URL.Query().Get("employee_id"))
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}
	if employeeID == "" {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	dashboard, err := h.reportService.EmployeeDashboard(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, dashboard)
}

// AttendanceReport reads ?month=YYYY-MM and an optional ?date=YYYY-MM-DD.
func (h *ReportHandlerImpl) AttendanceReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.AttendanceReport(r.Context(), report.AttendanceReportRequest{
		Month: r.URL.Query().Get("month"),
		Date:  r.URL.Query().Get("date"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *ReportHandlerImpl) LeaveReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.LeaveReport(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *ReportHandlerImpl) OvertimeReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.OvertimeReport(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *ReportHandlerImpl) PerformanceReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.PerformanceReport(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *ReportHandlerImpl) CustomReport(w http.ResponseWriter, r *http.Request) {
	var req report.CustomReportRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.reportService.CustomReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *ReportHandlerImpl) ExportCustomReport(w http.ResponseWriter, r *http.Request) {
	var req report.CustomReportRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	file, err := h.reportService.ExportCustomReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, "text/csv; charset=utf-8", file.FileName, file.Content)
}
