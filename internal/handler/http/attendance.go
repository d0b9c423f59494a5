package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	ListAttendance(w http.ResponseWriter, r *http.Request)
	RecordAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// ClockIn is for employees; the employee id always comes from the token.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(w, r)
	if !ok {
		return
	}
	if claims.EmployeeID == "" {
		response.Forbidden(w, "Only employees can clock in")
		return
	}

	record, err := h.attendanceService.ClockIn(r.Context(), claims.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock in successful", record)
}

func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(w, r)
	if !ok {
		return
	}
	if claims.EmployeeID == "" {
		response.Forbidden(w, "Only employees can clock out")
		return
	}

	record, err := h.attendanceService.ClockOut(r.Context(), claims.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock out successful", record)
}

// GetToday answers with null data when there is no record yet.
func (h *attendanceHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
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

	record, err := h.attendanceService.GetToday(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

func (h *attendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	employeeID, err := targetEmployee(claims, query.Get("employee_id"))
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}

	records, err := h.attendanceService.List(r.Context(), attendance.AttendanceFilter{
		EmployeeID: employeeID,
		StartDate:  query.Get("start_date"),
		EndDate:    query.Get("end_date"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

func (h *attendanceHandlerImpl) RecordAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.RecordAttendanceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	record, err := h.attendanceService.Record(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance recorded successfully", record)
}
