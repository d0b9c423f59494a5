package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)

	GetBalance(w http.ResponseWriter, r *http.Request)
	ListBalances(w http.ResponseWriter, r *http.Request)

	ExportCalendar(w http.ResponseWriter, r *http.Request)
	CalendarLinks(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{
		leaveService: leaveService,
	}
}

// CreateRequest submits a leave request. Employees always submit for
// themselves; administrators name the employee and the request is approved
// on entry.
func (l *LeaveHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(w, r)
	if !ok {
		return
	}

	var req leave.SubmitLeaveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	employeeID, err := targetEmployee(claims, req.EmployeeID)
	if err != nil {
		response.Forbidden(w, err.Error())
		return
	}
	req.EmployeeID = employeeID
	req.SubmittedByAdmin = claims.IsAdmin()

	created, err := l.leaveService.SubmitLeaveRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", created)
}

func (l *LeaveHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
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

	requests, err := l.leaveService.ListLeaveRequests(r.Context(), leave.LeaveRequestFilter{
		EmployeeID: employeeID,
		Status:     query.Get("status"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// getOwned loads a request and checks the caller may see it.
func (l *LeaveHandlerImpl) getOwned(w http.ResponseWriter, r *http.Request) (leave.LeaveRequestResponse, bool) {
	claims, ok := claimsFrom(w, r)
	if !ok {
		return leave.LeaveRequestResponse{}, false
	}

	request, err := l.leaveService.GetLeaveRequest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return leave.LeaveRequestResponse{}, false
	}
	if !canAccess(claims, request.EmployeeID) {
		response.Forbidden(w, errForbiddenEmployee.Error())
		return leave.LeaveRequestResponse{}, false
	}
	return request, true
}

func (l *LeaveHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	request, ok := l.getOwned(w, r)
	if !ok {
		return
	}

	response.Success(w, request)
}

// UpdateStatus approves or rejects a pending request.
func (l *LeaveHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req leave.UpdateStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := l.leaveService.UpdateLeaveStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request "+updated.Status, updated)
}

func (l *LeaveHandlerImpl) GetBalance(w http.ResponseWriter, r *http.Request) {
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

	balance, err := l.leaveService.GetBalance(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balance)
}

func (l *LeaveHandlerImpl) ListBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := l.leaveService.ListBalances(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, balances)
}

func (l *LeaveHandlerImpl) ExportCalendar(w http.ResponseWriter, r *http.Request) {
	request, ok := l.getOwned(w, r)
	if !ok {
		return
	}

	file, err := l.leaveService.ExportCalendar(r.Context(), request.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, "text/calendar; charset=utf-8", file.FileName, file.Content)
}

func (l *LeaveHandlerImpl) CalendarLinks(w http.ResponseWriter, r *http.Request) {
	request, ok := l.getOwned(w, r)
	if !ok {
		return
	}

	links, err := l.leaveService.CalendarLinks(r.Context(), request.ID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, links)
}
