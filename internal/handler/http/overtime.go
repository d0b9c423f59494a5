package http

import (
	"net/http"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-portal-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type OvertimeHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type overtimeHandlerImpl struct {
	overtimeService overtime.OvertimeService
}

func NewOvertimeHandler(overtimeService overtime.OvertimeService) OvertimeHandler {
	return &overtimeHandlerImpl{
		overtimeService: overtimeService,
	}
}

func (h *overtimeHandlerImpl) CreateRequest(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(w, r)
	if !ok {
		return
	}

	var req overtime.SubmitOvertimeRequest
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

	created, err := h.overtimeService.SubmitOvertimeRequest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime request submitted successfully", created)
}

func (h *overtimeHandlerImpl) ListRequests(w http.ResponseWriter, r *http.Request) {
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

	requests, err := h.overtimeService.ListOvertimeRequests(r.Context(), overtime.OvertimeRequestFilter{
		EmployeeID: employeeID,
		Status:     query.Get("status"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

func (h *overtimeHandlerImpl) GetRequest(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(w, r)
	if !ok {
		return
	}

	request, err := h.overtimeService.GetOvertimeRequest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !canAccess(claims, request.EmployeeID) {
		response.Forbidden(w, errForbiddenEmployee.Error())
		return
	}

	response.Success(w, request)
}

func (h *overtimeHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req overtime.UpdateStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.overtimeService.UpdateOvertimeStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request "+updated.Status, updated)
}
