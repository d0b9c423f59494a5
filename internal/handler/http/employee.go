package http

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-portal-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// maxImportSize caps CSV uploads.
const maxImportSize = 5 << 20

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	ImportCSV(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := employee.EmployeeFilter{
		Search:     strings.TrimSpace(query.Get("search")),
		Department: query.Get("department"),
		Status:     query.Get("status"),
	}

	employees, err := h.employeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// GetEmployee is open to administrators and to the employee themselves.
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if !canAccess(claims, id) {
		response.Forbidden(w, errForbiddenEmployee.Error())
		return
	}

	emp, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, emp)
}

func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	emp, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", emp)
}

func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.ID = chi.URLParam(r, "id")

	emp, err := h.employeeService.UpdateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", emp)
}

func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.employeeService.DeleteEmployee(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

func (h *employeeHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	file, err := h.employeeService.ExportCSV(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, "text/csv; charset=utf-8", file.FileName, file.Content)
}

// ImportCSV accepts either a multipart upload in the "file" field or a raw
// text/csv body.
func (h *employeeHandlerImpl) ImportCSV(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)

	var source io.Reader = r.Body
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImportSize); err != nil {
			response.BadRequest(w, "Invalid multipart form", nil)
			return
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			response.BadRequest(w, "file is required", nil)
			return
		}
		defer file.Close()
		source = file
	}

	result, err := h.employeeService.ImportCSV(r.Context(), source)
	if err != nil {
		slog.Warn("CSV import rejected", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employees imported successfully", result)
}
