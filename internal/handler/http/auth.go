package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-portal-go/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService     auth.AuthService
	employeeService employee.EmployeeService
}

func NewAuthHandler(authService auth.AuthService, employeeService employee.EmployeeService) AuthHandler {
	return &AuthHandlerImpl{
		authService:     authService,
		employeeService: employeeService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest
	if !decodeJSON(w, r, &loginReq) {
		return
	}

	loginResp, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Warn("Login failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", loginResp)
}

type meResponse struct {
	UserID   string                     `json:"user_id"`
	Role     auth.Role                  `json:"role"`
	Employee *employee.EmployeeResponse `json:"employee,omitempty"`
}

// Me returns the identity behind the bearer token.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(w, r)
	if !ok {
		return
	}

	me := meResponse{UserID: claims.UserID, Role: claims.Role}
	if !claims.IsAdmin() {
		profile, err := a.employeeService.GetEmployee(r.Context(), claims.EmployeeID)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		me.Employee = &profile
	}

	response.Success(w, me)
}
