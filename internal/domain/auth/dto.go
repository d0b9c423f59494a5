package auth

import (
	"strings"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Email = strings.TrimSpace(r.Email)
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.Password == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken          string                     `json:"access_token"`
	AccessTokenExpiresIn int64                      `json:"access_token_expires_in"`
	Role                 Role                       `json:"role"`
	UserID               string                     `json:"user_id"`
	Employee             *employee.EmployeeResponse `json:"employee,omitempty"`
}
