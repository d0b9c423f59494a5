package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cmlabs-hris/hris-portal-go/internal/config"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	employee.EmployeeRepository
	jwt.Service
	adminEmail           string
	adminPasswordHash    []byte
	employeePasswordHash []byte
}

// NewAuthService hashes the configured passwords once so that plain secrets
// are not kept in memory and every check goes through bcrypt.
func NewAuthService(employeeRepository employee.EmployeeRepository, jwtService jwt.Service, cfg config.AuthConfig) (auth.AuthService, error) {
	adminHash, err := hashPassword(cfg.AdminPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	employeeHash, err := hashPassword(cfg.EmployeePassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash employee password: %w", err)
	}

	return &AuthServiceImpl{
		EmployeeRepository:   employeeRepository,
		Service:              jwtService,
		adminEmail:           strings.TrimSpace(cfg.AdminEmail),
		adminPasswordHash:    adminHash,
		employeePasswordHash: employeeHash,
	}, nil
}

func hashPassword(password string) ([]byte, error) {
	if password == "" {
		return nil, errors.New("password is empty")
	}
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// Login accepts the administrator credentials or any registered employee
// email together with the shared employee password.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	if strings.EqualFold(req.Email, a.adminEmail) {
		if err := bcrypt.CompareHashAndPassword(a.adminPasswordHash, []byte(req.Password)); err != nil {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}

		token, expiresAt, err := a.Service.GenerateAccessToken(notification.AdminUserID, auth.RoleAdmin, nil)
		if err != nil {
			return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
		}

		slog.Info("Admin logged in")
		return auth.LoginResponse{
			AccessToken:          token,
			AccessTokenExpiresIn: expiresAt,
			Role:                 auth.RoleAdmin,
			UserID:               notification.AdminUserID,
		}, nil
	}

	emp, err := a.EmployeeRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			// Still pay for a comparison so unknown emails take as long as wrong passwords.
			_ = bcrypt.CompareHashAndPassword(a.employeePasswordHash, []byte(req.Password))
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(a.employeePasswordHash, []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(emp.ID, auth.RoleEmployee, &emp.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	slog.Info("Employee logged in", "employee_id", emp.ID)

	profile := emp.ToResponse()
	return auth.LoginResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
		Role:                 auth.RoleEmployee,
		UserID:               emp.ID,
		Employee:             &profile,
	}, nil
}
