package employee

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp.ToResponse(), nil
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		if filter.Matches(e) {
			responses = append(responses, e.ToResponse())
		}
	}
	return responses, nil
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joinDate, _ := time.Parse("2006-01-02", req.JoinDate)

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		NIP:        req.NIP,
		Name:       req.Name,
		Position:   req.Position,
		Department: req.Department,
		Status:     employee.Status(req.Status),
		JoinDate:   joinDate,
		Email:      req.Email,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.Info("Employee created", "id", created.ID, "nip", created.NIP)
	return created.ToResponse(), nil
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Status != nil {
		emp.Status = employee.Status(*req.Status)
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return emp.ToResponse(), nil
}

func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	slog.Info("Employee deleted", "id", id)
	return nil
}

func (s *EmployeeServiceImpl) ExportCSV(ctx context.Context) (employee.ExportFile, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.ExportFile{}, fmt.Errorf("failed to list employees: %w", err)
	}

	return employee.ExportFile{
		FileName: fmt.Sprintf("data_pegawai_%s.csv", s.now().Format("2006-01-02")),
		Content:  encodeCSV(employees),
	}, nil
}

// ImportCSV merges the file into the roster by id. Nothing is written unless
// every row parses and validates.
func (s *EmployeeServiceImpl) ImportCSV(ctx context.Context, r io.Reader) (employee.ImportResult, error) {
	rows, err := decodeCSV(r)
	if err != nil {
		return employee.ImportResult{}, err
	}

	result, err := s.employeeRepo.Merge(ctx, rows)
	if err != nil {
		return employee.ImportResult{}, fmt.Errorf("failed to save imported employees: %w", err)
	}

	slog.Info("Employees imported", "added", result.Added, "updated", result.Updated)
	return result, nil
}
