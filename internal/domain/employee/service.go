package employee

import (
	"context"
	"io"
)

// EmployeeService defines business logic for the employee roster
type EmployeeService interface {
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)
	ListEmployees(ctx context.Context, filter EmployeeFilter) ([]EmployeeResponse, error)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	DeleteEmployee(ctx context.Context, id string) error

	// ExportCSV renders the roster as data_pegawai_<date>.csv
	ExportCSV(ctx context.Context) (ExportFile, error)
	// ImportCSV merges rows by id; the whole batch is rejected on the first bad row
	ImportCSV(ctx context.Context, r io.Reader) (ImportResult, error)
}
