package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, updated Employee) error
	Delete(ctx context.Context, id string) error
	// Merge replaces employees with a matching id in place and appends the
	// rest, as one mutation. New employees without an avatar get the default.
	Merge(ctx context.Context, incoming []Employee) (ImportResult, error)
}
