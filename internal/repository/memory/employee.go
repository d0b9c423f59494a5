package memory

import (
	"context"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
)

type employeeRepository struct {
	store *Store
}

func NewEmployeeRepository(store *Store) employee.EmployeeRepository {
	return &employeeRepository{store: store}
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, e := range r.store.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, e := range r.store.employees {
		if strings.EqualFold(e.Email, email) {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return clone(r.store.employees), nil
}

// Create assigns the next numeric id (max + 1) when none is set, gives the
// default avatar when none is set, and puts the employee at the head of the
// roster.
func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, e := range r.store.employees {
		if strings.EqualFold(e.Email, newEmployee.Email) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		if e.NIP == newEmployee.NIP {
			return employee.Employee{}, employee.ErrNIPExists
		}
	}

	if newEmployee.ID == "" {
		newEmployee.ID = nextEmployeeID(r.store.employees)
	}
	if newEmployee.AvatarURL == "" {
		newEmployee.AvatarURL = employee.DefaultAvatarURL(newEmployee.ID)
	}

	r.store.employees = prepend(r.store.employees, newEmployee)
	return newEmployee, nil
}

func (r *employeeRepository) Update(ctx context.Context, updated employee.Employee) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	idx := -1
	for i, e := range r.store.employees {
		if e.ID == updated.ID {
			idx = i
			continue
		}
		if strings.EqualFold(e.Email, updated.Email) {
			return employee.ErrEmailExists
		}
	}
	if idx < 0 {
		return employee.ErrEmployeeNotFound
	}

	r.store.employees[idx] = updated
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, e := range r.store.employees {
		if e.ID == id {
			r.store.employees = append(r.store.employees[:i:i], r.store.employees[i+1:]...)
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

func (r *employeeRepository) Merge(ctx context.Context, incoming []employee.Employee) (employee.ImportResult, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	merged := clone(r.store.employees)
	index := make(map[string]int, len(merged)+len(incoming))
	for i, e := range merged {
		index[e.ID] = i
	}

	var result employee.ImportResult
	for _, e := range incoming {
		if i, ok := index[e.ID]; ok {
			merged[i] = e
			result.Updated++
			continue
		}
		if e.AvatarURL == "" {
			e.AvatarURL = employee.DefaultAvatarURL(e.ID)
		}
		index[e.ID] = len(merged)
		merged = append(merged, e)
		result.Added++
	}

	r.store.employees = merged
	return result, nil
}

func nextEmployeeID(employees []employee.Employee) string {
	highest := 0
	for _, e := range employees {
		if n, err := strconv.Atoi(e.ID); err == nil && n > highest {
			highest = n
		}
	}
	return strconv.Itoa(highest + 1)
}
