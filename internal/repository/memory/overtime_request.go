package memory

import (
	"context"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/overtime"
)

type overtimeRequestRepository struct {
	store *Store
}

func NewOvertimeRequestRepository(store *Store) overtime.OvertimeRequestRepository {
	return &overtimeRequestRepository{store: store}
}

func (r *overtimeRequestRepository) Prepend(ctx context.Context, request overtime.OvertimeRequest) (overtime.OvertimeRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.overtimeRequests = prepend(r.store.overtimeRequests, request)
	return request, nil
}

func (r *overtimeRequestRepository) GetByID(ctx context.Context, id string) (overtime.OvertimeRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, o := range r.store.overtimeRequests {
		if o.ID == id {
			return o, nil
		}
	}
	return overtime.OvertimeRequest{}, overtime.ErrOvertimeRequestNotFound
}

func (r *overtimeRequestRepository) List(ctx context.Context) ([]overtime.OvertimeRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return clone(r.store.overtimeRequests), nil
}

func (r *overtimeRequestRepository) GetByEmployeeID(ctx context.Context, employeeID string) ([]overtime.OvertimeRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var requests []overtime.OvertimeRequest
	for _, o := range r.store.overtimeRequests {
		if o.EmployeeID == employeeID {
			requests = append(requests, o)
		}
	}
	return requests, nil
}

func (r *overtimeRequestRepository) UpdateStatus(ctx context.Context, id string, status overtime.OvertimeRequestStatus) (overtime.OvertimeRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, o := range r.store.overtimeRequests {
		if o.ID != id {
			continue
		}
		if o.Status != overtime.OvertimeRequestStatusPending {
			return o, overtime.ErrOvertimeRequestAlreadyProcessed
		}
		o.Status = status
		r.store.overtimeRequests[i] = o
		return o, nil
	}
	return overtime.OvertimeRequest{}, overtime.ErrOvertimeRequestNotFound
}
