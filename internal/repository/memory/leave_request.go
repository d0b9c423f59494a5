package memory

import (
	"context"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
)

type leaveRequestRepository struct {
	store *Store
}

func NewLeaveRequestRepository(store *Store) leave.LeaveRequestRepository {
	return &leaveRequestRepository{store: store}
}

func (r *leaveRequestRepository) Prepend(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.leaveRequests = prepend(r.store.leaveRequests, request)
	return request, nil
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, lr := range r.store.leaveRequests {
		if lr.ID == id {
			return lr, nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (r *leaveRequestRepository) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return clone(r.store.leaveRequests), nil
}

func (r *leaveRequestRepository) GetByEmployeeID(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var requests []leave.LeaveRequest
	for _, lr := range r.store.leaveRequests {
		if lr.EmployeeID == employeeID {
			requests = append(requests, lr)
		}
	}
	return requests, nil
}

// UpdateStatus moves a pending request to status. Requests that already left
// pending are rejected with ErrLeaveRequestAlreadyProcessed.
func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id string, status leave.LeaveRequestStatus) (leave.LeaveRequest, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, lr := range r.store.leaveRequests {
		if lr.ID != id {
			continue
		}
		if lr.Status != leave.LeaveRequestStatusPending {
			return lr, leave.ErrLeaveRequestAlreadyProcessed
		}
		lr.Status = status
		r.store.leaveRequests[i] = lr
		return lr, nil
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}
