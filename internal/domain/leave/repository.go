package leave

import (
	"context"
)

// LeaveRequestRepository keeps requests most-recent-first.
type LeaveRequestRepository interface {
	// Prepend stores a new request at the head of the collection.
	Prepend(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	List(ctx context.Context) ([]LeaveRequest, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id string, status LeaveRequestStatus) (LeaveRequest, error)
}
