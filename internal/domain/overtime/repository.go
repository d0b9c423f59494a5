package overtime

import "context"

type OvertimeRequestRepository interface {
	Prepend(ctx context.Context, request OvertimeRequest) (OvertimeRequest, error)
	GetByID(ctx context.Context, id string) (OvertimeRequest, error)
	List(ctx context.Context) ([]OvertimeRequest, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]OvertimeRequest, error)
	UpdateStatus(ctx context.Context, id string, status OvertimeRequestStatus) (OvertimeRequest, error)
}
