package overtime

import "context"

type OvertimeService interface {
	SubmitOvertimeRequest(ctx context.Context, req SubmitOvertimeRequest) (OvertimeRequestResponse, error)
	UpdateOvertimeStatus(ctx context.Context, req UpdateStatusRequest) (OvertimeRequestResponse, error)
	GetOvertimeRequest(ctx context.Context, id string) (OvertimeRequestResponse, error)
	ListOvertimeRequests(ctx context.Context, filter OvertimeRequestFilter) ([]OvertimeRequestResponse, error)
}
