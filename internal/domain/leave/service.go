package leave

import (
	"context"
)

type LeaveService interface {
	// Request lifecycle
	SubmitLeaveRequest(ctx context.Context, req SubmitLeaveRequest) (LeaveRequestResponse, error)
	UpdateLeaveStatus(ctx context.Context, req UpdateStatusRequest) (LeaveRequestResponse, error)
	GetLeaveRequest(ctx context.Context, id string) (LeaveRequestResponse, error)
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequestResponse, error)

	// Balance
	GetBalance(ctx context.Context, employeeID string) (BalanceResponse, error)
	ListBalances(ctx context.Context) ([]BalanceResponse, error)

	// Calendar
	ExportCalendar(ctx context.Context, id string) (CalendarFile, error)
	CalendarLinks(ctx context.Context, id string) (CalendarLinksResponse, error)
}
