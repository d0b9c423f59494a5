package overtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/overtime"
	"github.com/google/uuid"
)

type OvertimeServiceImpl struct {
	overtime.OvertimeRequestRepository
	employee.EmployeeRepository
	notifier notification.Service
	now      func() time.Time
}

func NewOvertimeService(
	overtimeRequestRepository overtime.OvertimeRequestRepository,
	employeeRepository employee.EmployeeRepository,
	notifier notification.Service,
) overtime.OvertimeService {
	return &OvertimeServiceImpl{
		OvertimeRequestRepository: overtimeRequestRepository,
		EmployeeRepository:        employeeRepository,
		notifier:                  notifier,
		now:                       time.Now,
	}
}

func (o *OvertimeServiceImpl) SubmitOvertimeRequest(ctx context.Context, req overtime.SubmitOvertimeRequest) (overtime.OvertimeRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}

	emp, err := o.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return overtime.OvertimeRequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	duration, err := DurationHours(req.Date, req.StartTime, req.EndTime, overtime.DurationPrecision)
	if err != nil {
		return overtime.OvertimeRequestResponse{}, fmt.Errorf("failed to calculate duration: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return overtime.OvertimeRequestResponse{}, fmt.Errorf("failed to generate overtime request ID: %w", err)
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	status := overtime.OvertimeRequestStatusPending
	if req.SubmittedByAdmin {
		status = overtime.OvertimeRequestStatusApproved
	}

	created, err := o.OvertimeRequestRepository.Prepend(ctx, overtime.OvertimeRequest{
		ID:         id.String(),
		EmployeeID: emp.ID,
		Date:       date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		Duration:   duration,
		Reason:     req.Reason,
		Status:     status,
		CreatedAt:  o.now(),
	})
	if err != nil {
		return overtime.OvertimeRequestResponse{}, fmt.Errorf("failed to create overtime request: %w", err)
	}

	if req.SubmittedByAdmin {
		o.notify(ctx, emp.ID,
			fmt.Sprintf("Admin menambahkan lembur baru untuk Anda pada tanggal %s.", req.Date),
			notification.LinkEmployeeDashboard)
	} else {
		o.notify(ctx, notification.AdminUserID,
			fmt.Sprintf("%s mengajukan lembur baru.", emp.Name),
			notification.LinkOvertimeData)
	}

	slog.Info("Overtime request submitted", "id", created.ID, "employee_id", emp.ID, "hours", created.Duration.String())

	resp := created.ToResponse()
	resp.EmployeeName = emp.Name
	return resp, nil
}

func (o *OvertimeServiceImpl) UpdateOvertimeStatus(ctx context.Context, req overtime.UpdateStatusRequest) (overtime.OvertimeRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeRequestResponse{}, err
	}

	updated, err := o.OvertimeRequestRepository.UpdateStatus(ctx, req.ID, overtime.OvertimeRequestStatus(req.Status))
	if err != nil {
		return overtime.OvertimeRequestResponse{}, fmt.Errorf("failed to update overtime request status: %w", err)
	}

	o.notify(ctx, updated.EmployeeID,
		fmt.Sprintf("Pengajuan lembur Anda pada tanggal %s telah %s.", updated.Date.Format("2006-01-02"), updated.Status.Label()),
		notification.LinkEmployeeDashboard,
	)

	slog.Info("Overtime request status updated", "id", updated.ID, "status", updated.Status)

	resp := updated.ToResponse()
	resp.EmployeeName = o.employeeName(ctx, updated.EmployeeID)
	return resp, nil
}

func (o *OvertimeServiceImpl) GetOvertimeRequest(ctx context.Context, id string) (overtime.OvertimeRequestResponse, error) {
	request, err := o.OvertimeRequestRepository.GetByID(ctx, id)
	if err != nil {
		return overtime.OvertimeRequestResponse{}, fmt.Errorf("failed to get overtime request: %w", err)
	}

	resp := request.ToResponse()
	resp.EmployeeName = o.employeeName(ctx, request.EmployeeID)
	return resp, nil
}

func (o *OvertimeServiceImpl) ListOvertimeRequests(ctx context.Context, filter overtime.OvertimeRequestFilter) ([]overtime.OvertimeRequestResponse, error) {
	var (
		requests []overtime.OvertimeRequest
		err      error
	)
	if filter.EmployeeID != "" {
		requests, err = o.OvertimeRequestRepository.GetByEmployeeID(ctx, filter.EmployeeID)
	} else {
		requests, err = o.OvertimeRequestRepository.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}

	employees, err := o.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]overtime.OvertimeRequestResponse, 0, len(requests))
	for _, r := range requests {
		if filter.Status != "" && string(r.Status) != filter.Status {
			continue
		}
		resp := r.ToResponse()
		resp.EmployeeName = employee.NameByID(employees, r.EmployeeID)
		responses = append(responses, resp)
	}
	return responses, nil
}

func (o *OvertimeServiceImpl) employeeName(ctx context.Context, employeeID string) string {
	emp, err := o.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return employee.UnknownName
	}
	return emp.Name
}

func (o *OvertimeServiceImpl) notify(ctx context.Context, userID, message string, link notification.Link) {
	if o.notifier == nil {
		return
	}
	if _, err := o.notifier.Add(ctx, notification.AddNotificationRequest{
		UserID:  userID,
		Message: message,
		Link:    &link,
	}); err != nil {
		slog.Error("Failed to send overtime notification", "user_id", userID, "error", err)
	}
}
