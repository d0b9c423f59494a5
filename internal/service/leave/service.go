package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/ics"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	notifier   notification.Service
	calculator *BalanceCalculator
	now        func() time.Time
}

func NewLeaveService(
	leaveRequestRepository leave.LeaveRequestRepository,
	employeeRepository employee.EmployeeRepository,
	notifier notification.Service,
	calculator *BalanceCalculator,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRequestRepository,
		EmployeeRepository:     employeeRepository,
		notifier:               notifier,
		calculator:             calculator,
		now:                    calculator.now,
	}
}

// SubmitLeaveRequest creates a pending request, or an approved one when an
// administrator enters it for an employee.
func (l *LeaveServiceImpl) SubmitLeaveRequest(ctx context.Context, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	emp, err := l.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to generate leave request ID: %w", err)
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	status := leave.LeaveRequestStatusPending
	if req.SubmittedByAdmin {
		status = leave.LeaveRequestStatusApproved
	}

	created, err := l.LeaveRequestRepository.Prepend(ctx, leave.LeaveRequest{
		ID:         id.String(),
		EmployeeID: emp.ID,
		LeaveType:  leave.LeaveType(req.LeaveType),
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     status,
		CreatedAt:  l.now(),
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	if req.SubmittedByAdmin {
		l.notify(ctx, emp.ID, fmt.Sprintf("Admin menambahkan cuti baru untuk Anda: %s.", created.LeaveType.Label()), notification.LinkEmployeeDashboard)
	} else {
		l.notify(ctx, notification.AdminUserID, fmt.Sprintf("%s mengajukan cuti baru.", emp.Name), notification.LinkLeaveManagement)
	}

	slog.Info("Leave request submitted", "id", created.ID, "employee_id", emp.ID, "status", created.Status)

	resp := created.ToResponse()
	resp.EmployeeName = emp.Name
	return resp, nil
}

// UpdateLeaveStatus approves or rejects a pending request and tells the employee.
func (l *LeaveServiceImpl) UpdateLeaveStatus(ctx context.Context, req leave.UpdateStatusRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	updated, err := l.LeaveRequestRepository.UpdateStatus(ctx, req.ID, leave.LeaveRequestStatus(req.Status))
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to update leave request status: %w", err)
	}

	l.notify(ctx, updated.EmployeeID,
		fmt.Sprintf("Pengajuan cuti Anda (%s) telah %s.", updated.LeaveType.Label(), updated.Status.Label()),
		notification.LinkEmployeeDashboard,
	)

	slog.Info("Leave request status updated", "id", updated.ID, "status", updated.Status)

	resp := updated.ToResponse()
	resp.EmployeeName = l.employeeName(ctx, updated.EmployeeID)
	return resp, nil
}

func (l *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	request, err := l.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	resp := request.ToResponse()
	resp.EmployeeName = l.employeeName(ctx, request.EmployeeID)
	return resp, nil
}

// ListLeaveRequests returns requests newest first.
func (l *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error) {
	var (
		requests []leave.LeaveRequest
		err      error
	)
	if filter.EmployeeID != "" {
		requests, err = l.LeaveRequestRepository.GetByEmployeeID(ctx, filter.EmployeeID)
	} else {
		requests, err = l.LeaveRequestRepository.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	employees, err := l.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
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

func (l *LeaveServiceImpl) GetBalance(ctx context.Context, employeeID string) (leave.BalanceResponse, error) {
	emp, err := l.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return leave.BalanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	requests, err := l.LeaveRequestRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return leave.BalanceResponse{}, fmt.Errorf("failed to get leave requests: %w", err)
	}

	balances := l.calculator.Calculate([]employee.Employee{emp}, requests)
	return leave.BalanceResponse{
		EmployeeID:    emp.ID,
		EmployeeName:  emp.Name,
		Year:          l.calculator.Year(),
		RemainingDays: balances[emp.ID],
	}, nil
}

// ListBalances returns the balance of every employee in roster order.
func (l *LeaveServiceImpl) ListBalances(ctx context.Context) ([]leave.BalanceResponse, error) {
	employees, err := l.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	requests, err := l.LeaveRequestRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	balances := l.calculator.Calculate(employees, requests)
	year := l.calculator.Year()

	responses := make([]leave.BalanceResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, leave.BalanceResponse{
			EmployeeID:    e.ID,
			EmployeeName:  e.Name,
			Year:          year,
			RemainingDays: balances[e.ID],
		})
	}
	return responses, nil
}

// ExportCalendar renders an approved request as a single-event .ics file.
func (l *LeaveServiceImpl) ExportCalendar(ctx context.Context, id string) (leave.CalendarFile, error) {
	request, event, err := l.calendarEvent(ctx, id)
	if err != nil {
		return leave.CalendarFile{}, err
	}

	return leave.CalendarFile{
		FileName: ics.FileName("Cuti", request.StartDate),
		Content:  ics.Calendar(l.now(), event),
	}, nil
}

func (l *LeaveServiceImpl) CalendarLinks(ctx context.Context, id string) (leave.CalendarLinksResponse, error) {
	_, event, err := l.calendarEvent(ctx, id)
	if err != nil {
		return leave.CalendarLinksResponse{}, err
	}

	return leave.CalendarLinksResponse{
		GoogleURL:  ics.GoogleURL(event),
		OutlookURL: ics.OutlookURL(event),
	}, nil
}

func (l *LeaveServiceImpl) calendarEvent(ctx context.Context, id string) (leave.LeaveRequest, ics.Event, error) {
	request, err := l.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequest{}, ics.Event{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	if request.Status != leave.LeaveRequestStatusApproved {
		return leave.LeaveRequest{}, ics.Event{}, leave.ErrLeaveNotApproved
	}

	name := l.employeeName(ctx, request.EmployeeID)
	label := request.LeaveType.Label()

	return request, ics.Event{
		UID:         fmt.Sprintf("%s-%s@hris.com", request.ID, ics.DateStamp(request.StartDate)),
		Start:       request.StartDate,
		End:         request.EndDate,
		Summary:     fmt.Sprintf("Cuti: %s - %s", name, label),
		Description: fmt.Sprintf("Jenis Cuti: %s\nAlasan: %s\nStatus: %s", label, request.Reason, request.Status.Label()),
	}, nil
}

func (l *LeaveServiceImpl) employeeName(ctx context.Context, employeeID string) string {
	emp, err := l.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return employee.UnknownName
	}
	return emp.Name
}

// notify delivers a side-effect notification. The request mutation already
// happened, so a failure here is logged and not returned.
func (l *LeaveServiceImpl) notify(ctx context.Context, userID, message string, link notification.Link) {
	if l.notifier == nil {
		return
	}
	if _, err := l.notifier.Add(ctx, notification.AddNotificationRequest{
		UserID:  userID,
		Message: message,
		Link:    &link,
	}); err != nil {
		slog.Error("Failed to send leave notification", "user_id", userID, "error", err)
	}
}
