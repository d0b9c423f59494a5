package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
		now:                  time.Now,
	}
}

// today returns the current calendar date at midnight UTC, the form dates are stored in.
func (a *AttendanceServiceImpl) today() (time.Time, string) {
	now := a.now()
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), now.Format("15:04")
}

// ClockIn opens today's record with the current time. A record an
// administrator created earlier for today (e.g. sick) is turned into presence.
func (a *AttendanceServiceImpl) ClockIn(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	date, clock := a.today()

	saved, err := a.AttendanceRepository.UpsertDay(ctx, emp.ID, date, func(existing *attendance.Attendance) (attendance.Attendance, error) {
		var record attendance.Attendance
		if existing == nil {
			id, err := newAttendanceID()
			if err != nil {
				return attendance.Attendance{}, err
			}
			record.ID = id
		} else {
			if existing.CheckIn != nil {
				return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
			}
			record = *existing
		}

		record.CheckIn = &clock
		record.CheckOut = nil
		record.Status = attendance.StatusPresent
		return record, nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to clock in: %w", err)
	}

	slog.Info("Clock in", "employee_id", emp.ID, "time", clock)

	resp := saved.ToResponse()
	resp.EmployeeName = emp.Name
	return resp, nil
}

// ClockOut fills the check-out time of today's record.
func (a *AttendanceServiceImpl) ClockOut(ctx context.Context, employeeID string) (attendance.AttendanceResponse, error) {
	emp, err := a.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	date, clock := a.today()

	saved, err := a.AttendanceRepository.UpsertDay(ctx, emp.ID, date, func(existing *attendance.Attendance) (attendance.Attendance, error) {
		if existing == nil || existing.CheckIn == nil {
			return attendance.Attendance{}, attendance.ErrNotClockedIn
		}
		if existing.CheckOut != nil {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedOut
		}

		record := *existing
		record.CheckOut = &clock
		return record, nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to clock out: %w", err)
	}

	slog.Info("Clock out", "employee_id", emp.ID, "time", clock)

	resp := saved.ToResponse()
	resp.EmployeeName = emp.Name
	return resp, nil
}

// GetToday returns nil when the employee has no record for today.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context, employeeID string) (*attendance.AttendanceResponse, error) {
	date, _ := a.today()

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if errors.Is(err, attendance.ErrAttendanceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	resp := record.ToResponse()
	return &resp, nil
}

// Record sets the attendance of an employee for a date, replacing any
// existing record for that date.
func (a *AttendanceServiceImpl) Record(ctx context.Context, req attendance.RecordAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	saved, err := a.AttendanceRepository.UpsertDay(ctx, emp.ID, date, func(existing *attendance.Attendance) (attendance.Attendance, error) {
		var record attendance.Attendance
		if existing == nil {
			id, err := newAttendanceID()
			if err != nil {
				return attendance.Attendance{}, err
			}
			record.ID = id
		} else {
			record = *existing
		}

		record.Status = attendance.Status(req.Status)
		record.CheckIn = req.CheckIn
		record.CheckOut = req.CheckOut
		return record, nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to save attendance: %w", err)
	}

	resp := saved.ToResponse()
	resp.EmployeeName = emp.Name
	return resp, nil
}

// List returns records newest date first, optionally limited to one employee
// and an inclusive date range.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := a.AttendanceRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	employees, err := a.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	var from, to time.Time
	if filter.StartDate != "" {
		from, _ = time.Parse("2006-01-02", filter.StartDate)
	}
	if filter.EndDate != "" {
		to, _ = time.Parse("2006-01-02", filter.EndDate)
	}

	filtered := make([]attendance.Attendance, 0, len(records))
	for _, r := range records {
		if filter.EmployeeID != "" && r.EmployeeID != filter.EmployeeID {
			continue
		}
		if !from.IsZero() && r.Date.Before(from) {
			continue
		}
		if !to.IsZero() && r.Date.After(to) {
			continue
		}
		filtered = append(filtered, r)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.After(filtered[j].Date)
	})

	responses := make([]attendance.AttendanceResponse, 0, len(filtered))
	for _, r := range filtered {
		resp := r.ToResponse()
		resp.EmployeeName = employee.NameByID(employees, r.EmployeeID)
		responses = append(responses, resp)
	}
	return responses, nil
}

func newAttendanceID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate attendance ID: %w", err)
	}
	return id.String(), nil
}
