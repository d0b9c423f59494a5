package leave

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

func fixedNow(year int) func() time.Time {
	return func() time.Time { return time.Date(year, time.November, 1, 10, 0, 0, 0, time.UTC) }
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func emp(id, joined string) employee.Employee {
	return employee.Employee{ID: id, Name: "Pegawai " + id, JoinDate: day(joined), Status: employee.StatusActive}
}

func annual(employeeID, start, end string, status leave.LeaveRequestStatus) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:         employeeID + "-" + start,
		EmployeeID: employeeID,
		LeaveType:  leave.LeaveTypeAnnual,
		StartDate:  day(start),
		EndDate:    day(end),
		Status:     status,
	}
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		employee employee.Employee
		requests []leave.LeaveRequest
		want     int
	}{
		{
			name:     "joined in a past year, no requests",
			employee: emp("1", "2020-01-15"),
			want:     12,
		},
		{
			name:     "approved six day leave",
			employee: emp("1", "2020-01-15"),
			requests: []leave.LeaveRequest{annual("1", "2023-11-10", "2023-11-15", leave.LeaveRequestStatusApproved)},
			want:     6,
		},
		{
			name:     "pending reserves days",
			employee: emp("1", "2020-01-15"),
			requests: []leave.LeaveRequest{annual("1", "2023-11-10", "2023-11-15", leave.LeaveRequestStatusPending)},
			want:     6,
		},
		{
			name:     "rejected releases days",
			employee: emp("1", "2020-01-15"),
			requests: []leave.LeaveRequest{annual("1", "2023-11-10", "2023-11-15", leave.LeaveRequestStatusRejected)},
			want:     12,
		},
		{
			name:     "single day counts as one",
			employee: emp("5", "2021-07-15"),
			requests: []leave.LeaveRequest{annual("5", "2023-10-30", "2023-10-30", leave.LeaveRequestStatusApproved)},
			want:     11,
		},
		{
			name:     "joined in March of the current year",
			employee: emp("7", "2023-03-10"),
			want:     10,
		},
		{
			name:     "joined in January of the current year",
			employee: emp("7", "2023-01-02"),
			want:     12,
		},
		{
			name:     "joined in December of the current year",
			employee: emp("7", "2023-12-01"),
			want:     1,
		},
		{
			name:     "clamped at zero",
			employee: emp("7", "2023-10-01"),
			requests: []leave.LeaveRequest{annual("7", "2023-10-02", "2023-10-09", leave.LeaveRequestStatusApproved)},
			want:     0,
		},
		{
			name:     "requests starting in another year are ignored",
			employee: emp("1", "2020-01-15"),
			requests: []leave.LeaveRequest{
				annual("1", "2022-12-20", "2022-12-30", leave.LeaveRequestStatusApproved),
				annual("1", "2024-01-02", "2024-01-05", leave.LeaveRequestStatusPending),
			},
			want: 12,
		},
		{
			name:     "other leave types do not consume annual leave",
			employee: emp("3", "2019-03-10"),
			requests: []leave.LeaveRequest{{
				ID: "leave1", EmployeeID: "3", LeaveType: leave.LeaveTypeSick,
				StartDate: day("2023-10-26"), EndDate: day("2023-10-27"), Status: leave.LeaveRequestStatusApproved,
			}},
			want: 12,
		},
		{
			name:     "multiple requests add up",
			employee: emp("1", "2020-01-15"),
			requests: []leave.LeaveRequest{
				annual("1", "2023-02-01", "2023-02-03", leave.LeaveRequestStatusApproved),
				annual("1", "2023-05-10", "2023-05-11", leave.LeaveRequestStatusPending),
			},
			want: 7,
		},
	}

	calc := NewBalanceCalculator(fixedNow(2023))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Calculate([]employee.Employee{tt.employee}, tt.requests)
			assert.Equal(t, tt.want, got[tt.employee.ID])
		})
	}
}

func TestCalculate_OnlyListedEmployees(t *testing.T) {
	calc := NewBalanceCalculator(fixedNow(2023))

	got := calc.Calculate(
		[]employee.Employee{emp("1", "2020-01-15")},
		[]leave.LeaveRequest{annual("99", "2023-02-01", "2023-02-03", leave.LeaveRequestStatusApproved)},
	)

	assert.Len(t, got, 1)
	_, ok := got["99"]
	assert.False(t, ok)
}

func TestCalculate_RecomputesFromHistory(t *testing.T) {
	calc := NewBalanceCalculator(fixedNow(2023))
	employees := []employee.Employee{emp("1", "2020-01-15")}

	pending := annual("1", "2023-11-10", "2023-11-15", leave.LeaveRequestStatusPending)
	before := calc.Calculate(employees, []leave.LeaveRequest{pending})

	pending.Status = leave.LeaveRequestStatusRejected
	after := calc.Calculate(employees, []leave.LeaveRequest{pending})

	assert.Equal(t, 6, before["1"])
	assert.Equal(t, 12, after["1"])
}

func TestEntitlement(t *testing.T) {
	assert.Equal(t, 12, Entitlement(emp("1", "2020-06-01"), 2023))
	assert.Equal(t, 7, Entitlement(emp("1", "2023-06-01"), 2023))
}
