package leave

import (
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
)

// AnnualEntitlement is the number of annual leave days per calendar year.
const AnnualEntitlement = 12

// BalanceCalculator derives remaining annual leave from the full request
// history. Nothing is cached; every call recomputes.
type BalanceCalculator struct {
	now func() time.Time
}

func NewBalanceCalculator(now func() time.Time) *BalanceCalculator {
	if now == nil {
		now = time.Now
	}
	return &BalanceCalculator{now: now}
}

// Year is the calendar year balances are computed for.
func (c *BalanceCalculator) Year() int {
	return c.now().Year()
}

// Calculate returns the remaining annual leave of every employee in employees.
// Requests of unknown employees are ignored.
func (c *BalanceCalculator) Calculate(employees []employee.Employee, requests []leave.LeaveRequest) leave.Balances {
	year := c.Year()

	used := make(map[string]int, len(employees))
	for _, r := range requests {
		if r.Status == leave.LeaveRequestStatusRejected || r.LeaveType != leave.LeaveTypeAnnual {
			continue
		}
		if r.StartDate.Year() != year {
			continue
		}
		used[r.EmployeeID] += r.Days()
	}

	balances := make(leave.Balances, len(employees))
	for _, e := range employees {
		balances[e.ID] = max(0, Entitlement(e, year)-used[e.ID])
	}
	return balances
}

// Entitlement is the annual allowance for year. Employees who joined during
// year lose one day per month already passed before their join month.
func Entitlement(e employee.Employee, year int) int {
	if e.JoinDate.Year() != year {
		return AnnualEntitlement
	}
	monthIndex := int(e.JoinDate.Month()) - 1
	return max(0, AnnualEntitlement-monthIndex)
}
