package memory

import (
	"sync"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/performance"
	"github.com/cmlabs-hris/hris-portal-go/internal/fixtures"
)

// Store holds every entity collection behind one lock, so mutations across
// collections never interleave. Collections are kept most-recent-first.
type Store struct {
	mu               sync.RWMutex
	employees        []employee.Employee
	attendance       []attendance.Attendance
	leaveRequests    []leave.LeaveRequest
	overtimeRequests []overtime.OvertimeRequest
	reviews          []performance.Review
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// NewSeededStore returns a store populated with seed.
func NewSeededStore(seed fixtures.Seed) *Store {
	return &Store{
		employees:        append([]employee.Employee(nil), seed.Employees...),
		attendance:       append([]attendance.Attendance(nil), seed.Attendance...),
		leaveRequests:    append([]leave.LeaveRequest(nil), seed.LeaveRequests...),
		overtimeRequests: append([]overtime.OvertimeRequest(nil), seed.OvertimeRequests...),
		reviews:          append([]performance.Review(nil), seed.Reviews...),
	}
}

// prepend returns a new slice with item at index 0.
func prepend[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
