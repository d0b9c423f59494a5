package attendance

import (
	"context"
	"time"
)

// MutateFunc receives the stored record for the day, or nil when there is
// none, and returns the record to store. Returning an error stores nothing.
type MutateFunc func(existing *Attendance) (Attendance, error)

type AttendanceRepository interface {
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)
	List(ctx context.Context) ([]Attendance, error)
	// UpsertDay looks up the employee's record for date and writes the result
	// of mutate in one step, keeping one record per employee per date.
	UpsertDay(ctx context.Context, employeeID string, date time.Time, mutate MutateFunc) (Attendance, error)
}
