package memory

import (
	"context"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
)

type attendanceRepository struct {
	store *Store
}

func NewAttendanceRepository(store *Store) attendance.AttendanceRepository {
	return &attendanceRepository{store: store}
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, a := range r.store.attendance {
		if a.EmployeeID == employeeID && sameDay(a.Date, date) {
			return a, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrAttendanceNotFound
}

func (r *attendanceRepository) List(ctx context.Context) ([]attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return clone(r.store.attendance), nil
}

func (r *attendanceRepository) UpsertDay(ctx context.Context, employeeID string, date time.Time, mutate attendance.MutateFunc) (attendance.Attendance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, a := range r.store.attendance {
		if a.EmployeeID != employeeID || !sameDay(a.Date, date) {
			continue
		}
		existing := a
		record, err := mutate(&existing)
		if err != nil {
			return attendance.Attendance{}, err
		}
		record.ID, record.EmployeeID, record.Date = a.ID, a.EmployeeID, a.Date
		r.store.attendance[i] = record
		return record, nil
	}

	record, err := mutate(nil)
	if err != nil {
		return attendance.Attendance{}, err
	}
	record.EmployeeID, record.Date = employeeID, date
	r.store.attendance = prepend(r.store.attendance, record)
	return record, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
