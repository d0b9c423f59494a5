package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-portal-go/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRepository_CreateAssignsNextID(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(NewSeededStore(fixtures.Default()))

	created, err := repo.Create(ctx, employee.Employee{
		NIP:    "200001012024011007",
		Name:   "Gita Permata",
		Email:  "gita.p@example.com",
		Status: employee.StatusActive,
	})
	require.NoError(t, err)
	assert.Equal(t, "7", created.ID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 7)
	assert.Equal(t, "7", all[0].ID, "new employees go to the head of the roster")
}

func TestEmployeeRepository_CreateAssignsDefaultAvatar(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(NewSeededStore(fixtures.Default()))

	created, err := repo.Create(ctx, employee.Employee{NIP: "200001012024011007", Email: "gita.p@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "https://picsum.photos/id/107/200/200", created.AvatarURL)

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.AvatarURL, stored.AvatarURL)

	custom, err := repo.Create(ctx, employee.Employee{NIP: "200001012024011008", Email: "hadi@example.com", AvatarURL: "https://example.com/a.png"})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.png", custom.AvatarURL)
}

func TestEmployeeRepository_Merge(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(NewSeededStore(fixtures.Default()))

	budi, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	budi.Position = "Tech Lead"
	budi.AvatarURL = ""

	result, err := repo.Merge(ctx, []employee.Employee{
		budi,
		{ID: "9", NIP: "200001012024011009", Name: "Intan", Email: "intan@example.com", Status: employee.StatusActive},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 1, result.Added)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 7)
	assert.Equal(t, "9", all[6].ID, "new rows are appended")
	assert.Equal(t, "https://picsum.photos/id/109/200/200", all[6].AvatarURL)

	got, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Tech Lead", got.Position)
	assert.Empty(t, got.AvatarURL, "updated rows are stored as given")
}

func TestEmployeeRepository_CreateRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(NewSeededStore(fixtures.Default()))

	_, err := repo.Create(ctx, employee.Employee{NIP: "x", Email: "BUDI.S@example.com"})
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	_, err = repo.Create(ctx, employee.Employee{NIP: "199001012020011001", Email: "new@example.com"})
	assert.ErrorIs(t, err, employee.ErrNIPExists)
}

func TestEmployeeRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(NewSeededStore(fixtures.Default()))

	e, err := repo.GetByID(ctx, "6")
	require.NoError(t, err)
	e.Status = employee.StatusActive
	require.NoError(t, repo.Update(ctx, e))

	got, err := repo.GetByID(ctx, "6")
	require.NoError(t, err)
	assert.Equal(t, employee.StatusActive, got.Status)

	require.NoError(t, repo.Delete(ctx, "6"))
	_, err = repo.GetByID(ctx, "6")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "6"), employee.ErrEmployeeNotFound)
}

func TestEmployeeRepository_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewEmployeeRepository(NewSeededStore(fixtures.Default()))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	list[0].Name = "changed"

	got, err := repo.GetByID(ctx, list[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", got.Name)
}

func TestLeaveRequestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewLeaveRequestRepository(NewSeededStore(fixtures.Default()))

	updated, err := repo.UpdateStatus(ctx, "leave2", leave.LeaveRequestStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, leave.LeaveRequestStatusApproved, updated.Status)
	assert.Equal(t, "Liburan keluarga", updated.Reason, "only the status changes")

	_, err = repo.UpdateStatus(ctx, "leave2", leave.LeaveRequestStatusRejected)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	_, err = repo.UpdateStatus(ctx, "missing", leave.LeaveRequestStatusApproved)
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestLeaveRequestRepository_PrependKeepsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewLeaveRequestRepository(NewSeededStore(fixtures.Default()))

	_, err := repo.Prepend(ctx, leave.LeaveRequest{ID: "leave5", EmployeeID: "1", Status: leave.LeaveRequestStatusPending})
	require.NoError(t, err)

	mine, err := repo.GetByEmployeeID(ctx, "1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "leave5", mine[0].ID)
	assert.Equal(t, "leave2", mine[1].ID)
}

func TestOvertimeRequestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewOvertimeRequestRepository(NewSeededStore(fixtures.Default()))

	updated, err := repo.UpdateStatus(ctx, "ovt3", overtime.OvertimeRequestStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, overtime.OvertimeRequestStatusRejected, updated.Status)

	_, err = repo.UpdateStatus(ctx, "ovt1", overtime.OvertimeRequestStatusRejected)
	assert.ErrorIs(t, err, overtime.ErrOvertimeRequestAlreadyProcessed)
}

func TestAttendanceRepository_UpsertDayInPlace(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository(NewSeededStore(fixtures.Default()))
	day := time.Date(2023, time.October, 26, 0, 0, 0, 0, time.UTC)

	saved, err := repo.UpsertDay(ctx, "3", day, func(existing *attendance.Attendance) (attendance.Attendance, error) {
		require.NotNil(t, existing)
		rec := *existing
		rec.ID = "ignored"
		rec.Status = attendance.StatusExcused
		return rec, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "att3", saved.ID, "the stored id is kept")

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 8)
	assert.Equal(t, attendance.StatusExcused, all[2].Status)

	_, err = repo.GetByEmployeeAndDate(ctx, "3", day.AddDate(0, 0, 1))
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestAttendanceRepository_UpsertDayErrorStoresNothing(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository(NewSeededStore(fixtures.Default()))
	errStop := errors.New("stop")

	_, err := repo.UpsertDay(ctx, "1", time.Date(2023, time.October, 27, 0, 0, 0, 0, time.UTC), func(existing *attendance.Attendance) (attendance.Attendance, error) {
		assert.Nil(t, existing)
		return attendance.Attendance{}, errStop
	})
	assert.ErrorIs(t, err, errStop)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 8)
}

func TestAttendanceRepository_UpsertDayConcurrentCreatesOneRecord(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository(NewSeededStore(fixtures.Default()))
	day := time.Date(2023, time.October, 27, 0, 0, 0, 0, time.UTC)

	const workers = 8
	var (
		wg      sync.WaitGroup
		start   = make(chan struct{})
		created atomic.Int32
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, err := repo.UpsertDay(ctx, "1", day, func(existing *attendance.Attendance) (attendance.Attendance, error) {
				if existing != nil {
					return *existing, nil
				}
				created.Add(1)
				return attendance.Attendance{ID: fmt.Sprintf("new-%d", i), Status: attendance.StatusPresent}, nil
			})
			assert.NoError(t, err)
		}(i)
	}
	close(start)
	wg.Wait()

	assert.EqualValues(t, 1, created.Load())

	all, err := repo.List(ctx)
	require.NoError(t, err)
	count := 0
	for _, a := range all {
		if a.EmployeeID == "1" && a.Date.Equal(day) {
			count++
		}
	}
	assert.Equal(t, 1, count)
}
