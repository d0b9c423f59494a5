package attendance

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-portal-go/internal/fixtures"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-portal-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(now time.Time) *AttendanceServiceImpl {
	store := memory.NewSeededStore(fixtures.Default())
	svc := NewAttendanceService(memory.NewAttendanceRepository(store), memory.NewEmployeeRepository(store)).(*AttendanceServiceImpl)
	svc.now = func() time.Time { return now }
	return svc
}

func TestClockInClockOut(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(time.Date(2023, time.October, 27, 8, 57, 0, 0, time.UTC))

	today, err := svc.GetToday(ctx, "1")
	require.NoError(t, err)
	assert.Nil(t, today)

	in, err := svc.ClockIn(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "2023-10-27", in.Date)
	assert.Equal(t, "08:57", *in.CheckIn)
	assert.Nil(t, in.CheckOut)
	assert.Equal(t, "present", in.Status)

	_, err = svc.ClockIn(ctx, "1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)

	svc.now = func() time.Time { return time.Date(2023, time.October, 27, 17, 3, 0, 0, time.UTC) }
	out, err := svc.ClockOut(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, in.ID, out.ID, "clock out mutates the same record")
	assert.Equal(t, "17:03", *out.CheckOut)

	_, err = svc.ClockOut(ctx, "1")
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)

	today, err = svc.GetToday(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, today)
	assert.Equal(t, "17:03", *today.CheckOut)
}

// gatedRepository holds every UpsertDay call until all callers have arrived,
// so the writes contend instead of running one after another.
type gatedRepository struct {
	attendance.AttendanceRepository
	arrived sync.WaitGroup
}

func (g *gatedRepository) UpsertDay(ctx context.Context, employeeID string, date time.Time, mutate attendance.MutateFunc) (attendance.Attendance, error) {
	g.arrived.Done()
	g.arrived.Wait()
	return g.AttendanceRepository.UpsertDay(ctx, employeeID, date, mutate)
}

func TestClockIn_ConcurrentKeepsOneRecordPerDay(t *testing.T) {
	ctx := context.Background()
	store := memory.NewSeededStore(fixtures.Default())
	attendanceRepo := memory.NewAttendanceRepository(store)

	const callers = 4
	gated := &gatedRepository{AttendanceRepository: attendanceRepo}
	gated.arrived.Add(callers)

	svc := NewAttendanceService(gated, memory.NewEmployeeRepository(store)).(*AttendanceServiceImpl)
	svc.now = func() time.Time { return time.Date(2023, time.October, 27, 8, 57, 0, 0, time.UTC) }

	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.ClockIn(ctx, "1")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
	}
	assert.Equal(t, 1, succeeded)

	records, err := attendanceRepo.List(ctx)
	require.NoError(t, err)
	day := time.Date(2023, time.October, 27, 0, 0, 0, 0, time.UTC)
	count := 0
	for _, r := range records {
		if r.EmployeeID == "1" && r.Date.Equal(day) {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestClockOut_WithoutClockIn(t *testing.T) {
	svc := newTestService(time.Date(2023, time.October, 27, 17, 0, 0, 0, time.UTC))

	_, err := svc.ClockOut(context.Background(), "2")
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestClockIn_UnknownEmployee(t *testing.T) {
	svc := newTestService(time.Date(2023, time.October, 27, 8, 0, 0, 0, time.UTC))

	_, err := svc.ClockIn(context.Background(), "99")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestRecord_ReplacesDay(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(time.Date(2023, time.October, 27, 8, 0, 0, 0, time.UTC))

	resp, err := svc.Record(ctx, attendance.RecordAttendanceRequest{EmployeeID: "6", Date: "2023-10-26", Status: "excused"})
	require.NoError(t, err)
	assert.Equal(t, "att8", resp.ID)
	assert.Equal(t, "excused", resp.Status)

	list, err := svc.List(ctx, attendance.AttendanceFilter{EmployeeID: "6"})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.Record(ctx, attendance.RecordAttendanceRequest{EmployeeID: "6", Date: "2023-10-26", Status: "holiday"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestList_DateRangeAndNames(t *testing.T) {
	svc := newTestService(time.Date(2023, time.October, 27, 8, 0, 0, 0, time.UTC))

	list, err := svc.List(context.Background(), attendance.AttendanceFilter{StartDate: "2023-10-25", EndDate: "2023-10-25"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Budi Santoso", list[0].EmployeeName)
	assert.Equal(t, "Citra Lestari", list[1].EmployeeName)

	all, err := svc.List(context.Background(), attendance.AttendanceFilter{})
	require.NoError(t, err)
	require.Len(t, all, 8)
	assert.Equal(t, "2023-10-26", all[0].Date)
	assert.Equal(t, "2023-10-25", all[7].Date)
}
