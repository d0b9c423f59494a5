package overtime

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-portal-go/internal/fixtures"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-portal-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	notification.Service
	added []notification.AddNotificationRequest
}

func (r *recordingNotifier) Add(ctx context.Context, req notification.AddNotificationRequest) (notification.NotificationResponse, error) {
	r.added = append(r.added, req)
	return notification.NotificationResponse{}, nil
}

func newTestService() (overtime.OvertimeService, *recordingNotifier, *memory.Store) {
	store := memory.NewSeededStore(fixtures.Default())
	notifier := &recordingNotifier{}
	svc := NewOvertimeService(
		memory.NewOvertimeRequestRepository(store),
		memory.NewEmployeeRepository(store),
		notifier,
	)
	return svc, notifier, store
}

func TestSubmitOvertimeRequest(t *testing.T) {
	ctx := context.Background()
	svc, notifier, _ := newTestService()

	resp, err := svc.SubmitOvertimeRequest(ctx, overtime.SubmitOvertimeRequest{
		EmployeeID: "5",
		Date:       "2023-11-02",
		StartTime:  "17:00",
		EndTime:    "19:00",
		Reason:     "Regression test",
	})
	require.NoError(t, err)
	assert.Equal(t, 2.0, resp.DurationHours)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "Eko Prasetyo", resp.EmployeeName)

	require.Len(t, notifier.added, 1)
	assert.Equal(t, notification.AdminUserID, notifier.added[0].UserID)
	assert.Equal(t, "Eko Prasetyo mengajukan lembur baru.", notifier.added[0].Message)
	assert.Equal(t, notification.LinkOvertimeData, *notifier.added[0].Link)
}

func TestSubmitOvertimeRequest_ByAdmin(t *testing.T) {
	svc, notifier, _ := newTestService()

	resp, err := svc.SubmitOvertimeRequest(context.Background(), overtime.SubmitOvertimeRequest{
		EmployeeID:       "3",
		Date:             "2023-11-02",
		StartTime:        "17:30",
		EndTime:          "18:30",
		Reason:           "Deployment",
		SubmittedByAdmin: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, 1.0, resp.DurationHours)

	require.Len(t, notifier.added, 1)
	assert.Equal(t, "3", notifier.added[0].UserID)
}

func TestSubmitOvertimeRequest_RejectsInvertedWindow(t *testing.T) {
	ctx := context.Background()
	svc, notifier, _ := newTestService()

	before, err := svc.ListOvertimeRequests(ctx, overtime.OvertimeRequestFilter{})
	require.NoError(t, err)

	for _, window := range [][2]string{{"19:00", "17:00"}, {"18:00", "18:00"}} {
		_, err := svc.SubmitOvertimeRequest(ctx, overtime.SubmitOvertimeRequest{
			EmployeeID: "1",
			Date:       "2023-11-02",
			StartTime:  window[0],
			EndTime:    window[1],
			Reason:     "x",
		})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Contains(t, verrs.ToMap(), "end_time")
	}

	after, err := svc.ListOvertimeRequests(ctx, overtime.OvertimeRequestFilter{})
	require.NoError(t, err)
	assert.Len(t, after, len(before), "no request is created")
	assert.Empty(t, notifier.added)
}

func TestUpdateOvertimeStatus(t *testing.T) {
	ctx := context.Background()
	svc, notifier, _ := newTestService()

	resp, err := svc.UpdateOvertimeStatus(ctx, overtime.UpdateStatusRequest{ID: "ovt3", Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)

	require.Len(t, notifier.added, 1)
	assert.Equal(t, "5", notifier.added[0].UserID)
	assert.Equal(t, "Pengajuan lembur Anda pada tanggal 2023-10-25 telah Disetujui.", notifier.added[0].Message)

	_, err = svc.UpdateOvertimeStatus(ctx, overtime.UpdateStatusRequest{ID: "ovt3", Status: "rejected"})
	assert.ErrorIs(t, err, overtime.ErrOvertimeRequestAlreadyProcessed)

	_, err = svc.UpdateOvertimeStatus(ctx, overtime.UpdateStatusRequest{ID: "ovt99", Status: "rejected"})
	assert.ErrorIs(t, err, overtime.ErrOvertimeRequestNotFound)
}

func TestListOvertimeRequests(t *testing.T) {
	svc, _, _ := newTestService()

	mine, err := svc.ListOvertimeRequests(context.Background(), overtime.OvertimeRequestFilter{EmployeeID: "1"})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "ovt1", mine[0].ID)

	pending, err := svc.ListOvertimeRequests(context.Background(), overtime.OvertimeRequestFilter{Status: "pending"})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "ovt3", pending[0].ID)
}
