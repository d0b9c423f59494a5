package performance

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/performance"
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
	return notification.NotificationResponse{ID: "n", Message: req.Message}, nil
}

func newTestService() (performance.PerformanceService, *recordingNotifier) {
	store := memory.NewSeededStore(fixtures.Default())
	notifier := &recordingNotifier{}
	return NewPerformanceService(memory.NewReviewRepository(store), memory.NewEmployeeRepository(store), notifier), notifier
}

func TestCreateReview(t *testing.T) {
	ctx := context.Background()
	svc, notifier := newTestService()

	resp, err := svc.CreateReview(ctx, performance.CreateReviewRequest{
		EmployeeID: "1",
		ReviewDate: "2023-12-31",
		Score:      4.7,
		Comments:   "Memimpin migrasi frontend dengan baik.",
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultReviewerID, resp.ReviewerID)
	assert.Equal(t, "Budi Santoso", resp.EmployeeName)
	assert.NotEmpty(t, resp.ID)

	require.Len(t, notifier.added, 1)
	assert.Equal(t, "1", notifier.added[0].UserID)
	assert.Equal(t, notification.LinkEmployeeDashboard, *notifier.added[0].Link)

	all, err := svc.ListReviews(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, resp.ID, all[0].ID, "new reviews are prepended")

	latest, err := svc.LatestReview(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, resp.ID, latest.ID)
}

func TestCreateReview_Invalid(t *testing.T) {
	svc, notifier := newTestService()

	_, err := svc.CreateReview(context.Background(), performance.CreateReviewRequest{
		EmployeeID: "1",
		ReviewDate: "2023-12-31",
		Score:      5.5,
	})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "score")
	assert.Contains(t, verrs.ToMap(), "comments")

	_, err = svc.CreateReview(context.Background(), performance.CreateReviewRequest{
		EmployeeID: "99",
		ReviewDate: "2023-12-31",
		Score:      3,
		Comments:   "x",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Empty(t, notifier.added)
}

func TestLatestReview_None(t *testing.T) {
	svc, _ := newTestService()

	latest, err := svc.LatestReview(context.Background(), "6")
	require.NoError(t, err)
	assert.Nil(t, latest)

	list, err := svc.ListReviews(context.Background(), "6")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestLatest_TieKeepsFirst(t *testing.T) {
	date := time.Date(2023, time.June, 30, 0, 0, 0, 0, time.UTC)
	reviews := []performance.Review{
		{ID: "b", ReviewDate: date},
		{ID: "a", ReviewDate: date},
		{ID: "old", ReviewDate: date.AddDate(0, -6, 0)},
	}

	latest, ok := Latest(reviews)
	require.True(t, ok)
	assert.Equal(t, "b", latest.ID)

	_, ok = Latest(nil)
	assert.False(t, ok)
}
