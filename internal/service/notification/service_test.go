package notification

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/sse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	stored  []notification.Notification
	saves   int
	failErr error
}

func (r *memoryRepo) Load(ctx context.Context) ([]notification.Notification, error) {
	out := make([]notification.Notification, len(r.stored))
	copy(out, r.stored)
	return out, nil
}

func (r *memoryRepo) Save(ctx context.Context, notifications []notification.Notification) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.saves++
	r.stored = make([]notification.Notification, len(notifications))
	copy(r.stored, notifications)
	return nil
}

func newTestService(t *testing.T, repo *memoryRepo) *service {
	t.Helper()
	svc, err := NewNotificationService(context.Background(), repo, sse.NewHub())
	require.NoError(t, err)
	s := svc.(*service)
	clock := time.Date(2023, time.November, 1, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return s
}

func TestAdd_PrependsAndPersists(t *testing.T) {
	ctx := context.Background()
	repo := &memoryRepo{}
	s := newTestService(t, repo)

	link := notification.LinkLeaveManagement
	first, err := s.Add(ctx, notification.AddNotificationRequest{UserID: notification.AdminUserID, Message: "Budi Santoso mengajukan cuti baru.", Link: &link})
	require.NoError(t, err)
	second, err := s.Add(ctx, notification.AddNotificationRequest{ID: "custom-id", UserID: notification.AdminUserID, Message: "Eko Prasetyo mengajukan lembur baru."})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first.ID, "notif-"))
	assert.Equal(t, "custom-id", second.ID)
	assert.False(t, first.Read)

	require.Len(t, repo.stored, 2)
	assert.Equal(t, "custom-id", repo.stored[0].ID, "newest first")
	assert.Equal(t, 2, repo.saves)

	list, err := s.ListFor(ctx, notification.AdminUserID)
	require.NoError(t, err)
	require.Len(t, list.Notifications, 2)
	assert.Equal(t, "custom-id", list.Notifications[0].ID)
	assert.Equal(t, 2, list.UnreadCount)
}

func TestAdd_RejectsEmptyFields(t *testing.T) {
	s := newTestService(t, &memoryRepo{})

	_, err := s.Add(context.Background(), notification.AddNotificationRequest{Message: "x"})
	assert.ErrorIs(t, err, notification.ErrEmptyRecipient)

	_, err = s.Add(context.Background(), notification.AddNotificationRequest{UserID: "1", Message: "  "})
	assert.ErrorIs(t, err, notification.ErrEmptyMessage)
}

func TestMarkAllAsRead_OnlyAffectsUser(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t, &memoryRepo{})

	for _, user := range []string{"1", "1", "2", notification.AdminUserID} {
		_, err := s.Add(ctx, notification.AddNotificationRequest{UserID: user, Message: "pesan"})
		require.NoError(t, err)
	}

	require.NoError(t, s.MarkAllAsRead(ctx, "1"))

	count, err := s.UnreadCountFor(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	count, err = s.UnreadCountFor(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = s.UnreadCountFor(ctx, notification.AdminUserID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMarkAllAsRead_NothingToDoSkipsSave(t *testing.T) {
	repo := &memoryRepo{}
	s := newTestService(t, repo)

	require.NoError(t, s.MarkAllAsRead(context.Background(), "1"))
	assert.Equal(t, 0, repo.saves)
}

func TestLoadsPersistedCollection(t *testing.T) {
	ctx := context.Background()
	repo := &memoryRepo{}
	s := newTestService(t, repo)
	_, err := s.Add(ctx, notification.AddNotificationRequest{UserID: "3", Message: "Pengajuan lembur Anda pada tanggal 2023-10-21 telah Disetujui."})
	require.NoError(t, err)

	reloaded := newTestService(t, repo)
	list, err := reloaded.ListFor(ctx, "3")
	require.NoError(t, err)
	require.Len(t, list.Notifications, 1)
	assert.Equal(t, 1, list.UnreadCount)
}

func TestAdd_SaveFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	repo := &memoryRepo{}
	s := newTestService(t, repo)

	repo.failErr = errors.New("disk full")
	_, err := s.Add(ctx, notification.AddNotificationRequest{UserID: "1", Message: "pesan"})
	require.Error(t, err)

	list, err := s.ListFor(ctx, "1")
	require.NoError(t, err)
	assert.Empty(t, list.Notifications)
}

func TestSubscribe_ReceivesAddedNotification(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s := newTestService(t, &memoryRepo{})

	events, cleanup := s.Subscribe(ctx, "1")
	defer cleanup()

	added, err := s.Add(ctx, notification.AddNotificationRequest{UserID: "1", Message: "Pengajuan cuti Anda (Cuti Tahunan) telah Disetujui."})
	require.NoError(t, err)

	select {
	case ev := <-events:
		assert.Equal(t, "notification", ev.Event)
		assert.Equal(t, added.ID, ev.Data.ID)
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}
