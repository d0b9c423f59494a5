package file

import (
	"context"
	"os"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository_LoadMissingFile(t *testing.T) {
	repo := NewNotificationRepository(filepath.Join(t.TempDir(), "none.json"))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNotificationRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "notifications.json")
	repo := NewNotificationRepository(path)

	link := notification.LinkLeaveManagement
	created := time.Date(2023, time.November, 1, 9, 30, 0, 0, time.UTC)
	want := []notification.Notification{
		{ID: "notif-2", UserID: notification.AdminUserID, Message: "Budi Santoso mengajukan cuti baru.", CreatedAt: created, Link: &link},
		{ID: "notif-1", UserID: "1", Message: "Pengajuan cuti Anda (Cuti Tahunan) telah Disetujui.", Read: true, CreatedAt: created},
	}

	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, want[0].ID, got[0].ID)
	assert.Equal(t, notification.LinkLeaveManagement, *got[0].Link)
	assert.Nil(t, got[1].Link)
	assert.True(t, got[1].Read)
	assert.True(t, want[0].CreatedAt.Equal(got[0].CreatedAt))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are cleaned up")
}

func TestNotificationRepository_LoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notifications.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewNotificationRepository(path).Load(context.Background())
	assert.Error(t, err)
}

func TestNotificationRepository_ReadersNeverSeePartialFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "notifications.json")
	repo := NewNotificationRepository(path)
	require.NoError(t, repo.Save(ctx, nil))

	var (
		wg   sync.WaitGroup
		done = make(chan struct{})
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			_, err := repo.Load(ctx)
			assert.NoError(t, err)
		}
	}()

	batch := make([]notification.Notification, 0, 50)
	for i := 0; i < 50; i++ {
		batch = append(batch, notification.Notification{ID: fmt.Sprintf("notif-%d", i), UserID: "1", Message: "Pengajuan lembur Anda telah Disetujui."})
		require.NoError(t, repo.Save(ctx, batch))
	}
	close(done)
	wg.Wait()

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 50)
}
