package postgresql

import (
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/notification"
	"github.com/stretchr/testify/assert"
)

func TestBuildNotificationInsert(t *testing.T) {
	link := notification.LinkEmployeeDashboard
	now := time.Date(2023, 10, 26, 10, 0, 0, 0, time.UTC)
	query, args := buildNotificationInsert([]notification.Notification{
		{ID: "notif-2", UserID: "1", Message: "Admin menambahkan cuti baru untuk Anda: Cuti Tahunan.", CreatedAt: now, Link: &link},
		{ID: "notif-1", UserID: "admin", Message: "Budi Santoso mengajukan cuti baru.", CreatedAt: now},
	})

	assert.Contains(t, query, "($1, $2, $3, $4, $5, $6, $7)")
	assert.Contains(t, query, "($8, $9, $10, $11, $12, $13, $14)")
	assert.Equal(t, 1, strings.Count(query, "INSERT INTO notifications"))
	assert.Len(t, args, 14)

	assert.Equal(t, 0, args[0], "position keeps newest-first order")
	assert.Equal(t, "notif-2", args[1])
	assert.Equal(t, "employee_dashboard", *args[6].(*string))
	assert.Equal(t, 1, args[7])
	assert.Nil(t, args[13])
}
