package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/database"
)

const notificationSchema = `
	CREATE TABLE IF NOT EXISTS notifications (
		position   INTEGER PRIMARY KEY,
		id         TEXT NOT NULL,
		user_id    TEXT NOT NULL,
		message    TEXT NOT NULL,
		read       BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL,
		link       TEXT
	)
`

type notificationRepository struct {
	db *database.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepository{db: db}
}

// EnsureNotificationSchema creates the notifications table when missing.
func EnsureNotificationSchema(ctx context.Context, db *database.DB) error {
	if _, err := db.Exec(ctx, notificationSchema); err != nil {
		return fmt.Errorf("failed to create notifications table: %w", err)
	}
	return nil
}

// Load returns the collection in stored order (newest first).
func (r *notificationRepository) Load(ctx context.Context) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, message, read, created_at, link
		FROM notifications
		ORDER BY position ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load notifications: %w", err)
	}
	defer rows.Close()

	notifications := []notification.Notification{}
	for rows.Next() {
		var n notification.Notification
		var link *string
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.Read, &n.CreatedAt, &link); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		if link != nil {
			l := notification.Link(*link)
			n.Link = &l
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}

	return notifications, nil
}

// Save replaces the stored collection in one transaction.
func (r *notificationRepository) Save(ctx context.Context, notifications []notification.Notification) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)
		if _, err := q.Exec(ctx, `DELETE FROM notifications`); err != nil {
			return fmt.Errorf("failed to clear notifications: %w", err)
		}
		if len(notifications) == 0 {
			return nil
		}

		query, args := buildNotificationInsert(notifications)
		if _, err := q.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to batch insert notifications: %w", err)
		}
		return nil
	})
}

func buildNotificationInsert(notifications []notification.Notification) (string, []interface{}) {
	const cols = 7
	valueStrings := make([]string, 0, len(notifications))
	valueArgs := make([]interface{}, 0, len(notifications)*cols)

	for i, n := range notifications {
		base := i * cols
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7,
		))

		var link *string
		if n.Link != nil {
			s := string(*n.Link)
			link = &s
		}
		valueArgs = append(valueArgs, i, n.ID, n.UserID, n.Message, n.Read, n.CreatedAt, link)
	}

	query := fmt.Sprintf(`
		INSERT INTO notifications (position, id, user_id, message, read, created_at, link)
		VALUES %s
	`, strings.Join(valueStrings, ", "))

	return query, valueArgs
}
