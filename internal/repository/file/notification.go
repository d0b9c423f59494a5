package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/notification"
	"github.com/google/renameio/v2"
)

type notificationRepository struct {
	path string
}

// NewNotificationRepository stores the notification collection as one JSON
// array at path.
func NewNotificationRepository(path string) notification.Repository {
	return &notificationRepository{path: path}
}

// Load returns an empty collection when the file does not exist yet.
func (r *notificationRepository) Load(ctx context.Context) ([]notification.Notification, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []notification.Notification{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read notifications file: %w", err)
	}
	if len(data) == 0 {
		return []notification.Notification{}, nil
	}

	var notifications []notification.Notification
	if err := json.Unmarshal(data, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications file: %w", err)
	}
	return notifications, nil
}

// Save replaces the file atomically, so readers never observe a partial file.
func (r *notificationRepository) Save(ctx context.Context, notifications []notification.Notification) error {
	if notifications == nil {
		notifications = []notification.Notification{}
	}

	data, err := json.MarshalIndent(notifications, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode notifications: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create notifications directory: %w", err)
	}
	if err := renameio.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write notifications file: %w", err)
	}
	return nil
}
