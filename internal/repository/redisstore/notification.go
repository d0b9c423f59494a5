package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/notification"
	"github.com/go-redis/redis/v8"
)

type notificationRepository struct {
	rdb *redis.Client
	key string
}

// NewNotificationRepository keeps the whole notification collection as one
// JSON value under key.
func NewNotificationRepository(rdb *redis.Client, key string) notification.Repository {
	return &notificationRepository{rdb: rdb, key: key}
}

func (r *notificationRepository) Load(ctx context.Context) ([]notification.Notification, error) {
	raw, err := r.rdb.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []notification.Notification{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	return decode(raw)
}

func (r *notificationRepository) Save(ctx context.Context, notifications []notification.Notification) error {
	raw, err := encode(notifications)
	if err != nil {
		return err
	}
	if err := r.rdb.Set(ctx, r.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to set notifications: %w", err)
	}
	return nil
}

func encode(notifications []notification.Notification) ([]byte, error) {
	if notifications == nil {
		notifications = []notification.Notification{}
	}
	raw, err := json.Marshal(notifications)
	if err != nil {
		return nil, fmt.Errorf("failed to encode notifications: %w", err)
	}
	return raw, nil
}

func decode(raw []byte) ([]notification.Notification, error) {
	if len(raw) == 0 {
		return []notification.Notification{}, nil
	}
	var notifications []notification.Notification
	if err := json.Unmarshal(raw, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode notifications: %w", err)
	}
	return notifications, nil
}
