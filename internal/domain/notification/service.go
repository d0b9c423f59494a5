package notification

import (
	"context"
)

// Service defines the notification dispatcher
type Service interface {
	Add(ctx context.Context, req AddNotificationRequest) (NotificationResponse, error)
	MarkAllAsRead(ctx context.Context, userID string) error
	ListFor(ctx context.Context, userID string) (NotificationListResponse, error)
	UnreadCountFor(ctx context.Context, userID string) (int, error)

	// SSE subscription
	Subscribe(ctx context.Context, userID string) (<-chan SSEEvent, func())
}
