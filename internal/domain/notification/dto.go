package notification

import (
	"time"
)

// AddNotificationRequest creates a notification. ID is optional; a
// timestamp-derived id is generated when empty.
type AddNotificationRequest struct {
	ID      string
	UserID  string
	Message string
	Link    *Link
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	Link      *Link     `json:"link,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
}

type UnreadCountResponse struct {
	UnreadCount int `json:"unread_count"`
}

type SSETokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// SSEEvent is pushed to subscribed clients when a notification is added.
type SSEEvent struct {
	Event string               `json:"event"`
	Data  NotificationResponse `json:"data"`
}
