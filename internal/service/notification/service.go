package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/sse"
	"github.com/google/uuid"
)

const eventNotification = "notification"

// service keeps the whole collection in memory, newest first. The repository
// is read once at construction and rewritten after every mutation.
type service struct {
	mu            sync.Mutex
	repo          notification.Repository
	hub           *sse.Hub
	notifications []notification.Notification
	now           func() time.Time
}

// NewNotificationService loads the persisted collection and returns the dispatcher.
func NewNotificationService(ctx context.Context, repo notification.Repository, hub *sse.Hub) (notification.Service, error) {
	loaded, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load notifications: %w", err)
	}

	slog.Info("Notifications loaded", "count", len(loaded))

	return &service{
		repo:          repo,
		hub:           hub,
		notifications: loaded,
		now:           time.Now,
	}, nil
}

// Add prepends a notification for req.UserID and pushes it to open streams.
func (s *service) Add(ctx context.Context, req notification.AddNotificationRequest) (notification.NotificationResponse, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return notification.NotificationResponse{}, notification.ErrEmptyRecipient
	}
	if strings.TrimSpace(req.Message) == "" {
		return notification.NotificationResponse{}, notification.ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := notification.Notification{
		ID:        req.ID,
		UserID:    req.UserID,
		Message:   req.Message,
		Read:      false,
		CreatedAt: now,
		Link:      req.Link,
	}
	if n.ID == "" {
		n.ID = newID(now)
	}

	next := make([]notification.Notification, 0, len(s.notifications)+1)
	next = append(next, n)
	next = append(next, s.notifications...)

	if err := s.repo.Save(ctx, next); err != nil {
		slog.Error("Failed to persist notification", "user_id", n.UserID, "error", err)
		return notification.NotificationResponse{}, fmt.Errorf("failed to save notifications: %w", err)
	}
	s.notifications = next

	resp := n.ToResponse()
	if s.hub != nil {
		s.hub.Publish(n.UserID, sse.Event{Name: eventNotification, Data: resp})
	}

	slog.Debug("Notification added", "id", n.ID, "user_id", n.UserID)
	return resp, nil
}

// MarkAllAsRead flips the read flag on userID's notifications only.
func (s *service) MarkAllAsRead(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]notification.Notification, len(s.notifications))
	copy(next, s.notifications)

	changed := 0
	for i := range next {
		if next[i].UserID == userID && !next[i].Read {
			next[i].Read = true
			changed++
		}
	}
	if changed == 0 {
		return nil
	}

	if err := s.repo.Save(ctx, next); err != nil {
		slog.Error("Failed to persist read state", "user_id", userID, "error", err)
		return fmt.Errorf("failed to save notifications: %w", err)
	}
	s.notifications = next
	return nil
}

// ListFor returns userID's notifications newest first.
func (s *service) ListFor(ctx context.Context, userID string) (notification.NotificationListResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := notification.NotificationListResponse{
		Notifications: []notification.NotificationResponse{},
	}
	for _, n := range s.notifications {
		if n.UserID != userID {
			continue
		}
		resp.Notifications = append(resp.Notifications, n.ToResponse())
		if !n.Read {
			resp.UnreadCount++
		}
	}
	return resp, nil
}

func (s *service) UnreadCountFor(ctx context.Context, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, n := range s.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

// Subscribe streams notifications added for userID until ctx is done or
// cleanup is called.
func (s *service) Subscribe(ctx context.Context, userID string) (<-chan notification.SSEEvent, func()) {
	ch, cleanup := s.hub.Subscribe(userID)

	out := make(chan notification.SSEEvent, 10)

	go func() {
		defer close(out)
		for {
			select {
			case event, ok := <-ch:
				if !ok {
					return
				}
				resp, ok := event.Data.(notification.NotificationResponse)
				if !ok {
					continue
				}
				select {
				case out <- notification.SSEEvent{Event: event.Name, Data: resp}:
				case <-ctx.Done():
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, cleanup
}

// newID derives an id from the creation time. The suffix keeps ids unique
// when two notifications land in the same millisecond.
func newID(now time.Time) string {
	return fmt.Sprintf("notif-%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}
