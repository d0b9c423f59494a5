package notification

import (
	"context"
)

// Repository persists the whole notification collection. It is read once at
// startup and rewritten after every mutation.
type Repository interface {
	Load(ctx context.Context) ([]Notification, error)
	Save(ctx context.Context, notifications []Notification) error
}
