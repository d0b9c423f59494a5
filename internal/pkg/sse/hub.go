// Package sse holds the in-process fan-out behind the notification stream.
// Each signed-in user may keep several browser tabs on /notifications/stream;
// every tab gets its own buffered channel keyed by the user's id.
package sse

import (
	"sync"
)

// streamBuffer is how many undelivered notifications a slow tab may lag
// behind before further ones to it are dropped.
const streamBuffer = 10

// Event is one message for a user's open streams. Name becomes the SSE
// "event:" field.
type Event struct {
	UserID string
	Name   string
	Data   interface{}
}

// Hub routes notifications to the open streams of their recipient. The
// admin inbox and each employee id have separate stream sets.
type Hub struct {
	mu      sync.RWMutex
	streams map[string]map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		streams: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe opens a stream for userID. The returned cleanup closes the
// channel; calling it more than once is a no-op.
func (h *Hub) Subscribe(userID string) (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, streamBuffer)
	if h.streams[userID] == nil {
		h.streams[userID] = make(map[chan Event]struct{})
	}
	h.streams[userID][ch] = struct{}{}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.streams[userID], ch)
			close(ch)
			if len(h.streams[userID]) == 0 {
				delete(h.streams, userID)
			}
		})
	}

	return ch, cleanup
}

// Publish hands event to every open stream of userID. A tab whose buffer is
// full misses the event; it still sees the notification on its next list.
func (h *Hub) Publish(userID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	event.UserID = userID
	for ch := range h.streams[userID] {
		select {
		case ch <- event:
		default:
		}
	}
}

// StreamCount reports how many tabs userID has open.
func (h *Hub) StreamCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.streams[userID])
}
