package notification

import "errors"

var (
	ErrEmptyRecipient = errors.New("notification recipient is required")
	ErrEmptyMessage   = errors.New("notification message is required")
)
