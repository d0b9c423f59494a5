package notification

import (
	"time"
)

// AdminUserID is the sentinel recipient for administrator notifications.
const AdminUserID = "admin"

// Link is the navigation target a client opens when the notification is clicked.
type Link string

const (
	LinkLeaveManagement   Link = "leave_management"
	LinkOvertimeData      Link = "overtime_data"
	LinkEmployeeDashboard Link = "employee_dashboard"
)

// Notification is append-only except for Read, which only goes false -> true.
// The json tags define the persisted format shared by the file and redis stores.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
	Link      *Link     `json:"link,omitempty"`
}

func (n Notification) ToResponse() NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		Read:      n.Read,
		Link:      n.Link,
		CreatedAt: n.CreatedAt,
	}
}
