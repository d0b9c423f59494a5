package employee

import (
	"fmt"
	"time"
)

type Employee struct {
	ID         string
	NIP        string
	Name       string
	Position   string
	Department string
	Status     Status
	AvatarURL  string
	JoinDate   time.Time
	Email      string
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// ToResponse maps the entity to its API representation.
func (e Employee) ToResponse() EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		NIP:        e.NIP,
		Name:       e.Name,
		Position:   e.Position,
		Department: e.Department,
		Status:     string(e.Status),
		AvatarURL:  e.AvatarURL,
		JoinDate:   e.JoinDate.Format("2006-01-02"),
		Email:      e.Email,
	}
}

// NameByID resolves an employee name, falling back to "Tidak Diketahui"
// when the id is unknown.
func NameByID(employees []Employee, id string) string {
	for _, e := range employees {
		if e.ID == id {
			return e.Name
		}
	}
	return UnknownName
}

const UnknownName = "Tidak Diketahui"

// DefaultAvatarURL is the placeholder picture given to employees created
// without one.
func DefaultAvatarURL(id string) string {
	return fmt.Sprintf("https://picsum.photos/id/10%s/200/200", id)
}
