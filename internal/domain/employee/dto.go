package employee

import (
	"strings"

	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	NIP        string `json:"nip"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Status     string `json:"status"`
	JoinDate   string `json:"join_date"`
	Email      string `json:"email"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.NIP) {
		errs = append(errs, validator.ValidationError{Field: "nip", Message: "nip is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position is required"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department is required"})
	}
	if r.Status == "" {
		r.Status = string(StatusActive)
	}
	if !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: active, inactive"})
	}
	if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "join_date", Message: "join_date must be in YYYY-MM-DD format"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest carries the administrator-editable fields.
// Identity (id, NIP) never changes.
type UpdateEmployeeRequest struct {
	ID         string  `json:"-"`
	Name       *string `json:"name,omitempty"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
	Status     *string `json:"status,omitempty"`
	Email      *string `json:"email,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.Position != nil && validator.IsEmpty(*r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position must not be empty"})
	}
	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department must not be empty"})
	}
	if r.Status != nil && !Status(*r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: active, inactive"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Search     string
	Department string
	Status     string
}

// Matches applies the filter the way the roster page does: search over
// name, NIP and position, exact department and status.
func (f EmployeeFilter) Matches(e Employee) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(e.Name), q) &&
			!strings.Contains(strings.ToLower(e.NIP), q) &&
			!strings.Contains(strings.ToLower(e.Position), q) {
			return false
		}
	}
	if f.Department != "" && e.Department != f.Department {
		return false
	}
	if f.Status != "" && string(e.Status) != f.Status {
		return false
	}
	return true
}

type EmployeeResponse struct {
	ID         string `json:"id"`
	NIP        string `json:"nip"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Status     string `json:"status"`
	AvatarURL  string `json:"avatar_url"`
	JoinDate   string `json:"join_date"`
	Email      string `json:"email"`
}

type ImportResult struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
}

// ExportFile is a generated CSV ready for download.
type ExportFile struct {
	FileName string
	Content  []byte
}
