package performance

import (
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/validator"
)

type CreateReviewRequest struct {
	EmployeeID string  `json:"employee_id"`
	ReviewerID string  `json:"reviewer_id,omitempty"`
	ReviewDate string  `json:"review_date"`
	Score      float64 `json:"score"`
	Comments   string  `json:"comments"`
}

func (r *CreateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.ReviewDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "review_date", Message: "review_date must be in YYYY-MM-DD format"})
	}
	if r.Score < MinScore || r.Score > MaxScore {
		errs = append(errs, validator.ValidationError{Field: "score", Message: "score must be between 1 and 5"})
	}
	if validator.IsEmpty(r.Comments) {
		errs = append(errs, validator.ValidationError{Field: "comments", Message: "comments is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	ReviewerID   string  `json:"reviewer_id"`
	ReviewDate   string  `json:"review_date"`
	Score        float64 `json:"score"`
	Comments     string  `json:"comments"`
}
