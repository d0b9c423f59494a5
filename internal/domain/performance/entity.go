package performance

import "time"

const (
	MinScore = 1.0
	MaxScore = 5.0
)

// Review is append-only.
type Review struct {
	ID         string
	EmployeeID string
	ReviewerID string
	ReviewDate time.Time
	Score      float64
	Comments   string
}

func (r Review) ToResponse() ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		ReviewerID: r.ReviewerID,
		ReviewDate: r.ReviewDate.Format("2006-01-02"),
		Score:      r.Score,
		Comments:   r.Comments,
	}
}
