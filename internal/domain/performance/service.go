package performance

import "context"

type PerformanceService interface {
	CreateReview(ctx context.Context, req CreateReviewRequest) (ReviewResponse, error)
	ListReviews(ctx context.Context, employeeID string) ([]ReviewResponse, error)
	// LatestReview returns nil when the employee has never been reviewed.
	LatestReview(ctx context.Context, employeeID string) (*ReviewResponse, error)
}
