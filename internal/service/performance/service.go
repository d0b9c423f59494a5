package performance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/notification"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/performance"
	"github.com/google/uuid"
)

// DefaultReviewerID is recorded when a review is created without a reviewer.
const DefaultReviewerID = "admin"

type PerformanceServiceImpl struct {
	performance.ReviewRepository
	employee.EmployeeRepository
	notifier notification.Service
}

func NewPerformanceService(
	reviewRepository performance.ReviewRepository,
	employeeRepository employee.EmployeeRepository,
	notifier notification.Service,
) performance.PerformanceService {
	return &PerformanceServiceImpl{
		ReviewRepository:   reviewRepository,
		EmployeeRepository: employeeRepository,
		notifier:           notifier,
	}
}

func (p *PerformanceServiceImpl) CreateReview(ctx context.Context, req performance.CreateReviewRequest) (performance.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return performance.ReviewResponse{}, err
	}

	emp, err := p.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return performance.ReviewResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return performance.ReviewResponse{}, fmt.Errorf("failed to generate review ID: %w", err)
	}

	reviewer := req.ReviewerID
	if reviewer == "" {
		reviewer = DefaultReviewerID
	}
	reviewDate, _ := time.Parse("2006-01-02", req.ReviewDate)

	created, err := p.ReviewRepository.Prepend(ctx, performance.Review{
		ID:         id.String(),
		EmployeeID: emp.ID,
		ReviewerID: reviewer,
		ReviewDate: reviewDate,
		Score:      req.Score,
		Comments:   req.Comments,
	})
	if err != nil {
		return performance.ReviewResponse{}, fmt.Errorf("failed to save review: %w", err)
	}

	slog.Info("Performance review created", "id", created.ID, "employee_id", emp.ID, "score", created.Score)

	if p.notifier != nil {
		link := notification.LinkEmployeeDashboard
		if _, err := p.notifier.Add(ctx, notification.AddNotificationRequest{
			UserID:  emp.ID,
			Message: fmt.Sprintf("Penilaian kinerja baru telah ditambahkan untuk Anda dengan skor %.1f.", created.Score),
			Link:    &link,
		}); err != nil {
			slog.Error("Failed to send review notification", "user_id", emp.ID, "error", err)
		}
	}

	resp := created.ToResponse()
	resp.EmployeeName = emp.Name
	return resp, nil
}

// ListReviews returns every review when employeeID is empty.
func (p *PerformanceServiceImpl) ListReviews(ctx context.Context, employeeID string) ([]performance.ReviewResponse, error) {
	var (
		reviews []performance.Review
		err     error
	)
	if employeeID == "" {
		reviews, err = p.ReviewRepository.List(ctx)
	} else {
		reviews, err = p.ReviewRepository.GetByEmployeeID(ctx, employeeID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	employees, err := p.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]performance.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp := r.ToResponse()
		resp.EmployeeName = employee.NameByID(employees, r.EmployeeID)
		responses = append(responses, resp)
	}
	return responses, nil
}

func (p *PerformanceServiceImpl) LatestReview(ctx context.Context, employeeID string) (*performance.ReviewResponse, error) {
	reviews, err := p.ReviewRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	latest, ok := Latest(reviews)
	if !ok {
		return nil, nil
	}
	resp := latest.ToResponse()
	return &resp, nil
}

// Latest picks the review with the most recent review date. On a tie the one
// stored first, i.e. the most recently added, wins.
func Latest(reviews []performance.Review) (performance.Review, bool) {
	if len(reviews) == 0 {
		return performance.Review{}, false
	}
	latest := reviews[0]
	for _, r := range reviews[1:] {
		if r.ReviewDate.After(latest.ReviewDate) {
			latest = r
		}
	}
	return latest, true
}
