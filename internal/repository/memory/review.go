package memory

import (
	"context"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/performance"
)

type reviewRepository struct {
	store *Store
}

func NewReviewRepository(store *Store) performance.ReviewRepository {
	return &reviewRepository{store: store}
}

func (r *reviewRepository) Prepend(ctx context.Context, review performance.Review) (performance.Review, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.reviews = prepend(r.store.reviews, review)
	return review, nil
}

func (r *reviewRepository) List(ctx context.Context) ([]performance.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return clone(r.store.reviews), nil
}

func (r *reviewRepository) GetByEmployeeID(ctx context.Context, employeeID string) ([]performance.Review, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var reviews []performance.Review
	for _, rv := range r.store.reviews {
		if rv.EmployeeID == employeeID {
			reviews = append(reviews, rv)
		}
	}
	return reviews, nil
}
