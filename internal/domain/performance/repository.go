package performance

import "context"

type ReviewRepository interface {
	Prepend(ctx context.Context, review Review) (Review, error)
	List(ctx context.Context) ([]Review, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]Review, error)
}
