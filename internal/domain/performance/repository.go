package performance

import "context"

type ReviewRepository interface {
	Create(ctx context.Context, review Review) (Review, error)
	GetByID(ctx context.Context, id string) (Review, error)
	GetByEmployeeID(ctx context.Context, employeeID string) ([]Review, error)
	List(ctx context.Context, period *string) ([]Review, error)
	// SetEmployeeFeedback writes feedback only when none is stored yet and
	// reports the number of rows affected.
	SetEmployeeFeedback(ctx context.Context, id, feedback string) (int64, error)
}
