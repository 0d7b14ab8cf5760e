package performance

import "context"

type ReviewService interface {
	// CreateReview records a performance review; the overall score is
	// derived from the weighted KPI scores, never taken from the request.
	CreateReview(ctx context.Context, req CreateReviewRequest) (ReviewResponse, error)

	// GetReview retrieves a single review by ID.
	GetReview(ctx context.Context, id string) (ReviewResponse, error)

	// ListReviews returns reviews, optionally filtered by period (admin only).
	ListReviews(ctx context.Context, period *string) ([]ReviewResponse, error)

	// ListByEmployee returns one employee's reviews, newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]ReviewResponse, error)

	// SubmitFeedback stores the employee's response to a review. Feedback
	// is write-once.
	SubmitFeedback(ctx context.Context, reviewID string, req SubmitFeedbackRequest) (ReviewResponse, error)
}
