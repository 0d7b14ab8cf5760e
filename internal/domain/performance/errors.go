package performance

import "errors"

var (
	ErrReviewNotFound           = errors.New("performance review not found")
	ErrFeedbackAlreadySubmitted = errors.New("employee feedback already submitted")
)
