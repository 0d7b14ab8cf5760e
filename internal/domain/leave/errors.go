package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrInvalidDateRange             = errors.New("end date before start date")
	ErrInvalidLeaveType             = errors.New("invalid leave type")
	ErrRejectionReasonRequired      = errors.New("rejection reason is required")
)
