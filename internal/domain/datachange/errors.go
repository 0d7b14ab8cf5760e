package datachange

import "errors"

var (
	ErrRequestNotFound         = errors.New("data change request not found")
	ErrRequestAlreadyProcessed = errors.New("data change request already processed")
)
