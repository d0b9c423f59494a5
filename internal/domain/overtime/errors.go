package overtime

import "errors"

var (
	ErrOvertimeRequestNotFound         = errors.New("overtime request not found")
	ErrOvertimeRequestAlreadyProcessed = errors.New("overtime request already processed")
	ErrInvalidTimeRange                = errors.New("start time must be before end time")
)
