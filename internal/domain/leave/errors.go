package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrLeaveNotApproved             = errors.New("leave request is not approved")
	ErrInvalidTargetStatus          = errors.New("target status must be approved or rejected")
)
