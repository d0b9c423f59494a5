package overtime

import (
	"time"

	"github.com/shopspring/decimal"
)

type OvertimeRequestStatus string

const (
	OvertimeRequestStatusPending  OvertimeRequestStatus = "pending"
	OvertimeRequestStatusApproved OvertimeRequestStatus = "approved"
	OvertimeRequestStatusRejected OvertimeRequestStatus = "rejected"
)

func (s OvertimeRequestStatus) Label() string {
	switch s {
	case OvertimeRequestStatusApproved:
		return "Disetujui"
	case OvertimeRequestStatusRejected:
		return "Ditolak"
	default:
		return "Menunggu"
	}
}

// DurationPrecision is the number of decimals kept on a stored duration.
const DurationPrecision int32 = 1

type OvertimeRequest struct {
	ID         string
	EmployeeID string
	Date       time.Time
	StartTime  string // HH:MM
	EndTime    string // HH:MM
	Duration   decimal.Decimal
	Reason     string
	Status     OvertimeRequestStatus
	CreatedAt  time.Time
}

func (o OvertimeRequest) ToResponse() OvertimeRequestResponse {
	return OvertimeRequestResponse{
		ID:            o.ID,
		EmployeeID:    o.EmployeeID,
		Date:          o.Date.Format("2006-01-02"),
		StartTime:     o.StartTime,
		EndTime:       o.EndTime,
		DurationHours: o.Duration.InexactFloat64(),
		Reason:        o.Reason,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
	}
}
