package attendance

import "context"

type AttendanceService interface {
	ClockIn(ctx context.Context, employeeID string) (AttendanceResponse, error)
	ClockOut(ctx context.Context, employeeID string) (AttendanceResponse, error)
	GetToday(ctx context.Context, employeeID string) (*AttendanceResponse, error)
	Record(ctx context.Context, req RecordAttendanceRequest) (AttendanceResponse, error)
	List(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)
}
