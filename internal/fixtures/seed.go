package fixtures

import (
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/overtime"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/performance"
	"github.com/shopspring/decimal"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func strPtr(s string) *string { return &s }

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic("fixtures: bad date " + s)
	}
	return t
}

// seededAt is the creation timestamp given to every seeded request.
var seededAt = time.Date(2023, time.October, 26, 8, 0, 0, 0, time.UTC)

// ==========================================
// SEED RESULT
// ==========================================

// Seed is the demo dataset the entity store starts with.
type Seed struct {
	Employees        []employee.Employee
	Attendance       []attendance.Attendance
	LeaveRequests    []leave.LeaveRequest
	OvertimeRequests []overtime.OvertimeRequest
	Reviews          []performance.Review
}

// Default returns a fresh copy of the demo dataset. Collections are ordered
// most-recent-first, the same order the store keeps.
func Default() Seed {
	return Seed{
		Employees:        DefaultEmployees(),
		Attendance:       DefaultAttendance(),
		LeaveRequests:    DefaultLeaveRequests(),
		OvertimeRequests: DefaultOvertimeRequests(),
		Reviews:          DefaultReviews(),
	}
}

// ==========================================
// EMPLOYEES
// ==========================================

func DefaultEmployees() []employee.Employee {
	return []employee.Employee{
		{ID: "1", NIP: "199001012020011001", Name: "Budi Santoso", Position: "Frontend Developer", Department: "Teknologi Informasi", Status: employee.StatusActive, AvatarURL: "https://picsum.photos/id/1005/200/200", JoinDate: mustDate("2020-01-15"), Email: "budi.s@example.com"},
		{ID: "2", NIP: "199205102020012002", Name: "Citra Lestari", Position: "UI/UX Designer", Department: "Produk", Status: employee.StatusActive, AvatarURL: "https://picsum.photos/id/1011/200/200", JoinDate: mustDate("2020-01-20"), Email: "citra.l@example.com"},
		{ID: "3", NIP: "198811202019031003", Name: "Agus Wijaya", Position: "Backend Developer", Department: "Teknologi Informasi", Status: employee.StatusActive, AvatarURL: "https://picsum.photos/id/1025/200/200", JoinDate: mustDate("2019-03-10"), Email: "agus.w@example.com"},
		{ID: "4", NIP: "199508152021071004", Name: "Dewi Anggraini", Position: "HR Manager", Department: "Sumber Daya Manusia", Status: employee.StatusActive, AvatarURL: "https://picsum.photos/id/1027/200/200", JoinDate: mustDate("2021-07-01"), Email: "dewi.a@example.com"},
		{ID: "5", NIP: "199303252021072005", Name: "Eko Prasetyo", Position: "QA Engineer", Department: "Teknologi Informasi", Status: employee.StatusActive, AvatarURL: "https://picsum.photos/id/10/200/200", JoinDate: mustDate("2021-07-15"), Email: "eko.p@example.com"},
		{ID: "6", NIP: "199809052022011006", Name: "Fitriani", Position: "Marketing Specialist", Department: "Pemasaran", Status: employee.StatusInactive, AvatarURL: "https://picsum.photos/id/11/200/200", JoinDate: mustDate("2022-01-10"), Email: "fitriani@example.com"},
	}
}

// ==========================================
// ATTENDANCE
// ==========================================

func DefaultAttendance() []attendance.Attendance {
	return []attendance.Attendance{
		{ID: "att1", EmployeeID: "1", Date: mustDate("2023-10-26"), CheckIn: strPtr("08:55"), CheckOut: strPtr("17:05"), Status: attendance.StatusPresent},
		{ID: "att2", EmployeeID: "2", Date: mustDate("2023-10-26"), CheckIn: strPtr("09:02"), CheckOut: strPtr("17:00"), Status: attendance.StatusPresent},
		{ID: "att3", EmployeeID: "3", Date: mustDate("2023-10-26"), Status: attendance.StatusSick},
		{ID: "att4", EmployeeID: "4", Date: mustDate("2023-10-26"), CheckIn: strPtr("08:45"), CheckOut: strPtr("17:15"), Status: attendance.StatusPresent},
		{ID: "att5", EmployeeID: "1", Date: mustDate("2023-10-25"), CheckIn: strPtr("08:50"), CheckOut: strPtr("17:01"), Status: attendance.StatusPresent},
		{ID: "att6", EmployeeID: "2", Date: mustDate("2023-10-25"), CheckIn: strPtr("09:10"), CheckOut: strPtr("17:05"), Status: attendance.StatusPresent},
		{ID: "att7", EmployeeID: "5", Date: mustDate("2023-10-26"), CheckIn: strPtr("09:00"), CheckOut: strPtr("17:00"), Status: attendance.StatusPresent},
		{ID: "att8", EmployeeID: "6", Date: mustDate("2023-10-26"), Status: attendance.StatusAbsent},
	}
}

// ==========================================
// LEAVE REQUESTS
// ==========================================

func DefaultLeaveRequests() []leave.LeaveRequest {
	return []leave.LeaveRequest{
		{ID: "leave1", EmployeeID: "3", LeaveType: leave.LeaveTypeSick, StartDate: mustDate("2023-10-26"), EndDate: mustDate("2023-10-27"), Reason: "Flu dan demam", Status: leave.LeaveRequestStatusApproved, CreatedAt: seededAt},
		{ID: "leave2", EmployeeID: "1", LeaveType: leave.LeaveTypeAnnual, StartDate: mustDate("2023-11-10"), EndDate: mustDate("2023-11-15"), Reason: "Liburan keluarga", Status: leave.LeaveRequestStatusPending, CreatedAt: seededAt},
		{ID: "leave3", EmployeeID: "2", LeaveType: leave.LeaveTypeMaternity, StartDate: mustDate("2023-09-01"), EndDate: mustDate("2023-12-01"), Reason: "Persiapan melahirkan", Status: leave.LeaveRequestStatusApproved, CreatedAt: seededAt},
		{ID: "leave4", EmployeeID: "5", LeaveType: leave.LeaveTypeAnnual, StartDate: mustDate("2023-10-30"), EndDate: mustDate("2023-10-30"), Reason: "Acara keluarga", Status: leave.LeaveRequestStatusRejected, CreatedAt: seededAt},
	}
}

// ==========================================
// OVERTIME REQUESTS
// ==========================================

func DefaultOvertimeRequests() []overtime.OvertimeRequest {
	return []overtime.OvertimeRequest{
		{ID: "ovt1", EmployeeID: "1", Date: mustDate("2023-10-20"), StartTime: "17:00", EndTime: "19:00", Duration: decimal.NewFromInt(2), Reason: "Menyelesaikan hotfix untuk production.", Status: overtime.OvertimeRequestStatusApproved, CreatedAt: seededAt},
		{ID: "ovt2", EmployeeID: "3", Date: mustDate("2023-10-21"), StartTime: "17:00", EndTime: "20:00", Duration: decimal.NewFromInt(3), Reason: "Deployment server baru.", Status: overtime.OvertimeRequestStatusApproved, CreatedAt: seededAt},
		{ID: "ovt3", EmployeeID: "5", Date: mustDate("2023-10-25"), StartTime: "17:30", EndTime: "18:30", Duration: decimal.NewFromInt(1), Reason: "Testing fitur mendesak.", Status: overtime.OvertimeRequestStatusPending, CreatedAt: seededAt},
		{ID: "ovt4", EmployeeID: "1", Date: mustDate("2023-10-25"), StartTime: "18:00", EndTime: "19:00", Duration: decimal.NewFromInt(1), Reason: "Meeting dengan tim US.", Status: overtime.OvertimeRequestStatusRejected, CreatedAt: seededAt},
	}
}

// ==========================================
// PERFORMANCE REVIEWS
// ==========================================

func DefaultReviews() []performance.Review {
	return []performance.Review{
		{ID: "perf1", EmployeeID: "1", ReviewerID: "4", ReviewDate: mustDate("2023-06-30"), Score: 4.5, Comments: "Kinerja sangat baik, konsisten dalam mencapai target sprint."},
		{ID: "perf2", EmployeeID: "2", ReviewerID: "4", ReviewDate: mustDate("2023-06-30"), Score: 4.8, Comments: "Desain yang dihasilkan sangat kreatif dan user-friendly. Inisiatif tinggi."},
		{ID: "perf3", EmployeeID: "3", ReviewerID: "4", ReviewDate: mustDate("2023-06-30"), Score: 4.2, Comments: "Kemampuan problem-solving yang kuat, namun perlu meningkatkan kecepatan development."},
		{ID: "perf4", EmployeeID: "5", ReviewerID: "4", ReviewDate: mustDate("2023-06-30"), Score: 4.0, Comments: "Teliti dalam pengujian, berhasil menemukan beberapa bug kritikal."},
	}
}
