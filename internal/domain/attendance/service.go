package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn records the first punch of the day
	CheckIn(ctx context.Context, companyID string, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut records the last punch of the day
	CheckOut(ctx context.Context, companyID string, req CheckOutRequest) (AttendanceResponse, error)

	GetAttendance(ctx context.Context, companyID string, id string) (AttendanceResponse, error)

	ListAttendance(ctx context.Context, companyID string, filter AttendanceFilter) (ListAttendanceResponse, error)

	// UpdateAttendance corrects a record (admin/manager)
	UpdateAttendance(ctx context.Context, companyID string, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// JustifyAbsence stores a justification and excuses the absence when still within the window
	JustifyAbsence(ctx context.Context, companyID string, req JustifyAbsenceRequest) (JustificationResponse, error)

	// SweepAbsences marks every active employee without a record on date as absent
	SweepAbsences(ctx context.Context, companyID string, date time.Time) (SweepResponse, error)
}
