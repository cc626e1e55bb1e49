package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/medusa-holding/medusa/internal/domain/attendance"
	"github.com/medusa-holding/medusa/internal/domain/employee"
)

type AttendanceJobs struct {
	attendanceService attendance.AttendanceService
	employeeRepo      employee.EmployeeRepository
	location          *time.Location
	now               func() time.Time
}

func NewAttendanceJobs(
	attendanceService attendance.AttendanceService,
	employeeRepo employee.EmployeeRepository,
	location *time.Location,
) *AttendanceJobs {
	if location == nil {
		location = time.UTC
	}
	return &AttendanceJobs{
		attendanceService: attendanceService,
		employeeRepo:      employeeRepo,
		location:          location,
		now:               time.Now,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("mark_absent_employees", interval, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees sweeps yesterday, in the company timezone, for every company
// with active employees. The sweep is idempotent, so running it on every tick is safe.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	yesterday := attendance.DateOf(j.now().In(j.location).AddDate(0, 0, -1))

	slog.Info("Cron: Starting mark absent employees job", "date", yesterday.Format("2006-01-02"))

	companyIDs, err := j.employeeRepo.GetCompanyIDsWithActiveEmployees(ctx)
	if err != nil {
		return fmt.Errorf("failed to get companies: %w", err)
	}

	totalAbsent := 0
	failed := 0
	for _, companyID := range companyIDs {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := j.attendanceService.SweepAbsences(ctx, companyID, yesterday)
		if err != nil {
			slog.Error("Cron: Failed to sweep absences", "company_id", companyID, "error", err)
			failed++
			continue
		}
		totalAbsent += result.Created
	}

	slog.Info("Cron: Marked absent employees",
		"date", yesterday.Format("2006-01-02"),
		"companies", len(companyIDs),
		"absent", totalAbsent,
		"failed", failed)

	if failed > 0 {
		return fmt.Errorf("absence sweep failed for %d of %d companies", failed, len(companyIDs))
	}
	return nil
}
