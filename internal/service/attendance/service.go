package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/medusa-holding/medusa/internal/domain/attendance"
	"github.com/medusa-holding/medusa/internal/domain/employee"
	"github.com/medusa-holding/medusa/internal/pkg/database"
	"github.com/medusa-holding/medusa/internal/pkg/validator"
	"github.com/medusa-holding/medusa/internal/service/file"
)

type AttendanceServiceImpl struct {
	transactor        database.Transactor
	attendanceRepo    attendance.AttendanceRepository
	justificationRepo attendance.JustificationRepository
	employeeRepo      employee.EmployeeRepository
	fileService       file.FileService
	location          *time.Location
	now               func() time.Time
}

// NewAttendanceService returns the attendance ledger. Punch dates are taken in location.
func NewAttendanceService(
	transactor database.Transactor,
	attendanceRepo attendance.AttendanceRepository,
	justificationRepo attendance.JustificationRepository,
	employeeRepo employee.EmployeeRepository,
	fileService file.FileService,
	location *time.Location,
) attendance.AttendanceService {
	if location == nil {
		location = time.UTC
	}
	return &AttendanceServiceImpl{
		transactor:        transactor,
		attendanceRepo:    attendanceRepo,
		justificationRepo: justificationRepo,
		employeeRepo:      employeeRepo,
		fileService:       fileService,
		location:          location,
		now:               time.Now,
	}
}

// punchTime returns the requested instant, or now, in the service location.
func (a *AttendanceServiceImpl) punchTime(at *string) time.Time {
	if at != nil {
		if t, ok := validator.IsValidDateTime(*at); ok {
			return t.In(a.location)
		}
	}
	return a.now().In(a.location)
}

func (a *AttendanceServiceImpl) activeEmployee(ctx context.Context, companyID, employeeID string) (employee.Employee, error) {
	emp, err := a.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return employee.Employee{}, err
	}
	if !emp.IsActive() {
		return employee.Employee{}, employee.ErrEmployeeInactive
	}
	return emp, nil
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, companyID string, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := a.activeEmployee(ctx, companyID, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	at := a.punchTime(req.At)
	date := attendance.DateOf(at)

	existing, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, date, companyID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	record, err := attendance.ApplyCheckIn(existing, companyID, emp.ID, at)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	record.RecordedBy = req.RecordedBy

	if existing == nil {
		created, err := a.attendanceRepo.Create(ctx, record)
		switch {
		case errors.Is(err, attendance.ErrAttendanceAlreadyExists):
			// A concurrent punch or the sweep created the day first.
			existing, err = a.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, date, companyID)
			if err != nil {
				return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
			}
			if record, err = attendance.ApplyCheckIn(existing, companyID, emp.ID, at); err != nil {
				return attendance.AttendanceResponse{}, err
			}
			record.RecordedBy = req.RecordedBy
			if err := a.attendanceRepo.Update(ctx, record); err != nil {
				return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
			}
		case err != nil:
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance: %w", err)
		default:
			record = created
		}
	} else if err := a.attendanceRepo.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	record.EmployeeName = &emp.FullName
	return attendance.ToResponse(record), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, companyID string, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := a.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	at := a.punchTime(req.At)

	existing, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, attendance.DateOf(at), companyID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	// An overnight shift checks out on the day after its check-in. A day left open
	// without a wrap stays open and the punch is rejected.
	if existing == nil || existing.CheckIn == nil {
		previous, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, attendance.DateOf(at.AddDate(0, 0, -1)), companyID)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance: %w", err)
		}
		if previous != nil && previous.CheckIn != nil && previous.CheckOut == nil && attendance.ClosesOvernight(*previous.CheckIn, at) {
			existing = previous
		}
	}

	record, err := attendance.ApplyCheckOut(existing, at)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := a.attendanceRepo.Update(ctx, record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	record.EmployeeName = &emp.FullName
	return attendance.ToResponse(record), nil
}

// GetAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendance(ctx context.Context, companyID string, id string) (attendance.AttendanceResponse, error) {
	record, err := a.attendanceRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(record), nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, companyID string, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := a.attendanceRepo.List(ctx, filter, companyID)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.ToResponse(record))
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	showing := fmt.Sprintf("%d-%d of %d", (filter.Page-1)*filter.Limit+1, min(filter.Page*filter.Limit, int(total)), total)
	if total == 0 {
		showing = "0 of 0"
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		TotalPages:  totalPages,
		Showing:     showing,
		Attendances: responses,
	}, nil
}

// UpdateAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, companyID string, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record, err := a.attendanceRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	var checkIn, checkOut *time.Time
	if req.CheckIn != nil {
		t := a.punchTime(req.CheckIn)
		checkIn = &t
	}
	if req.CheckOut != nil {
		t := a.punchTime(req.CheckOut)
		checkOut = &t
	}

	updated, err := attendance.ApplyCorrection(record, checkIn, checkOut, req.Status, req.Notes)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := a.attendanceRepo.Update(ctx, updated); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return attendance.ToResponse(updated), nil
}

// JustifyAbsence implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) JustifyAbsence(ctx context.Context, companyID string, req attendance.JustifyAbsenceRequest) (attendance.JustificationResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.JustificationResponse{}, err
	}

	record, err := a.attendanceRepo.GetByID(ctx, req.AttendanceID, companyID)
	if err != nil {
		return attendance.JustificationResponse{}, err
	}

	previous, err := a.justificationRepo.GetByAttendanceID(ctx, record.ID, companyID)
	if err != nil {
		return attendance.JustificationResponse{}, fmt.Errorf("failed to get justification: %w", err)
	}
	if previous != nil {
		return attendance.JustificationResponse{}, attendance.ErrAlreadyJustified
	}

	updated, applied, err := attendance.ApplyJustification(record, a.now())
	if err != nil {
		return attendance.JustificationResponse{}, err
	}

	var evidenceRef *string
	if req.File != nil && a.fileService != nil {
		key, err := a.fileService.UploadJustificationEvidence(ctx, companyID, record.ID, req.File, req.Filename)
		if err != nil {
			return attendance.JustificationResponse{}, err
		}
		evidenceRef = &key
	}

	var justification attendance.Justification
	err = a.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		created, err := a.justificationRepo.Create(ctx, attendance.Justification{
			CompanyID:    companyID,
			AttendanceID: record.ID,
			Reason:       req.Reason,
			EvidenceRef:  evidenceRef,
			JustifiedBy:  req.JustifiedBy,
		})
		if err != nil {
			return err
		}
		justification = created

		if applied {
			if err := a.attendanceRepo.Update(ctx, updated); err != nil {
				return fmt.Errorf("failed to update attendance: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		if evidenceRef != nil {
			if delErr := a.fileService.DeleteFile(ctx, *evidenceRef); delErr != nil {
				slog.Warn("Failed to remove orphaned justification evidence", "key", *evidenceRef, "error", delErr)
			}
		}
		return attendance.JustificationResponse{}, err
	}

	message := "Absence justified"
	if !applied {
		message = "Justification recorded after the 24h window, the absence remains unjustified"
	}

	return attendance.JustificationResponse{
		ID:          justification.ID,
		Reason:      justification.Reason,
		EvidenceRef: justification.EvidenceRef,
		Applied:     applied,
		Message:     message,
		Attendance:  attendance.ToResponse(updated),
	}, nil
}

// SweepAbsences implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) SweepAbsences(ctx context.Context, companyID string, date time.Time) (attendance.SweepResponse, error) {
	day := attendance.DateOf(date)

	employees, err := a.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return attendance.SweepResponse{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	recorded, err := a.attendanceRepo.EmployeeIDsWithRecord(ctx, day, companyID)
	if err != nil {
		return attendance.SweepResponse{}, fmt.Errorf("failed to list recorded employees: %w", err)
	}
	hasRecord := make(map[string]bool, len(recorded))
	for _, id := range recorded {
		hasRecord[id] = true
	}

	var absences []attendance.Attendance
	for _, emp := range employees {
		if hasRecord[emp.ID] || attendance.DateOf(emp.HireDate).After(day) {
			continue
		}
		absences = append(absences, attendance.NewAbsence(companyID, emp.ID, day))
	}

	created := 0
	if len(absences) > 0 {
		created, err = a.attendanceRepo.BulkCreateAbsences(ctx, absences)
		if err != nil {
			return attendance.SweepResponse{}, fmt.Errorf("failed to create absences: %w", err)
		}
	}

	slog.Info("Absence sweep finished",
		"company_id", companyID,
		"date", day.Format("2006-01-02"),
		"active_employees", len(employees),
		"absences_created", created)

	return attendance.SweepResponse{
		Date:    day.Format("2006-01-02"),
		Created: created,
	}, nil
}
