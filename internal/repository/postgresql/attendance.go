package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/medusa-holding/medusa/internal/domain/attendance"
	"github.com/medusa-holding/medusa/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	a.id, a.company_id, a.employee_id, a.date, a.check_in, a.check_out, a.worked_hours,
	a.status, a.notes, a.recorded_by, a.created_at, a.updated_at`

func scanAttendance(row pgx.Row, extra ...any) (attendance.Attendance, error) {
	var att attendance.Attendance
	dest := []any{
		&att.ID, &att.CompanyID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut, &att.WorkedHours,
		&att.Status, &att.Notes, &att.RecordedBy, &att.CreatedAt, &att.UpdatedAt,
	}
	err := row.Scan(append(dest, extra...)...)
	return att, err
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances AS a (
			company_id, employee_id, date, check_in, check_out, worked_hours, status, notes, recorded_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING` + attendanceColumns

	created, err := scanAttendance(q.QueryRow(ctx, query,
		newAttendance.CompanyID,
		newAttendance.EmployeeID,
		attendance.DateOf(newAttendance.Date),
		newAttendance.CheckIn,
		newAttendance.CheckOut,
		newAttendance.WorkedHours,
		newAttendance.Status,
		newAttendance.Notes,
		newAttendance.RecordedBy,
	))
	if err != nil {
		if isUniqueViolation(err, "uk_attendances_employee_date") {
			return attendance.Attendance{}, attendance.ErrAttendanceAlreadyExists
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return created, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string, companyID string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT` + attendanceColumns + `, e.full_name
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1 AND a.company_id = $2`

	var employeeName *string
	att, err := scanAttendance(q.QueryRow(ctx, query, id, companyID), &employeeName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by ID: %w", err)
	}
	att.EmployeeName = employeeName

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.date = $2 AND a.company_id = $3`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, attendance.DateOf(date), companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances SET
			check_in = $3, check_out = $4, worked_hours = $5, status = $6,
			notes = $7, recorded_by = $8, updated_at = NOW()
		WHERE id = $1 AND company_id = $2`

	tag, err := q.Exec(ctx, query,
		att.ID, att.CompanyID, att.CheckIn, att.CheckOut, att.WorkedHours, att.Status, att.Notes, att.RecordedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter, companyID string) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	where := newWhereBuilder("a.company_id = $1", companyID)
	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		where.And("a.employee_id = $%d", *filter.EmployeeID)
	}
	if filter.Status != nil {
		where.And("a.status = $%d", *filter.Status)
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		where.And("a.date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		where.And("a.date <= $%d", *filter.EndDate)
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM attendances a WHERE " + where.String()
	if err := q.QueryRow(ctx, countQuery, where.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	limit, offset := where.Page(filter.Page, filter.Limit)
	query := fmt.Sprintf(`SELECT`+attendanceColumns+`, e.full_name
		FROM attendances a
		LEFT JOIN employees e ON e.id = a.employee_id
		WHERE %s
		ORDER BY a.date DESC, a.employee_id
		LIMIT %d OFFSET %d`, where.String(), limit, offset)

	rows, err := q.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		var employeeName *string
		att, err := scanAttendance(rows, &employeeName)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		att.EmployeeName = employeeName
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return records, total, nil
}

// ListByEmployeePeriod implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByEmployeePeriod(ctx context.Context, employeeID string, month int, year int, companyID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	query := `SELECT` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.company_id = $2
		  AND a.date >= $3 AND a.date < $4
		ORDER BY a.date`

	rows, err := q.Query(ctx, query, employeeID, companyID, start, start.AddDate(0, 1, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances by period: %w", err)
	}
	defer rows.Close()

	records := make([]attendance.Attendance, 0)
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}

	return records, rows.Err()
}

// BulkCreateAbsences implements attendance.AttendanceRepository.
func (a *attendanceRepository) BulkCreateAbsences(ctx context.Context, absences []attendance.Attendance) (int, error) {
	if len(absences) == 0 {
		return 0, nil
	}

	q := GetQuerier(ctx, a.db)

	batch := &pgx.Batch{}
	for _, abs := range absences {
		batch.Queue(`
			INSERT INTO attendances (company_id, employee_id, date, worked_hours, status, notes, recorded_by)
			VALUES ($1, $2, $3, 0, $4, $5, $6)
			ON CONFLICT (employee_id, date) DO NOTHING
		`, abs.CompanyID, abs.EmployeeID, attendance.DateOf(abs.Date), abs.Status, abs.Notes, abs.RecordedBy)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for range absences {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("failed to insert absence: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// EmployeeIDsWithRecord implements attendance.AttendanceRepository.
func (a *attendanceRepository) EmployeeIDsWithRecord(ctx context.Context, date time.Time, companyID string) ([]string, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx,
		`SELECT employee_id FROM attendances WHERE date = $1 AND company_id = $2`,
		attendance.DateOf(date), companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees with attendance: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan employee id: %w", err)
	}
	return ids, nil
}

type justificationRepository struct {
	db *database.DB
}

func NewJustificationRepository(db *database.DB) attendance.JustificationRepository {
	return &justificationRepository{db: db}
}

func (r *justificationRepository) Create(ctx context.Context, j attendance.Justification) (attendance.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_justifications (company_id, attendance_id, reason, evidence_ref, justified_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := q.QueryRow(ctx, query, j.CompanyID, j.AttendanceID, j.Reason, j.EvidenceRef, j.JustifiedBy).
		Scan(&j.ID, &j.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "uk_attendance_justifications_attendance") {
			return attendance.Justification{}, attendance.ErrAlreadyJustified
		}
		return attendance.Justification{}, fmt.Errorf("failed to create justification: %w", err)
	}

	return j, nil
}

func (r *justificationRepository) GetByAttendanceID(ctx context.Context, attendanceID string, companyID string) (*attendance.Justification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, attendance_id, reason, evidence_ref, justified_by, created_at
		FROM attendance_justifications
		WHERE attendance_id = $1 AND company_id = $2`

	var j attendance.Justification
	err := q.QueryRow(ctx, query, attendanceID, companyID).Scan(
		&j.ID, &j.CompanyID, &j.AttendanceID, &j.Reason, &j.EvidenceRef, &j.JustifiedBy, &j.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get justification: %w", err)
	}

	return &j, nil
}
