package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/medusa-holding/medusa/internal/domain/shift"
	"github.com/medusa-holding/medusa/internal/pkg/database"
)

type shiftRepository struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepository{db: db}
}

const shiftColumns = `
	id, company_id, name, type, daily_hours, weekly_hours, workdays_per_week,
	description, is_active, created_at, updated_at`

func scanShift(row pgx.Row) (shift.Shift, error) {
	var s shift.Shift
	err := row.Scan(
		&s.ID, &s.CompanyID, &s.Name, &s.Type, &s.DailyHours, &s.WeeklyHours, &s.WorkdaysPerWeek,
		&s.Description, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

func (r *shiftRepository) Create(ctx context.Context, newShift shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (company_id, name, type, daily_hours, weekly_hours, workdays_per_week, description, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING` + shiftColumns

	created, err := scanShift(q.QueryRow(ctx, query,
		newShift.CompanyID, newShift.Name, newShift.Type, newShift.DailyHours, newShift.WeeklyHours,
		newShift.WorkdaysPerWeek, newShift.Description, newShift.IsActive,
	))
	if err != nil {
		if isUniqueViolation(err, "uk_shifts_company_name") {
			return shift.Shift{}, shift.ErrShiftNameExists
		}
		return shift.Shift{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return created, nil
}

func (r *shiftRepository) GetByID(ctx context.Context, id string, companyID string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + shiftColumns + `
		FROM shifts
		WHERE id = $1 AND company_id = $2`

	s, err := scanShift(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, fmt.Errorf("failed to get shift: %w", err)
	}

	return s, nil
}

func (r *shiftRepository) List(ctx context.Context, companyID string, activeOnly bool) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + shiftColumns + `
		FROM shifts
		WHERE company_id = $1 AND ($2 = false OR is_active)
		ORDER BY name`

	rows, err := q.Query(ctx, query, companyID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	shifts := make([]shift.Shift, 0)
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, s)
	}

	return shifts, rows.Err()
}

func (r *shiftRepository) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts SET
			name = $3, type = $4, daily_hours = $5, weekly_hours = $6, workdays_per_week = $7,
			description = $8, is_active = $9, updated_at = NOW()
		WHERE id = $1 AND company_id = $2`

	tag, err := q.Exec(ctx, query,
		s.ID, s.CompanyID, s.Name, s.Type, s.DailyHours, s.WeeklyHours, s.WorkdaysPerWeek,
		s.Description, s.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err, "uk_shifts_company_name") {
			return shift.ErrShiftNameExists
		}
		return fmt.Errorf("failed to update shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}

	return nil
}

func (r *shiftRepository) Delete(ctx context.Context, id string, companyID string) error {
	return NewTransactor(r.db).WithinTransaction(ctx, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		if _, err := q.Exec(ctx,
			`UPDATE employees SET shift_id = NULL, updated_at = NOW() WHERE shift_id = $1 AND company_id = $2`,
			id, companyID,
		); err != nil {
			return fmt.Errorf("failed to clear employee shifts: %w", err)
		}

		tag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1 AND company_id = $2`, id, companyID)
		if err != nil {
			return fmt.Errorf("failed to delete shift: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return shift.ErrShiftNotFound
		}
		return nil
	})
}
