package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/medusa-holding/medusa/internal/domain/leave"
	"github.com/medusa-holding/medusa/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.company_id, lr.employee_id, lr.start_date, lr.end_date, lr.total_days, lr.business_days,
	lr.notes, lr.status, lr.decided_by, lr.decided_at, lr.requested_at, lr.created_at, lr.updated_at,
	e.full_name`

const leaveRequestFrom = `
	FROM leave_requests lr
	LEFT JOIN employees e ON e.id = lr.employee_id`

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.CompanyID, &lr.EmployeeID, &lr.StartDate, &lr.EndDate, &lr.TotalDays, &lr.BusinessDays,
		&lr.Notes, &lr.Status, &lr.DecidedBy, &lr.DecidedAt, &lr.RequestedAt, &lr.CreatedAt, &lr.UpdatedAt,
		&lr.EmployeeName,
	)
	return lr, err
}

func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			company_id, employee_id, start_date, end_date, total_days, business_days, notes, status, requested_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`

	err := q.QueryRow(ctx, query,
		request.CompanyID, request.EmployeeID, request.StartDate, request.EndDate,
		request.TotalDays, request.BusinessDays, request.Notes, request.Status, request.RequestedAt,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string, companyID string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + leaveRequestColumns + leaveRequestFrom + `
		WHERE lr.id = $1 AND lr.company_id = $2`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return lr, nil
}

func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id string, companyID string, from, to leave.LeaveRequestStatus, decidedBy *string, decidedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE leave_requests SET status = $4, decided_by = $5, decided_at = $6, updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND status = $3
	`, id, companyID, from, to, decidedBy, decidedAt)
	if err != nil {
		return fmt.Errorf("failed to update leave request status: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	err = q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM leave_requests WHERE id = $1 AND company_id = $2)`,
		id, companyID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check leave request: %w", err)
	}
	if !exists {
		return leave.ErrLeaveRequestNotFound
	}
	return leave.ErrLeaveRequestAlreadyProcessed
}

func (r *leaveRequestRepository) List(ctx context.Context, filter leave.LeaveRequestFilter, companyID string) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := newWhereBuilder("lr.company_id = $1", companyID)
	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		where.And("lr.employee_id = $%d", *filter.EmployeeID)
	}
	if filter.Status != nil {
		where.And("lr.status = $%d", *filter.Status)
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM leave_requests lr WHERE " + where.String()
	if err := q.QueryRow(ctx, countQuery, where.Args()...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	limit, offset := where.Page(filter.Page, filter.Limit)
	query := fmt.Sprintf(`SELECT`+leaveRequestColumns+leaveRequestFrom+`
		WHERE %s
		ORDER BY lr.start_date DESC
		LIMIT %d OFFSET %d`, where.String(), limit, offset)

	rows, err := q.Query(ctx, query, where.Args()...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	requests := make([]leave.LeaveRequest, 0)
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, total, nil
}
