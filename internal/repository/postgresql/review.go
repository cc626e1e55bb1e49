package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/medusa-holding/medusa/internal/domain/review"
	"github.com/medusa-holding/medusa/internal/pkg/database"
)

type reviewRepository struct {
	db *database.DB
}

func NewReviewRepository(db *database.DB) review.ReviewRepository {
	return &reviewRepository{db: db}
}

const reviewColumns = `
	pr.id, pr.company_id, pr.employee_id, pr.reviewer_id, pr.period_start, pr.period_end,
	pr.quality_score, pr.productivity_score, pr.punctuality_score, pr.relationship_score,
	pr.initiative_score, pr.leadership_score, pr.final_score,
	pr.strengths, pr.improvements, pr.action_plan,
	pr.status, pr.finalized_at, pr.created_at, pr.updated_at,
	e.full_name`

const reviewFrom = `
	FROM performance_reviews pr
	LEFT JOIN employees e ON e.id = pr.employee_id`

func scanReview(row pgx.Row) (review.Review, error) {
	var rv review.Review
	s := &rv.Scores
	err := row.Scan(
		&rv.ID, &rv.CompanyID, &rv.EmployeeID, &rv.ReviewerID, &rv.PeriodStart, &rv.PeriodEnd,
		&s.Quality, &s.Productivity, &s.Punctuality, &s.Relationship,
		&s.Initiative, &s.Leadership, &rv.FinalScore,
		&rv.Strengths, &rv.Improvements, &rv.ActionPlan,
		&rv.Status, &rv.FinalizedAt, &rv.CreatedAt, &rv.UpdatedAt,
		&rv.EmployeeName,
	)
	return rv, err
}

func (r *reviewRepository) Create(ctx context.Context, rv review.Review) (review.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performance_reviews (
			company_id, employee_id, reviewer_id, period_start, period_end,
			quality_score, productivity_score, punctuality_score, relationship_score,
			initiative_score, leadership_score, final_score,
			strengths, improvements, action_plan, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at, updated_at`

	s := rv.Scores
	err := q.QueryRow(ctx, query,
		rv.CompanyID, rv.EmployeeID, rv.ReviewerID, rv.PeriodStart, rv.PeriodEnd,
		s.Quality, s.Productivity, s.Punctuality, s.Relationship,
		s.Initiative, s.Leadership, rv.FinalScore,
		rv.Strengths, rv.Improvements, rv.ActionPlan, rv.Status,
	).Scan(&rv.ID, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		return review.Review{}, fmt.Errorf("failed to create performance review: %w", err)
	}

	return rv, nil
}

func (r *reviewRepository) GetByID(ctx context.Context, id string, companyID string) (review.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + reviewColumns + reviewFrom + `
		WHERE pr.id = $1 AND pr.company_id = $2`

	rv, err := scanReview(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return review.Review{}, review.ErrReviewNotFound
		}
		return review.Review{}, fmt.Errorf("failed to get performance review: %w", err)
	}

	return rv, nil
}

func (r *reviewRepository) ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]review.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + reviewColumns + reviewFrom + `
		WHERE pr.employee_id = $1 AND pr.company_id = $2
		ORDER BY pr.period_end DESC`

	rows, err := q.Query(ctx, query, employeeID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]review.Review, 0)
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan performance review: %w", err)
		}
		reviews = append(reviews, rv)
	}

	return reviews, rows.Err()
}

func (r *reviewRepository) Update(ctx context.Context, rv review.Review) error {
	q := GetQuerier(ctx, r.db)

	s := rv.Scores
	tag, err := q.Exec(ctx, `
		UPDATE performance_reviews SET
			quality_score = $3, productivity_score = $4, punctuality_score = $5, relationship_score = $6,
			initiative_score = $7, leadership_score = $8, final_score = $9,
			strengths = $10, improvements = $11, action_plan = $12,
			status = $13, finalized_at = $14, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`, rv.ID, rv.CompanyID,
		s.Quality, s.Productivity, s.Punctuality, s.Relationship,
		s.Initiative, s.Leadership, rv.FinalScore,
		rv.Strengths, rv.Improvements, rv.ActionPlan,
		rv.Status, rv.FinalizedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update performance review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return review.ErrReviewNotFound
	}

	return nil
}
