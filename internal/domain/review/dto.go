package review

import (
	"fmt"
	"time"

	"github.com/medusa-holding/medusa/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateReviewRequest struct {
	EmployeeID   string  `json:"employee_id"`
	PeriodStart  string  `json:"period_start"`
	PeriodEnd    string  `json:"period_end"`
	Quality      int     `json:"quality"`
	Productivity int     `json:"productivity"`
	Punctuality  int     `json:"punctuality"`
	Relationship int     `json:"relationship"`
	Initiative   int     `json:"initiative"`
	Leadership   *int    `json:"leadership,omitempty"`
	Strengths    *string `json:"strengths,omitempty"`
	Improvements *string `json:"improvements,omitempty"`
	ActionPlan   *string `json:"action_plan,omitempty"`
}

func (r *CreateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	start, okStart := validator.IsValidDate(r.PeriodStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be YYYY-MM-DD"})
	}
	end, okEnd := validator.IsValidDate(r.PeriodEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be YYYY-MM-DD"})
	}
	if okStart && okEnd && start.After(end) {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must not be after period_end"})
	}

	scores := []struct {
		field string
		value int
	}{
		{"quality", r.Quality},
		{"productivity", r.Productivity},
		{"punctuality", r.Punctuality},
		{"relationship", r.Relationship},
		{"initiative", r.Initiative},
	}
	if r.Leadership != nil {
		scores = append(scores, struct {
			field string
			value int
		}{"leadership", *r.Leadership})
	}
	for _, s := range scores {
		if s.value < MinScore || s.value > MaxScore {
			errs = append(errs, validator.ValidationError{Field: s.field, Message: fmt.Sprintf("must be between %d and %d", MinScore, MaxScore)})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ToReview builds a pending review; call Validate first.
func (r *CreateReviewRequest) ToReview(companyID string, reviewerID *string) Review {
	start, _ := validator.IsValidDate(r.PeriodStart)
	end, _ := validator.IsValidDate(r.PeriodEnd)
	scores := Scores{
		Quality:      r.Quality,
		Productivity: r.Productivity,
		Punctuality:  r.Punctuality,
		Relationship: r.Relationship,
		Initiative:   r.Initiative,
		Leadership:   r.Leadership,
	}
	return Review{
		CompanyID:    companyID,
		EmployeeID:   r.EmployeeID,
		ReviewerID:   reviewerID,
		PeriodStart:  start,
		PeriodEnd:    end,
		Scores:       scores,
		FinalScore:   scores.FinalScore(),
		Strengths:    r.Strengths,
		Improvements: r.Improvements,
		ActionPlan:   r.ActionPlan,
		Status:       ReviewStatusPending,
	}
}

type ReviewResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName *string         `json:"employee_name,omitempty"`
	ReviewerID   *string         `json:"reviewer_id,omitempty"`
	PeriodStart  string          `json:"period_start"`
	PeriodEnd    string          `json:"period_end"`
	Quality      int             `json:"quality"`
	Productivity int             `json:"productivity"`
	Punctuality  int             `json:"punctuality"`
	Relationship int             `json:"relationship"`
	Initiative   int             `json:"initiative"`
	Leadership   *int            `json:"leadership,omitempty"`
	FinalScore   decimal.Decimal `json:"final_score"`
	Strengths    *string         `json:"strengths,omitempty"`
	Improvements *string         `json:"improvements,omitempty"`
	ActionPlan   *string         `json:"action_plan,omitempty"`
	Status       ReviewStatus    `json:"status"`
	FinalizedAt  *string         `json:"finalized_at,omitempty"`
}

func ToResponse(r Review) ReviewResponse {
	resp := ReviewResponse{
		ID:           r.ID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		ReviewerID:   r.ReviewerID,
		PeriodStart:  r.PeriodStart.Format("2006-01-02"),
		PeriodEnd:    r.PeriodEnd.Format("2006-01-02"),
		Quality:      r.Scores.Quality,
		Productivity: r.Scores.Productivity,
		Punctuality:  r.Scores.Punctuality,
		Relationship: r.Scores.Relationship,
		Initiative:   r.Scores.Initiative,
		Leadership:   r.Scores.Leadership,
		FinalScore:   r.FinalScore,
		Strengths:    r.Strengths,
		Improvements: r.Improvements,
		ActionPlan:   r.ActionPlan,
		Status:       r.Status,
	}
	if r.FinalizedAt != nil {
		s := r.FinalizedAt.Format(time.RFC3339)
		resp.FinalizedAt = &s
	}
	return resp
}
