package review

import (
	"time"

	"github.com/medusa-holding/medusa/internal/pkg/money"
	"github.com/shopspring/decimal"
)

type ReviewStatus string

const (
	ReviewStatusPending    ReviewStatus = "pending"
	ReviewStatusInProgress ReviewStatus = "in_progress"
	ReviewStatusFinalized  ReviewStatus = "finalized"
)

const (
	MinScore = 1
	MaxScore = 5
)

// Scores are the criteria of a review, each from 1 to 5.
type Scores struct {
	Quality      int
	Productivity int
	Punctuality  int
	Relationship int
	Initiative   int
	Leadership   *int // optional
}

func (s Scores) values() []int {
	v := []int{s.Quality, s.Productivity, s.Punctuality, s.Relationship, s.Initiative}
	if s.Leadership != nil {
		v = append(v, *s.Leadership)
	}
	return v
}

// FinalScore is the mean of the scored criteria, rounded to two places.
func (s Scores) FinalScore() decimal.Decimal {
	values := s.values()
	total := 0
	for _, v := range values {
		total += v
	}
	return money.Round(decimal.NewFromInt(int64(total)).Div(decimal.NewFromInt(int64(len(values)))))
}

type Review struct {
	ID          string
	CompanyID   string
	EmployeeID  string
	ReviewerID  *string
	PeriodStart time.Time
	PeriodEnd   time.Time

	Scores     Scores
	FinalScore decimal.Decimal

	Strengths    *string
	Improvements *string
	ActionPlan   *string

	Status      ReviewStatus
	FinalizedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relationships (for responses)
	EmployeeName *string
}
