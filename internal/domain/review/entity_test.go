package review

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScores_FinalScore(t *testing.T) {
	s := Scores{Quality: 5, Productivity: 4, Punctuality: 3, Relationship: 4, Initiative: 4}
	assert.True(t, s.FinalScore().Equal(decimal.NewFromInt(4)))

	leadership := 2
	s.Leadership = &leadership
	// 22 / 6
	assert.True(t, s.FinalScore().Equal(decimal.RequireFromString("3.67")), "got %s", s.FinalScore())
}

func TestCreateReviewRequest_Validate(t *testing.T) {
	req := CreateReviewRequest{
		EmployeeID:   "emp-1",
		PeriodStart:  "2024-01-01",
		PeriodEnd:    "2024-06-30",
		Quality:      5,
		Productivity: 4,
		Punctuality:  3,
		Relationship: 4,
		Initiative:   4,
	}
	require.NoError(t, req.Validate())

	review := req.ToReview("company-1", nil)
	assert.Equal(t, ReviewStatusPending, review.Status)
	assert.True(t, review.FinalScore.Equal(decimal.NewFromInt(4)))

	leadership := 6
	req.Leadership = &leadership
	req.Quality = 0
	req.PeriodEnd = "2023-12-31"
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "leadership")
	assert.Contains(t, err.Error(), "quality")
	assert.Contains(t, err.Error(), "period_start")
}
