package review

import "context"

type ReviewService interface {
	CreateReview(ctx context.Context, companyID string, reviewerID *string, req CreateReviewRequest) (ReviewResponse, error)
	GetReview(ctx context.Context, companyID string, id string) (ReviewResponse, error)
	ListEmployeeReviews(ctx context.Context, companyID string, employeeID string) ([]ReviewResponse, error)
	FinalizeReview(ctx context.Context, companyID string, id string) (ReviewResponse, error)
}
