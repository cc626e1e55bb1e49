package review

import (
	"context"
	"fmt"
	"time"

	"github.com/medusa-holding/medusa/internal/domain/employee"
	"github.com/medusa-holding/medusa/internal/domain/review"
)

type ReviewServiceImpl struct {
	reviewRepo   review.ReviewRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewReviewService(reviewRepo review.ReviewRepository, employeeRepo employee.EmployeeRepository) review.ReviewService {
	return &ReviewServiceImpl{
		reviewRepo:   reviewRepo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

func (s *ReviewServiceImpl) CreateReview(ctx context.Context, companyID string, reviewerID *string, req review.CreateReviewRequest) (review.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return review.ReviewResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return review.ReviewResponse{}, err
	}

	created, err := s.reviewRepo.Create(ctx, req.ToReview(companyID, reviewerID))
	if err != nil {
		return review.ReviewResponse{}, fmt.Errorf("failed to create review: %w", err)
	}

	created.EmployeeName = &emp.FullName
	return review.ToResponse(created), nil
}

func (s *ReviewServiceImpl) GetReview(ctx context.Context, companyID string, id string) (review.ReviewResponse, error) {
	found, err := s.reviewRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return review.ReviewResponse{}, err
	}
	return review.ToResponse(found), nil
}

func (s *ReviewServiceImpl) ListEmployeeReviews(ctx context.Context, companyID string, employeeID string) ([]review.ReviewResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByEmployee(ctx, emp.ID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	responses := make([]review.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		r.EmployeeName = &emp.FullName
		responses = append(responses, review.ToResponse(r))
	}
	return responses, nil
}

func (s *ReviewServiceImpl) FinalizeReview(ctx context.Context, companyID string, id string) (review.ReviewResponse, error) {
	found, err := s.reviewRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return review.ReviewResponse{}, err
	}
	if found.Status == review.ReviewStatusFinalized {
		return review.ReviewResponse{}, review.ErrReviewAlreadyFinalized
	}

	now := s.now()
	found.Status = review.ReviewStatusFinalized
	found.FinalizedAt = &now
	found.FinalScore = found.Scores.FinalScore()

	if err := s.reviewRepo.Update(ctx, found); err != nil {
		return review.ReviewResponse{}, fmt.Errorf("failed to finalize review: %w", err)
	}
	return review.ToResponse(found), nil
}
