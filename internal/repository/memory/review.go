package memory

import (
	"context"
	"sort"
	"time"

	"github.com/medusa-holding/medusa/internal/domain/review"
)

type ReviewRepository struct {
	store
	reviews   map[string]review.Review
	employees *EmployeeRepository
}

func NewReviewRepository(employees *EmployeeRepository) *ReviewRepository {
	return &ReviewRepository{reviews: make(map[string]review.Review), employees: employees}
}

func (r *ReviewRepository) Create(ctx context.Context, rv review.Review) (review.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rv.ID = newID()
	rv.CreatedAt = time.Now()
	rv.UpdatedAt = rv.CreatedAt
	r.reviews[rv.ID] = rv
	return rv, nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string, companyID string) (review.Review, error) {
	r.mu.RLock()
	rv, ok := r.reviews[id]
	r.mu.RUnlock()
	if !ok || rv.CompanyID != companyID {
		return review.Review{}, review.ErrReviewNotFound
	}
	if r.employees != nil {
		rv.EmployeeName = r.employees.name(rv.EmployeeID)
	}
	return rv, nil
}

func (r *ReviewRepository) ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]review.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []review.Review
	for _, rv := range r.reviews {
		if rv.CompanyID == companyID && rv.EmployeeID == employeeID {
			result = append(result, rv)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].PeriodEnd.After(result[j].PeriodEnd) })
	return result, nil
}

func (r *ReviewRepository) Update(ctx context.Context, rv review.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.reviews[rv.ID]
	if !ok || existing.CompanyID != rv.CompanyID {
		return review.ErrReviewNotFound
	}
	rv.CreatedAt = existing.CreatedAt
	rv.UpdatedAt = time.Now()
	r.reviews[rv.ID] = rv
	return nil
}
