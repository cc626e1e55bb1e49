package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/medusa-holding/medusa/internal/domain/review"
	"github.com/medusa-holding/medusa/internal/handler/http/response"
)

type ReviewHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Finalize(w http.ResponseWriter, r *http.Request)
}

type reviewHandlerImpl struct {
	reviewService review.ReviewService
}

func NewReviewHandler(reviewService review.ReviewService) ReviewHandler {
	return &reviewHandlerImpl{
		reviewService: reviewService,
	}
}

func (h *reviewHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	var req review.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.reviewService.CreateReview(r.Context(), principal.CompanyID, &principal.UserID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Performance review created", result)
}

// List returns the reviews of ?employee_id, defaulting to the caller.
func (h *reviewHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	employeeID := ownEmployeeID(principal, r.URL.Query().Get("employee_id"))
	if employeeID == "" {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}
	if !actFor(w, principal, employeeID) {
		return
	}

	result, err := h.reviewService.ListEmployeeReviews(r.Context(), principal.CompanyID, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reviewHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	result, err := h.reviewService.GetReview(r.Context(), principal.CompanyID, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !actFor(w, principal, result.EmployeeID) {
		return
	}

	response.Success(w, result)
}

func (h *reviewHandlerImpl) Finalize(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	result, err := h.reviewService.FinalizeReview(r.Context(), principal.CompanyID, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Performance review finalized", result)
}
