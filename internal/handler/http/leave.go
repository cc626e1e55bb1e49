package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/medusa-holding/medusa/internal/domain/leave"
	"github.com/medusa-holding/medusa/internal/domain/user"
	"github.com/medusa-holding/medusa/internal/handler/http/response"
)

type LeaveHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	MarkTaken(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

type leaveTransition func(ctx context.Context, companyID string, id string, decidedBy *string) (leave.LeaveRequestResponse, error)

func (h *leaveHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	var req leave.CreateLeaveRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = ownEmployeeID(principal, req.EmployeeID)
	if !actFor(w, principal, req.EmployeeID) {
		return
	}

	result, err := h.leaveService.CreateLeaveRequest(r.Context(), principal.CompanyID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", result)
}

// List returns leave requests; callers without company-wide visibility only
// see their own.
func (h *leaveHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	filter := leave.LeaveRequestFilter{
		EmployeeID: queryString(r, "employee_id"),
		Page:       queryInt(r, "page", 1),
		Limit:      queryInt(r, "limit", 20),
	}
	if status := r.URL.Query().Get("status"); status != "" {
		s := leave.LeaveRequestStatus(status)
		filter.Status = &s
	}
	if !user.HasPermission(principal.Role, user.PermissionLeaveViewAll) {
		if principal.EmployeeID == nil {
			response.HandleError(w, user.ErrNotOwnRecord)
			return
		}
		filter.EmployeeID = principal.EmployeeID
	}

	result, err := h.leaveService.ListLeaveRequests(r.Context(), principal.CompanyID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *leaveHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	result, err := h.leaveService.GetLeaveRequest(r.Context(), principal.CompanyID, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !actFor(w, principal, result.EmployeeID) {
		return
	}

	response.Success(w, result)
}

func (h *leaveHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.leaveService.ApproveLeaveRequest, "Leave request approved")
}

func (h *leaveHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.leaveService.RejectLeaveRequest, "Leave request rejected")
}

func (h *leaveHandlerImpl) MarkTaken(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.leaveService.MarkLeaveTaken, "Leave marked as taken")
}

// Cancel lets employees withdraw their own requests; managers may cancel any.
func (h *leaveHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	existing, err := h.leaveService.GetLeaveRequest(r.Context(), principal.CompanyID, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !actFor(w, principal, existing.EmployeeID) {
		return
	}

	result, err := h.leaveService.CancelLeaveRequest(r.Context(), principal.CompanyID, id, &principal.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request cancelled", result)
}

func (h *leaveHandlerImpl) transition(w http.ResponseWriter, r *http.Request, apply leaveTransition, message string) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	result, err := apply(r.Context(), principal.CompanyID, chi.URLParam(r, "id"), &principal.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, result)
}
