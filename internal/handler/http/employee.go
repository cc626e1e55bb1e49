package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/medusa-holding/medusa/internal/domain/employee"
	"github.com/medusa-holding/medusa/internal/domain/shift"
	"github.com/medusa-holding/medusa/internal/handler/http/response"
)

type EmployeeHandler interface {
	GetEmployee(w http.ResponseWriter, r *http.Request)
	AssignShift(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
	shiftService    shift.ShiftService
}

func NewEmployeeHandler(employeeService employee.EmployeeService, shiftService shift.ShiftService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
		shiftService:    shiftService,
	}
}

// GetEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	if !actFor(w, principal, id) {
		return
	}

	result, err := h.employeeService.GetEmployee(r.Context(), principal.CompanyID, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AssignShift implements EmployeeHandler. A null shift_id clears the assignment.
func (h *employeeHandlerImpl) AssignShift(w http.ResponseWriter, r *http.Request) {
	principal, ok := principalFrom(w, r)
	if !ok {
		return
	}

	var req shift.AssignShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	if err := h.shiftService.AssignShift(r.Context(), principal.CompanyID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift assigned successfully", nil)
}
