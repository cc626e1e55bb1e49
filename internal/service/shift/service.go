package shift

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/medusa-holding/medusa/internal/domain/employee"
	"github.com/medusa-holding/medusa/internal/domain/shift"
)

type ShiftServiceImpl struct {
	shiftRepo    shift.ShiftRepository
	employeeRepo employee.EmployeeRepository
}

func NewShiftService(shiftRepo shift.ShiftRepository, employeeRepo employee.EmployeeRepository) shift.ShiftService {
	return &ShiftServiceImpl{
		shiftRepo:    shiftRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *ShiftServiceImpl) CreateShift(ctx context.Context, companyID string, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	created, err := s.shiftRepo.Create(ctx, shift.Shift{
		CompanyID:       companyID,
		Name:            req.Name,
		Type:            req.Type,
		DailyHours:      req.DailyHours,
		WeeklyHours:     req.WeeklyHours,
		WorkdaysPerWeek: req.WorkdaysPerWeek,
		Description:     req.Description,
		IsActive:        true,
	})
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	if !created.WeeklyHoursConsistent() {
		slog.Warn("Shift weekly hours differ from daily hours times workdays",
			"shift_id", created.ID,
			"daily_hours", created.DailyHours.String(),
			"weekly_hours", created.WeeklyHours.String(),
			"workdays_per_week", created.WorkdaysPerWeek)
	}

	return shift.ToResponse(created), nil
}

func (s *ShiftServiceImpl) GetShift(ctx context.Context, companyID string, id string) (shift.ShiftResponse, error) {
	found, err := s.shiftRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return shift.ToResponse(found), nil
}

func (s *ShiftServiceImpl) ListShifts(ctx context.Context, companyID string, activeOnly bool) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.List(ctx, companyID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, shift.ToResponse(sh))
	}
	return responses, nil
}

func (s *ShiftServiceImpl) UpdateShift(ctx context.Context, companyID string, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	current, err := s.shiftRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Type != nil {
		current.Type = *req.Type
	}
	if req.DailyHours != nil {
		current.DailyHours = *req.DailyHours
	}
	if req.WeeklyHours != nil {
		current.WeeklyHours = *req.WeeklyHours
	}
	if req.WorkdaysPerWeek != nil {
		current.WorkdaysPerWeek = *req.WorkdaysPerWeek
	}
	if req.Description != nil {
		current.Description = req.Description
	}
	if req.IsActive != nil {
		current.IsActive = *req.IsActive
	}

	if err := s.shiftRepo.Update(ctx, current); err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to update shift: %w", err)
	}

	return shift.ToResponse(current), nil
}

func (s *ShiftServiceImpl) DeleteShift(ctx context.Context, companyID string, id string) error {
	if _, err := s.shiftRepo.GetByID(ctx, id, companyID); err != nil {
		return err
	}
	return s.shiftRepo.Delete(ctx, id, companyID)
}

func (s *ShiftServiceImpl) AssignShift(ctx context.Context, companyID string, req shift.AssignShiftRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return err
	}
	if req.ShiftID != nil {
		if _, err := s.shiftRepo.GetByID(ctx, *req.ShiftID, companyID); err != nil {
			return err
		}
	}

	return s.employeeRepo.UpdateShift(ctx, req.EmployeeID, req.ShiftID, companyID)
}
