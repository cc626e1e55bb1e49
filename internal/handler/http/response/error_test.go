package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/medusa-holding/medusa/internal/domain/attendance"
	"github.com/medusa-holding/medusa/internal/domain/auth"
	"github.com/medusa-holding/medusa/internal/domain/leave"
	"github.com/medusa-holding/medusa/internal/domain/payroll"
	"github.com/medusa-holding/medusa/internal/domain/shift"
	"github.com/medusa-holding/medusa/internal/domain/user"
	"github.com/medusa-holding/medusa/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"validation", validator.ValidationErrors{{Field: "name", Message: "is required"}}, http.StatusUnprocessableEntity},
		{"expired token", auth.ErrTokenExpired, http.StatusUnauthorized},
		{"not own record", user.ErrNotOwnRecord, http.StatusForbidden},
		{"wrapped not found", fmt.Errorf("failed to get shift: %w", shift.ErrShiftNotFound), http.StatusNotFound},
		{"already checked in", attendance.ErrAlreadyCheckedIn, http.StatusConflict},
		{"not checked in", attendance.ErrNotCheckedIn, http.StatusBadRequest},
		{"leave processed", leave.ErrLeaveRequestAlreadyProcessed, http.StatusConflict},
		{"unknown regime", payroll.ErrUnknownTaxRegime, http.StatusBadRequest},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			HandleError(w, tt.err)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var body Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
		})
	}
}

func TestHandleError_ValidationDetails(t *testing.T) {
	w := httptest.NewRecorder()
	HandleError(w, validator.ValidationErrors{{Field: "period_month", Message: "must be between 1 and 12"}})

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Equal(t, "must be between 1 and 12", body.Error.Details["period_month"])
}

func TestInternalServerError_HidesCause(t *testing.T) {
	w := httptest.NewRecorder()
	HandleError(w, fmt.Errorf("pq: connection refused"))

	assert.NotContains(t, w.Body.String(), "connection refused")
}
