package http

import (
	"net/http"
	"strconv"

	"github.com/medusa-holding/medusa/internal/domain/user"
	"github.com/medusa-holding/medusa/internal/handler/http/middleware"
	"github.com/medusa-holding/medusa/internal/handler/http/response"
)

// principalFrom writes an error response and returns false when the request
// carries no authenticated principal.
func principalFrom(w http.ResponseWriter, r *http.Request) (user.Principal, bool) {
	principal, err := middleware.PrincipalFrom(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return user.Principal{}, false
	}
	return principal, true
}

// actFor rejects requests that touch another employee's records unless the
// caller is a manager.
func actFor(w http.ResponseWriter, principal user.Principal, employeeID string) bool {
	if !principal.CanActFor(employeeID) {
		response.HandleError(w, user.ErrNotOwnRecord)
		return false
	}
	return true
}

// ownEmployeeID fills an empty employee ID with the caller's own.
func ownEmployeeID(principal user.Principal, employeeID string) string {
	if employeeID == "" && principal.EmployeeID != nil {
		return *principal.EmployeeID
	}
	return employeeID
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func queryString(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}
