package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/medusa-holding/medusa/internal/domain/user"
	"github.com/stretchr/testify/assert"
)

func limitedHandler(t *testing.T, wrap ...func(http.Handler) http.Handler) http.Handler {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	var h http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h = RateLimit(ctx, 0.001, 1)(h)
	for _, mw := range wrap {
		h = mw(h)
	}
	return h
}

func anonymousRequest(remoteAddr, forwardedFor string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/attendances/check-in", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	return req
}

func TestRateLimit_IgnoresForwardedForByDefault(t *testing.T) {
	h := limitedHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, anonymousRequest("203.0.113.7:5000", "10.0.0.1"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, anonymousRequest("203.0.113.7:5001", "10.0.0.2"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code, "rotating the header must not open a new bucket")
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, anonymousRequest("198.51.100.9:5000", ""))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_BehindTrustedProxy(t *testing.T) {
	h := limitedHandler(t, chiMiddleware.RealIP)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, anonymousRequest("10.0.0.254:443", "203.0.113.7"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, anonymousRequest("10.0.0.254:443", "198.51.100.9"))
	assert.Equal(t, http.StatusOK, rec.Code, "distinct clients behind the proxy keep separate buckets")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, anonymousRequest("10.0.0.254:443", "203.0.113.7"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimit_KeysOnUser(t *testing.T) {
	h := limitedHandler(t)
	withUser := func(id string) *http.Request {
		req := anonymousRequest("203.0.113.7:5000", "")
		return req.WithContext(WithPrincipal(req.Context(), user.Principal{UserID: id, CompanyID: "company-1"}))
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, withUser("user-1"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, withUser("user-2"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, withUser("user-1"))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
