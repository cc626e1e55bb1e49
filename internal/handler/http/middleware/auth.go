package middleware

import (
	"context"
	"net/http"

	"github.com/medusa-holding/medusa/internal/domain/auth"
	"github.com/medusa-holding/medusa/internal/domain/user"
	"github.com/medusa-holding/medusa/internal/handler/http/response"
	"github.com/medusa-holding/medusa/internal/pkg/jwt"
)

type principalKey struct{}

// AuthRequired rejects requests without a valid access token and stores the
// caller's principal in the request context.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := jwt.PrincipalFromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}

		ctx := WithPrincipal(r.Context(), principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func WithPrincipal(ctx context.Context, principal user.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// PrincipalFrom returns the principal stored by AuthRequired.
func PrincipalFrom(ctx context.Context) (user.Principal, error) {
	principal, ok := ctx.Value(principalKey{}).(user.Principal)
	if !ok {
		return user.Principal{}, auth.ErrInvalidToken
	}
	return principal, nil
}
