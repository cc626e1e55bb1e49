package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/medusa-holding/medusa/internal/domain/auth"
	"github.com/medusa-holding/medusa/internal/domain/user"
)

const tokenTypeAccess = "access"

type Service interface {
	GenerateAccessToken(principal user.Principal) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpiration time.Duration
	tokenAuth             *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// NewJWTService verifies HS256 tokens signed with secretKey. Tokens are issued by the
// identity service; GenerateAccessToken exists for tooling and tests.
func NewJWTService(secretKey string, accessTokenExpiration time.Duration) Service {
	return &JWTService{
		accessTokenExpiration: accessTokenExpiration,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(principal user.Principal) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(j.accessTokenExpiration).Unix()

	claims := map[string]interface{}{
		"user_id":     principal.UserID,
		"employee_id": returnValueOrNil(principal.EmployeeID),
		"company_id":  principal.CompanyID,
		"role":        string(principal.Role),
		"type":        tokenTypeAccess,
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// PrincipalFromContext reads the verified access token placed in ctx by jwtauth.Verifier.
func PrincipalFromContext(ctx context.Context) (user.Principal, error) {
	token, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		if errors.Is(err, jwtauth.ErrExpired) {
			return user.Principal{}, auth.ErrTokenExpired
		}
		return user.Principal{}, auth.ErrInvalidToken
	}
	if token == nil {
		return user.Principal{}, auth.ErrInvalidToken
	}

	if tokenType, ok := claims["type"].(string); !ok || tokenType != tokenTypeAccess {
		return user.Principal{}, auth.ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return user.Principal{}, auth.ErrInvalidToken
	}

	companyID, _ := claims["company_id"].(string)
	if companyID == "" {
		return user.Principal{}, user.ErrCompanyIDRequired
	}

	role, _ := claims["role"].(string)
	principal := user.Principal{
		UserID:    userID,
		CompanyID: companyID,
		Role:      user.Role(role),
	}
	if !principal.Role.IsValid() {
		return user.Principal{}, user.ErrInsufficientPermissions
	}
	if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
		principal.EmployeeID = &employeeID
	}

	return principal, nil
}

func returnValueOrNil(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
