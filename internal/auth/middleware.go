package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apierrors "evrental/internal/errors"
	"evrental/internal/model"
)

// Role sets consulted by the route table. Checks are plain membership;
// Admin satisfies a Staff route only because the set lists it.
var (
	AdminOnly        = []model.Role{model.RoleAdmin}
	RenterOnly       = []model.Role{model.RoleRenter}
	StaffOrAdmin     = []model.Role{model.RoleStaff, model.RoleAdmin}
	AnyAuthenticated = []model.Role{}
)

// Middleware verifies the bearer token on a request and stores the decoded
// claims in the echo context. Missing header, malformed token, bad signature
// and expiry all collapse into one 401.
func Middleware(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(secret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apierrors.ErrorResponse{
				Message: "unauthenticated",
				Code:    "UNAUTHENTICATED",
			})
		},
	})
}

// RequireRoles gates a handler on the caller's role. An empty set admits any
// authenticated caller.
func RequireRoles(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := ClaimsFromContext(c)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, apierrors.ErrorResponse{
					Message: "unauthenticated",
					Code:    "UNAUTHENTICATED",
				})
			}
			if len(roles) == 0 {
				return next(c)
			}
			for _, role := range roles {
				if claims.Role == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, apierrors.ErrorResponse{
				Message: "access denied",
				Code:    "FORBIDDEN",
			})
		}
	}
}

// ClaimsFromContext returns the decoded claims the middleware attached.
func ClaimsFromContext(c echo.Context) (*Claims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok || token == nil {
		return nil, echo.ErrUnauthorized
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, echo.ErrUnauthorized
	}
	return claims, nil
}
