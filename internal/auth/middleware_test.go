package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"evrental/internal/model"
)

const testSecret = "middleware-test-secret"

func newTestServer(t *testing.T, roles []model.Role) *echo.Echo {
	t.Helper()
	e := echo.New()
	group := e.Group("", Middleware(testSecret))
	group.GET("/protected", func(c echo.Context) error {
		claims, err := ClaimsFromContext(c)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, map[string]string{"email": claims.Email})
	}, RequireRoles(roles...))
	return e
}

func issueToken(t *testing.T, role model.Role) string {
	t.Helper()
	service := NewTokenService(testSecret)
	token, err := service.Issue(&model.Account{
		ID:    uuid.New(),
		Email: "caller@example.com",
		Role:  role,
	}, nil, nil)
	assert.NoError(t, err)
	return token
}

func TestMiddleware_RoleGate(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		e := newTestServer(t, AdminOnly)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed token", func(t *testing.T) {
		e := newTestServer(t, AdminOnly)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer garbage")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("renter blocked from admin route", func(t *testing.T) {
		e := newTestServer(t, AdminOnly)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+issueToken(t, model.RoleRenter))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin allowed on staff route", func(t *testing.T) {
		e := newTestServer(t, StaffOrAdmin)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+issueToken(t, model.RoleAdmin))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("staff allowed on staff route", func(t *testing.T) {
		e := newTestServer(t, StaffOrAdmin)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+issueToken(t, model.RoleStaff))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("empty role set admits any authenticated caller", func(t *testing.T) {
		e := newTestServer(t, AnyAuthenticated)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+issueToken(t, model.RoleRenter))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("empty role set still requires a token", func(t *testing.T) {
		e := newTestServer(t, AnyAuthenticated)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
