//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bonus-crm/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	userID uuid.UUID
	role   string
	err    error
}

func (v *stubValidator) ValidateToken(string) (uuid.UUID, string, error) {
	if v.err != nil {
		return uuid.Nil, "", v.err
	}
	return v.userID, v.role, nil
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	adminID := uuid.New()

	newRouter := func(v *stubValidator) *gin.Engine {
		router := gin.New()
		router.GET("/protected", middleware.NewAuthMiddleware(v).RequireAuth(), func(c *gin.Context) {
			id, ok := middleware.GetUserID(c)
			require.True(t, ok)
			role, ok := middleware.GetUserRole(c)
			require.True(t, ok)
			c.JSON(http.StatusOK, gin.H{"id": id.String(), "role": role})
		})
		return router
	}

	t.Run("bearer token passes and exposes the identity", func(t *testing.T) {
		router := newRouter(&stubValidator{userID: adminID, role: "admin"})
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), adminID.String())
		assert.Contains(t, rec.Body.String(), "admin")
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		router := newRouter(&stubValidator{userID: adminID, role: "admin"})
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		router := newRouter(&stubValidator{err: errors.New("expired")})
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-bearer scheme is rejected", func(t *testing.T) {
		router := newRouter(&stubValidator{userID: adminID, role: "admin"})
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
