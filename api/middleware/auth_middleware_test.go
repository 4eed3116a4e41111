package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/echosphere/echosphere-backend/internal/tokenutil"
)

const testSecret = "test-secret"

func mintToken(t *testing.T, email string) string {
	t.Helper()
	token, err := tokenutil.CreateToken(&tokenutil.Identity{
		UserID:   "user_123",
		Email:    email,
		FullName: "Ada Lovelace",
		ImageURL: "https://cdn.test/ada.png",
	}, testSecret)
	require.NoError(t, err)
	return token
}

func TestLoggedIn(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newEngine := func() *gin.Engine {
		engine := gin.New()
		engine.GET("/protected", LoggedIn(testSecret), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"id":    c.GetString("x-user-id"),
				"email": c.GetString("x-user-email"),
			})
		})
		return engine
	}

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)

		newEngine().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc")

		newEngine().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")

		newEngine().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := tokenutil.CreateToken(&tokenutil.Identity{UserID: "user_123"}, "other-secret")
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		newEngine().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token passes identity through", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, "ada@example.com"))

		newEngine().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"id":"user_123","email":"ada@example.com"}`, rec.Body.String())
	})
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	const adminEmail = "admin@example.com"

	newEngine := func(configured string) *gin.Engine {
		engine := gin.New()
		engine.GET("/admin", LoggedIn(testSecret), RequireAdmin(configured), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return engine
	}

	t.Run("admin email passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, adminEmail))

		newEngine(adminEmail).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("other email is forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, "ada@example.com"))

		newEngine(adminEmail).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unset admin email denies everyone", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, ""))

		newEngine("").ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
