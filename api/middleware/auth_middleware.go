package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/echosphere/echosphere-backend/domain"
	"github.com/echosphere/echosphere-backend/internal/tokenutil"
)

// LoggedIn verifies the bearer token minted by the identity provider
// and stashes the caller's identity in the request context.
func LoggedIn(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, domain.ErrorResponse{Message: "unauthorized - you must be logged in"})
			return
		}

		identity, err := tokenutil.ExtractIdentity(parts[1], secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, domain.ErrorResponse{Message: "unauthorized - you must be logged in"})
			return
		}

		c.Set("x-user-id", identity.UserID)
		c.Set("x-user-email", identity.Email)
		c.Set("x-user-name", identity.FullName)
		c.Set("x-user-image", identity.ImageURL)
		c.Next()
	}
}

// RequireAdmin gates a route on the caller's profile email matching
// the configured administrator. Runs after LoggedIn.
func RequireAdmin(adminEmail string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString("x-user-email")
		if adminEmail == "" || email != adminEmail {
			c.AbortWithStatusJSON(http.StatusForbidden, domain.ErrorResponse{Message: "access denied - you must be an administrator"})
			return
		}
		c.Next()
	}
}
