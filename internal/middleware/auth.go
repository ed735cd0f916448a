package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"ecomm/internal/models"
	"ecomm/internal/token"
)

// RequireToken reads the Authorization header, verifies the bearer token and
// resolves it to an existing user before letting the request through. The
// header value is split on spaces and the second field taken as-is; anything
// that does not verify is rejected the same way.
func RequireToken(svc *token.Service, db *gorm.DB) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.String(http.StatusForbidden, "A token is required for authentication")
			}

			var raw string
			if parts := strings.Split(header, " "); len(parts) > 1 {
				raw = parts[1]
			}

			userID, err := svc.Parse(raw)
			if err != nil {
				return c.String(http.StatusUnauthorized, "Invalid Token")
			}

			var user models.User
			if err := db.First(&user, userID).Error; err != nil {
				return c.String(http.StatusUnauthorized, "Invalid Token")
			}

			c.Set("userID", user.ID)
			return next(c)
		}
	}
}

// UserID returns the identity attached by RequireToken.
func UserID(c echo.Context) (uint, bool) {
	id, ok := c.Get("userID").(uint)
	return id, ok
}
