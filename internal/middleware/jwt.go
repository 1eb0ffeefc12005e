package middleware // reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Bannawat01/Chong-toa/internal/utils"
)

// JWTAuth returns an Echo middleware that gates protected routes on a
// Bearer session token. The provided secret must match the one used
// when issuing tokens. A missing or non-Bearer Authorization header is
// access denied (403); a present but malformed, badly signed or
// expired token is 401. On success the token's user ID is stored in
// the context under "user_id" for handlers to read.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "access denied"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			userID, err := utils.ParseSessionToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			c.Set("user_id", userID)
			return next(c)
		}
	}
}
