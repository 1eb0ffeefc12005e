// Package handler implements the HTTP request gateway: binding,
// validation, the auth gate contract, and translation of domain errors
// into status codes. Business rules live in repository and service.
package handler

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"
)

// getUserID extracts the authenticated user's ID placed in the context
// by the JWT middleware. Handlers behind the auth gate call this to
// assert a caller identity exists.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}
