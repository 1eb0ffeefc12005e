package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/Bannawat01/Chong-toa/internal/utils"
)

func runGate(t *testing.T, authHeader string) (*httptest.ResponseRecorder, bool, interface{}) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/reservations", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	var uid interface{}
	h := JWTAuth("secret")(func(c echo.Context) error {
		reached = true
		uid = c.Get("user_id")
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, h(c))
	return rec, reached, uid
}

func TestJWTAuthMissingHeader(t *testing.T) {
	rec, reached, _ := runGate(t, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
}

func TestJWTAuthNonBearerScheme(t *testing.T) {
	rec, reached, _ := runGate(t, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, reached)
}

func TestJWTAuthInvalidToken(t *testing.T) {
	rec, reached, _ := runGate(t, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	tok, err := utils.NewSessionToken("secret", 7, -1)
	assert.NoError(t, err)
	rec, reached, _ := runGate(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestJWTAuthValidToken(t *testing.T) {
	tok, err := utils.NewSessionToken("secret", 7, 60)
	assert.NoError(t, err)
	rec, reached, uid := runGate(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
	assert.Equal(t, uint64(7), uid)
}
