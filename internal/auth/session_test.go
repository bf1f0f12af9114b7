package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCookieContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCookieStore_Write(t *testing.T) {
	c, rec := newCookieContext(t)

	NewCookieStore(false).Write(c, "token-value")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, "token-value", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 604800, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestCookieStore_Write_SecureInProduction(t *testing.T) {
	c, rec := newCookieContext(t)

	NewCookieStore(true).Write(c, "token-value")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
}

func TestCookieStore_Read(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "stored-token"})
	c := e.NewContext(req, httptest.NewRecorder())

	token, ok := NewCookieStore(false).Read(c)
	assert.True(t, ok)
	assert.Equal(t, "stored-token", token)
}

func TestCookieStore_Read_Absent(t *testing.T) {
	c, _ := newCookieContext(t)

	token, ok := NewCookieStore(false).Read(c)
	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestCookieStore_Clear(t *testing.T) {
	c, rec := newCookieContext(t)

	NewCookieStore(false).Clear(c)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}
