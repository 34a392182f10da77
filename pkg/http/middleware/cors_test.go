package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newCORSServer(origins ...string) *echo.Echo {
	e := echo.New()
	e.Use(CORS(CORSConfig{
		PathPrefix:   "/api/",
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAccept},
		MaxAge:       time.Hour,
	}))
	ok := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	e.GET("/", ok)
	e.GET("/api/quote", ok)
	e.OPTIONS("/api/quote", ok)
	return e
}

func serve(e *echo.Echo, method, path, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if origin != "" {
		req.Header.Set(echo.HeaderOrigin, origin)
	}
	if method == http.MethodOptions {
		req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCORSAllowedOrigin(t *testing.T) {
	e := newCORSServer("https://app.example.com")

	rec := serve(e, http.MethodGet, "/api/quote", "https://app.example.com")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "https://app.example.com", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))

	rec = serve(e, http.MethodGet, "/api/quote", "https://evil.example.com")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestCORSPreflight(t *testing.T) {
	e := newCORSServer("*")

	rec := serve(e, http.MethodOptions, "/api/quote", "https://any.example.com")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	require.Equal(t, "GET, OPTIONS", rec.Header().Get(echo.HeaderAccessControlAllowMethods))
	require.Equal(t, "3600", rec.Header().Get(echo.HeaderAccessControlMaxAge))
}

func TestCORSIgnoresPage(t *testing.T) {
	e := newCORSServer("*")

	rec := serve(e, http.MethodGet, "/", "https://any.example.com")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
