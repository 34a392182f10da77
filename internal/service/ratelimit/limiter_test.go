package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestLimiterRefills(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	l := New(2, 1)
	l.now = func() time.Time { return now }

	require.True(t, l.Allow("a"))
	require.True(t, l.Allow("a"))
	require.False(t, l.Allow("a"))
	require.True(t, l.Allow("b"), "buckets are per key")

	now = now.Add(time.Second)
	require.True(t, l.Allow("a"))
	require.False(t, l.Allow("a"))
}

func TestLimiterPrune(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	l := New(2, 1)
	l.now = func() time.Time { return now }

	l.Allow("a")
	require.Equal(t, 0, l.Prune())

	now = now.Add(3 * time.Second)
	require.Equal(t, 1, l.Prune())
}

func TestMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(Middleware(New(1, 0.001), "/healthz"))
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/api/quote", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/healthz", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	do := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusOK, do("/").Code)
	require.Equal(t, http.StatusTooManyRequests, do("/").Code)

	rec := do("/api/quote")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Contains(t, rec.Body.String(), "ERR_RATE_LIMITED")

	require.Equal(t, http.StatusOK, do("/healthz").Code)
}
