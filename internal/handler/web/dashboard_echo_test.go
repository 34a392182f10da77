package web_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"VibeFinance/internal/domain/models"
	"VibeFinance/internal/domain/repository/mocks"
	"VibeFinance/internal/handler/web"
	"VibeFinance/internal/repository"
	"VibeFinance/internal/usecase"
	"VibeFinance/internal/view"
	"VibeFinance/pkg/cache"
	xlogger "VibeFinance/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const cookieName = "vf_session"

type fixture struct {
	e     *echo.Echo
	p     *mocks.MockMarketDataProvider
	store *repository.CacheSessionStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithTTL(t, time.Hour)
}

func newFixtureWithTTL(t *testing.T, ttl time.Duration) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	p := mocks.NewMockMarketDataProvider(ctrl)

	mc := cache.NewMemoryCache()
	t.Cleanup(func() { _ = mc.Close() })
	store := repository.NewCacheSessionStore(mc, ttl)

	r, err := view.NewRenderer()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = r
	web.NewDashboardEchoHandler(xlogger.Nop(), usecase.NewQuoteSession(p), store, cookieName, ttl).RegisterRoutes(e)
	return &fixture{e: e, p: p, store: store}
}

func (f *fixture) get(target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) expectLoaded(symbol string, period models.Period) {
	v := 1.0
	tbl := &models.Table{Columns: []string{"2024"}, Rows: []models.TableRow{{Label: "Total Revenue", Values: []*float64{&v}}}}
	f.p.EXPECT().GetInfo(gomock.Any(), symbol).Return(models.InfoRecord{
		"longName": symbol + " Corp", "exchange": "NMS", "currentPrice": 95.0, "previousClose": 90.0,
	}, nil)
	f.p.EXPECT().GetHistory(gomock.Any(), symbol, period).Return([]models.PricePoint{{Close: 100}, {Close: 95}}, nil)
	f.p.EXPECT().GetNews(gomock.Any(), symbol).Return([]models.NewsItem{{Title: "Big news", Link: "https://x.test", Publisher: "Wire"}}, nil)
	f.p.EXPECT().GetIncomeStatement(gomock.Any(), symbol).Return(tbl, nil)
	f.p.EXPECT().GetBalanceSheet(gomock.Any(), symbol).Return(nil, errStatement)
	f.p.EXPECT().GetCashFlow(gomock.Any(), symbol).Return(tbl, nil)
}

var errStatement = errors.New("no balance sheet")

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	t.Fatalf("no %s cookie set", cookieName)
	return nil
}

func TestDashboard_DefaultTicker(t *testing.T) {
	// Arrange
	f := newFixture(t)
	f.expectLoaded("AAPL", models.Period1Y)

	// Act
	rec := f.get("/")

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "AAPL Corp (AAPL)")
	require.Contains(t, body, `class="yh-delta-up"`)
	require.Contains(t, body, "&#43;5.00 (&#43;5.56%)")
	require.Contains(t, body, `"color":"#ff333a"`, "chart follows the period trend")
	require.Contains(t, body, "Latest News for AAPL")
	require.Contains(t, body, "Balance Sheet data unavailable.")
	require.NotContains(t, body, "Income Statement data unavailable.")

	c := sessionCookie(t, rec)
	require.True(t, c.HttpOnly)
}

func TestDashboard_SubmitPersistsAcrossRequests(t *testing.T) {
	f := newFixture(t)
	f.expectLoaded("NVDA", models.Period5D)

	rec := f.get("/?ticker=%20nvda%20&period=5d")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "NVDA Corp (NVDA)")
	cookie := sessionCookie(t, rec)

	// Blank input keeps the stored ticker.
	f.expectLoaded("NVDA", models.Period1Y)
	rec = f.get("/?ticker=%20", cookie)
	require.Contains(t, rec.Body.String(), "NVDA Corp (NVDA)")
	renewed := sessionCookie(t, rec)
	require.Equal(t, cookie.Value, renewed.Value, "existing session keeps its id")
	require.Equal(t, 3600, renewed.MaxAge)

	// Another browser session still starts on the default.
	f.expectLoaded("AAPL", models.Period1Y)
	rec = f.get("/")
	require.Contains(t, rec.Body.String(), "AAPL Corp (AAPL)")
}

func TestDashboard_NotFound(t *testing.T) {
	f := newFixture(t)
	f.p.EXPECT().GetInfo(gomock.Any(), "ZZZZ").Return(models.InfoRecord{"longName": "x"}, nil)

	rec := f.get("/?ticker=zzzz")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "Ticker &#39;ZZZZ&#39; not found.")
	require.NotContains(t, body, "Financial Statements")
}

func TestDashboard_Error(t *testing.T) {
	f := newFixture(t)
	f.p.EXPECT().GetInfo(gomock.Any(), "AAPL").Return(nil, http.ErrServerClosed)

	rec := f.get("/")

	body := rec.Body.String()
	require.Contains(t, body, "Something went wrong while fetching data:")
	require.Contains(t, body, http.ErrServerClosed.Error())
	require.False(t, strings.Contains(body, "Key Statistics"))
}

func TestDashboard_InvalidCookieGetsFreshSession(t *testing.T) {
	f := newFixture(t)
	f.expectLoaded("AAPL", models.Period1Y)

	rec := f.get("/", &http.Cookie{Name: cookieName, Value: "not-a-uuid"})

	c := sessionCookie(t, rec)
	require.NotEqual(t, "not-a-uuid", c.Value)
}

func TestDashboard_ActiveSessionSlidesTTL(t *testing.T) {
	// Arrange
	ttl := 300 * time.Millisecond
	f := newFixtureWithTTL(t, ttl)
	f.expectLoaded("MSFT", models.Period1Y)
	cookie := sessionCookie(t, f.get("/?ticker=msft"))

	// Act: keep visiting, each gap shorter than the TTL, total longer.
	for range 3 {
		time.Sleep(ttl * 6 / 10)
		f.expectLoaded("MSFT", models.Period1Y)
		rec := f.get("/", cookie)

		// Assert
		require.Contains(t, rec.Body.String(), "MSFT Corp (MSFT)")
		require.Equal(t, cookie.Value, sessionCookie(t, rec).Value)
	}
}
