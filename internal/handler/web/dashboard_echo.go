package web

import (
	"net/http"
	"time"

	"VibeFinance/internal/domain/models"
	domrepo "VibeFinance/internal/domain/repository"
	"VibeFinance/internal/usecase"
	"VibeFinance/internal/view"
	xlogger "VibeFinance/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DashboardEchoHandler serves the HTML dashboard. Every request is one render
// cycle: load the session, apply the submitted ticker, fetch, render.
type DashboardEchoHandler struct {
	logger     *xlogger.Logger
	session    *usecase.QuoteSession
	store      domrepo.SessionStore
	cookieName string
	cookieTTL  time.Duration
}

func NewDashboardEchoHandler(
	logger *xlogger.Logger,
	session *usecase.QuoteSession,
	store domrepo.SessionStore,
	cookieName string,
	cookieTTL time.Duration,
) *DashboardEchoHandler {
	return &DashboardEchoHandler{
		logger:     logger,
		session:    session,
		store:      store,
		cookieName: cookieName,
		cookieTTL:  cookieTTL,
	}
}

func (h *DashboardEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Dashboard)
}

// Dashboard handles GET /?ticker=&period=.
func (h *DashboardEchoHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	sid := h.sessionID(c)

	state, err := h.store.Load(ctx, sid)
	if err != nil {
		h.logger.Warn("session load failed, using default", xlogger.String("session", sid), xlogger.Error(err))
	}

	// Saved on every request so an active session keeps sliding its TTL.
	state = h.session.Submit(state, c.QueryParam("ticker"))
	if err := h.store.Save(ctx, sid, state); err != nil {
		h.logger.Warn("session save failed", xlogger.String("session", sid), xlogger.Error(err))
	}

	period := models.NormalizePeriod(c.QueryParam("period"))

	var res models.FetchResult
	if state.SelectedTicker != "" {
		res = h.session.Lookup(ctx, usecase.LookupRequest{
			SessionID: sid,
			Source:    "page",
			Symbol:    state.SelectedTicker,
			Period:    period,
		})
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return c.Render(http.StatusOK, view.DashboardTemplate, view.Render(state, period, res))
}

// sessionID returns the caller's session id, minting one when the cookie is
// absent or invalid. The cookie is re-issued each time to renew its MaxAge.
func (h *DashboardEchoHandler) sessionID(c echo.Context) string {
	id := ""
	if ck, err := c.Cookie(h.cookieName); err == nil {
		if _, err := uuid.Parse(ck.Value); err == nil {
			id = ck.Value
		}
	}
	if id == "" {
		id = uuid.NewString()
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(h.cookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
