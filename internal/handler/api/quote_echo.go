package api

import (
	"net/http"
	"time"

	"VibeFinance/internal/domain/models"
	appmetrics "VibeFinance/internal/service/metrics"
	"VibeFinance/internal/usecase"
	xhttp "VibeFinance/pkg/http"
	xlogger "VibeFinance/pkg/logger"
	"VibeFinance/pkg/util"

	"github.com/labstack/echo/v4"
)

const endpointQuote = "quote"

// QuoteEchoHandler serves the dashboard data as JSON.
type QuoteEchoHandler struct {
	logger  *xlogger.Logger
	session *usecase.QuoteSession
}

func NewQuoteEchoHandler(logger *xlogger.Logger, session *usecase.QuoteSession) *QuoteEchoHandler {
	appmetrics.Register()
	return &QuoteEchoHandler{logger: logger, session: session}
}

func (h *QuoteEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/quote", h.Quote)
}

// Quote runs one fetch for ?symbol=&period= and answers with the snapshot.
func (h *QuoteEchoHandler) Quote(c echo.Context) error {
	start := time.Now()
	defer func() {
		appmetrics.APILatency.WithLabelValues(endpointQuote).Observe(time.Since(start).Seconds())
	}()

	req := &models.QuoteRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		appmetrics.APIErrors.WithLabelValues(endpointQuote, "ERR_VALIDATION").Inc()
		return xhttp.BadRequestResponse(c, verr)
	}
	symbol := util.NormalizeSymbol(req.Symbol)
	if symbol == "" {
		return h.fail(c, xhttp.BadRequestError("symbol is required"))
	}
	period := models.NormalizePeriod(req.Period)

	res := h.session.Lookup(c.Request().Context(), usecase.LookupRequest{
		Source: "api",
		Symbol: symbol,
		Period: period,
	})

	switch res.Outcome {
	case models.OutcomeNotFound:
		return h.fail(c, xhttp.NotFoundErrorf("ticker '%s' not found", symbol).WithParam("symbol", symbol))
	case models.OutcomeFailed:
		h.logger.Error("quote usecase error", xlogger.String("symbol", symbol), xlogger.Error(res.Err))
		return h.fail(c, xhttp.UpstreamError(res.Err.Error()).WithParam("symbol", symbol).WithError(res.Err))
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	return xhttp.DataResponse(c, http.StatusOK, toQuoteResponse(res.Snapshot, period))
}

func (h *QuoteEchoHandler) fail(c echo.Context, err *xhttp.AppError) error {
	appmetrics.APIErrors.WithLabelValues(endpointQuote, err.Code).Inc()
	return xhttp.AppErrorResponse(c, err)
}
