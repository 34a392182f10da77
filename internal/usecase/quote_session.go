package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"VibeFinance/internal/domain/models"
	domrepo "VibeFinance/internal/domain/repository"
	"VibeFinance/pkg/logger"
	"VibeFinance/pkg/util"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// MaxNewsItems caps the news list.
const MaxNewsItems = 8

var (
	ErrNoSymbol       = errors.New("no ticker selected")
	errStatementEmpty = errors.New("statement is empty")
)

// QuoteSession is the ticker-driven fetch-and-present controller. It holds no
// per-user state; callers pass the session state in and store what Submit returns.
type QuoteSession struct {
	provider domrepo.MarketDataProvider
	metrics  domrepo.Metrics
	journal  domrepo.Journal
	log      *logger.Logger
	timeout  time.Duration
}

type Option func(*QuoteSession)

func WithMetrics(m domrepo.Metrics) Option {
	return func(q *QuoteSession) { q.metrics = m }
}

// WithJournal records every Lookup.
func WithJournal(j domrepo.Journal) Option {
	return func(q *QuoteSession) { q.journal = j }
}

func WithLogger(l *logger.Logger) Option {
	return func(q *QuoteSession) { q.log = l }
}

// WithTimeout bounds a whole fetch sequence. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(q *QuoteSession) { q.timeout = d }
}

func NewQuoteSession(provider domrepo.MarketDataProvider, opts ...Option) *QuoteSession {
	q := &QuoteSession{
		provider: provider,
		log:      logger.Nop(),
		timeout:  15 * time.Second,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Submit applies a ticker typed by the user. Blank input keeps the current selection.
func (q *QuoteSession) Submit(state models.SessionState, input string) models.SessionState {
	if sym := util.NormalizeSymbol(input); sym != "" {
		state.SelectedTicker = sym
	}
	return state
}

// LookupRequest identifies who asked for a fetch, for the journal.
type LookupRequest struct {
	SessionID string
	Source    string
	Symbol    string
	Period    models.Period
}

// Lookup runs Fetch and writes the outcome to the journal. Journal failures
// are logged and never change the result.
func (q *QuoteSession) Lookup(ctx context.Context, req LookupRequest) models.FetchResult {
	start := time.Now()
	res := q.Fetch(ctx, req.Symbol, req.Period)
	if q.journal == nil {
		return res
	}

	ev := &models.LookupEvent{
		ID:         uuid.NewString(),
		SessionID:  req.SessionID,
		Source:     req.Source,
		Symbol:     res.Symbol,
		Period:     string(models.NormalizePeriod(string(req.Period))),
		Outcome:    res.Outcome,
		DurationMs: time.Since(start).Milliseconds(),
		At:         start.UTC(),
	}
	if res.Snapshot != nil {
		ev.Price = res.Snapshot.CurrentPrice
	}
	if res.Err != nil {
		ev.Error = res.Err.Error()
	}
	if err := q.journal.Record(context.WithoutCancel(ctx), ev); err != nil {
		q.log.Warn("journal record failed", logger.String("symbol", ev.Symbol), logger.Error(err))
	}
	return res
}

// Fetch runs one fetch sequence for symbol and classifies the outcome.
// An unknown symbol stops after the info call. History and news failures
// fail the whole fetch; each statement failure stays local to its statement.
func (q *QuoteSession) Fetch(ctx context.Context, symbol string, period models.Period) (res models.FetchResult) {
	start := time.Now()
	defer func() { q.observeFetch(res, time.Since(start)) }()

	if symbol == "" {
		return models.Failed(symbol, ErrNoSymbol)
	}
	if !models.IsValidPeriod(period) {
		period = models.DefaultPeriod()
	}
	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	var info models.InfoRecord
	err := q.call("info", func() (err error) {
		info, err = q.provider.GetInfo(ctx, symbol)
		return err
	})
	if err != nil {
		return models.Failed(symbol, err)
	}
	if !Found(info) {
		return models.NotFound(symbol)
	}

	snap := BuildSnapshot(symbol, info)

	statements := []struct {
		kind  models.StatementKind
		fetch func(context.Context, string) (*models.Table, error)
	}{
		{models.StatementIncome, q.provider.GetIncomeStatement},
		{models.StatementBalanceSheet, q.provider.GetBalanceSheet},
		{models.StatementCashFlow, q.provider.GetCashFlow},
	}
	snap.Statements = make([]models.StatementResult, len(statements))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return q.call("history", func() (err error) {
			snap.History, err = q.provider.GetHistory(gctx, symbol, period)
			return err
		})
	})
	g.Go(func() error {
		return q.call("news", func() (err error) {
			snap.News, err = q.provider.GetNews(gctx, symbol)
			return err
		})
	})
	for i, st := range statements {
		g.Go(func() error {
			var table *models.Table
			err := q.call(string(st.kind), func() (err error) {
				table, err = st.fetch(gctx, symbol)
				return err
			})
			if err == nil && table.Empty() {
				err = errStatementEmpty
			}
			if err != nil {
				q.log.Warn("statement unavailable",
					logger.String("symbol", symbol),
					logger.String("statement", string(st.kind)),
					logger.Error(err),
				)
				if q.metrics != nil {
					q.metrics.RecordStatementUnavailable(string(st.kind))
				}
				snap.Statements[i] = models.StatementResult{Kind: st.kind, Err: err}
				return nil
			}
			snap.Statements[i] = models.StatementResult{Kind: st.kind, Table: table}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.Failed(symbol, err)
	}

	if len(snap.News) > MaxNewsItems {
		snap.News = snap.News[:MaxNewsItems]
	}
	snap.ChartTrend = ChartTrend(snap.History)

	return models.Loaded(snap)
}

// call runs one provider operation, converting a panic into an error and
// recording its latency.
func (q *QuoteSession) call(op string, fn func() error) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
		if err != nil {
			err = &models.FetchError{Op: op, Err: err}
		}
		if q.metrics != nil {
			q.metrics.RecordProviderCall(op, time.Since(start).Seconds(), err != nil)
		}
	}()
	return fn()
}

func (q *QuoteSession) observeFetch(res models.FetchResult, d time.Duration) {
	if q.metrics != nil {
		q.metrics.RecordFetch(string(res.Outcome), d.Seconds())
		if res.Snapshot != nil && res.Snapshot.CurrentPrice != nil {
			q.metrics.RecordLastPrice(res.Symbol, *res.Snapshot.CurrentPrice)
		}
	}

	switch res.Outcome {
	case models.OutcomeFailed:
		q.log.Error("fetch failed",
			logger.String("symbol", res.Symbol),
			logger.Duration("duration_ms", d),
			logger.Error(res.Err),
		)
	default:
		q.log.Debug("fetch done",
			logger.String("symbol", res.Symbol),
			logger.String("outcome", string(res.Outcome)),
			logger.Duration("duration_ms", d),
		)
	}
}
