package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"

	"VibeFinance/internal/domain/models"
)

// MarketDataProvider is the external source of quote, history, news and
// statement data. Each call is independently fallible.
type MarketDataProvider interface {
	GetInfo(ctx context.Context, symbol string) (models.InfoRecord, error)
	GetHistory(ctx context.Context, symbol string, period models.Period) ([]models.PricePoint, error)
	GetNews(ctx context.Context, symbol string) ([]models.NewsItem, error)
	GetIncomeStatement(ctx context.Context, symbol string) (*models.Table, error)
	GetBalanceSheet(ctx context.Context, symbol string) (*models.Table, error)
	GetCashFlow(ctx context.Context, symbol string) (*models.Table, error)
}

type NewsSource interface {
	GetNews(ctx context.Context, symbol string) ([]models.NewsItem, error)
}

// SessionStore keeps SessionState per session id. Load returns the default
// state for unknown ids.
type SessionStore interface {
	Load(ctx context.Context, id string) (models.SessionState, error)
	Save(ctx context.Context, id string, state models.SessionState) error
}

// Journal records lookups for later analysis.
type Journal interface {
	Record(ctx context.Context, ev *models.LookupEvent) error
	Close() error
}

type Metrics interface {
	RecordFetch(outcome string, seconds float64)
	RecordProviderCall(op string, seconds float64, failed bool)
	RecordStatementUnavailable(kind string)
	RecordLastPrice(symbol string, price float64)
}
