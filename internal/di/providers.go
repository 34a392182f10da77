package di

import (
	"context"
	"fmt"
	"time"

	"VibeFinance/internal/domain/repository"
	"VibeFinance/internal/handler/api"
	"VibeFinance/internal/handler/web"
	internalrepo "VibeFinance/internal/repository"
	"VibeFinance/internal/service/finnhub"
	"VibeFinance/internal/service/ratelimit"
	"VibeFinance/internal/service/yahoo"
	"VibeFinance/internal/usecase"
	"VibeFinance/internal/view"
	"VibeFinance/pkg/cache"
	pkgch "VibeFinance/pkg/clickhouse"
	"VibeFinance/pkg/config"
	xhttp "VibeFinance/pkg/http"
	pkgkafka "VibeFinance/pkg/kafka"
	applogger "VibeFinance/pkg/logger"
	"VibeFinance/pkg/metrics"
	"VibeFinance/pkg/server"

	"github.com/prometheus/client_golang/prometheus"
)

// ProvideKafkaProducer creates a Kafka producer when the journal uses Kafka.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if cfg.Journal.Backend != "kafka" {
		return nil, nil
	}
	k := cfg.Journal.Kafka
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(k.Brokers),
		pkgkafka.WithCompression(k.Compression),
		pkgkafka.WithRequiredAcks(k.RequiredAcks),
		pkgkafka.WithMaxAttempts(k.MaxAttempts),
		pkgkafka.WithLinger(k.Linger),
		pkgkafka.WithTimeouts(k.WriteTimeout, k.ReadTimeout),
		pkgkafka.WithAsync(k.Async),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvideLogger builds the root logger. With a Kafka journal and a log topic,
// error logs are also aggregated and published.
func ProvideLogger(cfg *config.Config, producer *pkgkafka.Producer) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	if producer != nil && cfg.Journal.Kafka.LogTopic != "" {
		l.AddCollector(&applogger.CollectionConfig{
			TimeInterval:   30 * time.Second,
			CountThreshold: 100,
			Topic:          cfg.Journal.Kafka.LogTopic,
			Publisher:      producer,
		})
	}
	return l, nil
}

// ProvideClickHouseClient connects to ClickHouse when the journal uses it and
// creates the lookups table.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	if cfg.Journal.Backend != "clickhouse" {
		return nil, nil
	}
	ch := cfg.Journal.ClickHouse
	client, err := pkgch.NewClient(
		pkgch.WithHost(ch.Host),
		pkgch.WithPort(ch.Port),
		pkgch.WithDatabase(ch.Database),
		pkgch.WithCredentials(ch.User, ch.Password),
		pkgch.WithMaxConnections(4, 2),
		pkgch.WithHTTP(ch.UseHTTP),
		pkgch.WithAsyncInsert(ch.AsyncInsert, ch.WaitForAsync),
		pkgch.WithTimeouts(ch.DialTimeout, ch.ReadTimeout),
		pkgch.WithMaxExecutionTime(ch.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.InitSchema(ctx, internalrepo.LookupsSchema(ch.Table)); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}
	return client, nil
}

// ProvideJournal picks the lookup journal backend.
func ProvideJournal(cfg *config.Config, producer *pkgkafka.Producer, ch *pkgch.Client, l *applogger.Logger) repository.Journal {
	switch {
	case producer != nil:
		return internalrepo.NewKafkaJournal(producer, cfg.Journal.Kafka.Topic)
	case ch != nil:
		return internalrepo.NewClickHouseJournal(ch.DB(), cfg.Journal.ClickHouse.Table, ch.Close, l.Named("journal"))
	default:
		return internalrepo.NopJournal{}
	}
}

// ProvideMetrics creates a Prometheus metrics recorder on the default registry.
func ProvideMetrics() repository.Metrics {
	return metrics.New(prometheus.DefaultRegisterer)
}

// ProvideNewsSource returns Finnhub when configured, otherwise nil so the
// Yahoo client answers news itself.
func ProvideNewsSource(cfg *config.Config) repository.NewsSource {
	if cfg.News.Source != "finnhub" {
		return nil
	}
	return finnhub.New(cfg.News.Finnhub.APIKey,
		finnhub.WithBaseURL(cfg.News.Finnhub.BaseURL),
		finnhub.WithTimeout(cfg.Provider.Timeout),
		finnhub.WithLookback(cfg.News.Finnhub.Lookback),
	)
}

// ProvideMarketDataProvider creates the Yahoo Finance client.
func ProvideMarketDataProvider(cfg *config.Config, news repository.NewsSource, l *applogger.Logger) repository.MarketDataProvider {
	opts := []yahoo.Option{
		yahoo.WithBaseURL(cfg.Provider.BaseURL),
		yahoo.WithTimeout(cfg.Provider.Timeout),
		yahoo.WithUserAgent(cfg.Provider.UserAgent),
		yahoo.WithLogger(l.Named("yahoo")),
	}
	if news != nil {
		opts = append(opts, yahoo.WithNewsSource(news))
	}
	if cfg.Provider.QuoteFallback {
		opts = append(opts, yahoo.WithQuoteFallback(yahoo.DefaultQuoteFallback))
	}
	if cfg.Provider.Crumb {
		opts = append(opts, yahoo.WithCrumb(cfg.Provider.CookieURL))
	}
	return yahoo.New(opts...)
}

// ProvideQuoteSession creates the quote session use case.
func ProvideQuoteSession(
	provider repository.MarketDataProvider,
	m repository.Metrics,
	journal repository.Journal,
	l *applogger.Logger,
	cfg *config.Config,
) *usecase.QuoteSession {
	return usecase.NewQuoteSession(provider,
		usecase.WithMetrics(m),
		usecase.WithJournal(journal),
		usecase.WithLogger(l.Named("quote_session")),
		usecase.WithTimeout(cfg.Provider.FetchTimeout),
	)
}

// ProvideCache creates the session backing store.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if cfg.Session.Store != "redis" {
		return cache.NewMemoryCache(cache.WithMemoryDefaultTTL(cfg.Session.TTL)), nil
	}
	r := cfg.Session.Redis
	rc, err := cache.NewRedisCache(
		cache.WithRedisHost(r.Host),
		cache.WithRedisPort(r.Port),
		cache.WithRedisPassword(r.Password),
		cache.WithRedisDB(r.DB),
		cache.WithRedisPrefix(r.Prefix),
	)
	if err != nil {
		return nil, fmt.Errorf("session cache: %w", err)
	}
	return rc, nil
}

func ProvideSessionStore(c cache.Service, cfg *config.Config) repository.SessionStore {
	return internalrepo.NewCacheSessionStore(c, cfg.Session.TTL)
}

// ProvideLimiter returns nil when rate limiting is disabled.
func ProvideLimiter(cfg *config.Config) *ratelimit.Limiter {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	return ratelimit.New(cfg.RateLimit.Capacity, cfg.RateLimit.Refill)
}

func ProvideRenderer() (*view.Renderer, error) {
	return view.NewRenderer()
}

// ProvideHandlers lists every route owner.
func ProvideHandlers(
	l *applogger.Logger,
	qs *usecase.QuoteSession,
	store repository.SessionStore,
	cfg *config.Config,
) []xhttp.Handler {
	return []xhttp.Handler{
		web.NewDashboardEchoHandler(l.Named("dashboard"), qs, store, cfg.Session.CookieName, cfg.Session.TTL),
		api.NewQuoteEchoHandler(l.Named("api"), qs),
	}
}

// ProvideHTTPServer creates the echo server with the dashboard renderer.
func ProvideHTTPServer(
	cfg *config.Config,
	handlers []xhttp.Handler,
	renderer *view.Renderer,
	limiter *ratelimit.Limiter,
	l *applogger.Logger,
) *xhttp.Server {
	opts := []xhttp.ServerOption{
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithSlowThreshold(cfg.Server.SlowThreshold),
		xhttp.WithCORS(cfg.Server.CORSOrigins...),
		xhttp.WithRenderer(renderer),
		xhttp.WithLogger(l.Named("http")),
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithMetricsPath(cfg.Metrics.Path))
	} else {
		opts = append(opts, xhttp.WithMetricsPath(""))
	}
	if limiter != nil {
		opts = append(opts, xhttp.WithMiddleware(ratelimit.Middleware(limiter, "/healthz", cfg.Metrics.Path)))
	}
	return xhttp.NewServer(handlers, opts...)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	srv *xhttp.Server,
	journal repository.Journal,
	c cache.Service,
	limiter *ratelimit.Limiter,
) *server.App {
	return server.New(cfg, l, srv, journal, c, limiter)
}
