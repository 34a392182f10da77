package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements repository.Metrics using Prometheus.
type Recorder struct {
	fetchTotal       *prometheus.CounterVec
	fetchDuration    *prometheus.HistogramVec
	providerDuration *prometheus.HistogramVec
	providerErrors   *prometheus.CounterVec
	statementErrors  *prometheus.CounterVec
	lastPrice        *prometheus.GaugeVec
}

// New registers the collectors on reg. Pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		fetchTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vibefinance_fetch_total",
				Help: "Dashboard fetch sequences by outcome",
			},
			[]string{"outcome"},
		),
		fetchDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vibefinance_fetch_duration_seconds",
				Help:    "Duration of a whole dashboard fetch sequence",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 4, 8, 15},
			},
			[]string{"outcome"},
		),
		providerDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vibefinance_provider_duration_seconds",
				Help:    "Duration of market data provider calls",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		providerErrors: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vibefinance_provider_errors_total",
				Help: "Failed market data provider calls",
			},
			[]string{"operation"},
		),
		statementErrors: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vibefinance_statement_unavailable_total",
				Help: "Financial statements that could not be fetched",
			},
			[]string{"statement"},
		),
		lastPrice: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "vibefinance_last_price",
				Help: "Last current price served for a symbol",
			},
			[]string{"symbol"},
		),
	}
}

func (r *Recorder) RecordFetch(outcome string, seconds float64) {
	r.fetchTotal.WithLabelValues(outcome).Inc()
	r.fetchDuration.WithLabelValues(outcome).Observe(seconds)
}

// RecordProviderCall records one provider call; failed calls also bump the error counter.
func (r *Recorder) RecordProviderCall(op string, seconds float64, failed bool) {
	r.providerDuration.WithLabelValues(op).Observe(seconds)
	if failed {
		r.providerErrors.WithLabelValues(op).Inc()
	}
}

func (r *Recorder) RecordStatementUnavailable(kind string) {
	r.statementErrors.WithLabelValues(kind).Inc()
}

func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	r.lastPrice.WithLabelValues(symbol).Set(price)
}
