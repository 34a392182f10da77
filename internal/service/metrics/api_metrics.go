package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	APILatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "vibefinance",
			Subsystem: "api",
			Name:      "latency_seconds",
			Help:      "Latency of JSON API endpoints",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	APIErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "vibefinance",
			Subsystem: "api",
			Name:      "errors_total",
			Help:      "Errors by JSON API endpoint and code",
		},
		[]string{"endpoint", "code"},
	)
)

// Register adds the API collectors to the default registry once.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(APILatency, APIErrors)
	})
}
