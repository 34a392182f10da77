package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecorderCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)

	r.RecordFetch("ok", 0.2)
	r.RecordFetch("ok", 0.3)
	r.RecordFetch("not_found", 0.1)
	r.RecordProviderCall("info", 0.05, false)
	r.RecordProviderCall("info", 0.05, true)
	r.RecordStatementUnavailable("income")
	r.RecordLastPrice("AAPL", 190.5)

	require.Equal(t, 2.0, testutil.ToFloat64(r.fetchTotal.WithLabelValues("ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(r.fetchTotal.WithLabelValues("not_found")))
	require.Equal(t, 1.0, testutil.ToFloat64(r.providerErrors.WithLabelValues("info")))
	require.Equal(t, 1.0, testutil.ToFloat64(r.statementErrors.WithLabelValues("income")))
	require.Equal(t, 190.5, testutil.ToFloat64(r.lastPrice.WithLabelValues("AAPL")))
}

func TestNewOnSeparateRegistries(t *testing.T) {
	require.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
