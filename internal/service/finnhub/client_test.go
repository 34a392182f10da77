package finnhub_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"VibeFinance/internal/service/finnhub"

	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)
}

func TestGetNews(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "/company-news", r.URL.Path)
		require.Equal(t, "AAPL", q.Get("symbol"))
		require.Equal(t, "2024-03-08", q.Get("from"))
		require.Equal(t, "2024-03-15", q.Get("to"))
		require.Equal(t, "key", q.Get("token"))

		news := make([]map[string]any, 0, 12)
		news = append(news, map[string]any{"headline": "", "url": "https://x.test/skip", "source": "Nobody"})
		for i := range 11 {
			news = append(news, map[string]any{
				"headline": fmt.Sprintf("story %d", i),
				"url":      fmt.Sprintf("https://x.test/%d", i),
				"source":   "Reuters",
				"datetime": 1710500000 - i,
			})
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(news)
	}))
	t.Cleanup(srv.Close)

	c := finnhub.New("key", finnhub.WithBaseURL(srv.URL), finnhub.WithClock(fixedClock))

	items, err := c.GetNews(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Len(t, items, finnhub.MaxItems)
	require.Equal(t, "story 0", items[0].Title)
	require.Equal(t, "https://x.test/0", items[0].Link)
	require.Equal(t, "Reuters", items[0].Publisher)
}

func TestGetNewsError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	c := finnhub.New("key", finnhub.WithBaseURL(srv.URL))

	_, err := c.GetNews(context.Background(), "AAPL")
	require.ErrorContains(t, err, "status 429")
}
