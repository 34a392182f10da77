package finnhub

import (
	"context"
	"fmt"
	"strings"
	"time"

	"VibeFinance/internal/domain/models"
	drepo "VibeFinance/internal/domain/repository"
	"VibeFinance/pkg/util"

	"github.com/go-resty/resty/v2"
)

// MaxItems caps how many headlines one call returns.
const MaxItems = 8

type companyNews struct {
	Headline string `json:"headline"`
	URL      string `json:"url"`
	Source   string `json:"source"`
	Datetime int64  `json:"datetime"`
}

// Client is a NewsSource backed by Finnhub's company-news REST endpoint.
type Client struct {
	http     *resty.Client
	apiKey   string
	lookback time.Duration
	now      func() time.Time
}

var _ drepo.NewsSource = (*Client)(nil)

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.http.SetBaseURL(strings.TrimRight(u, "/")) }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.SetTimeout(d)
		}
	}
}

// WithLookback sets how far back company news is requested.
func WithLookback(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.lookback = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL("https://finnhub.io/api/v1").
			SetTimeout(10 * time.Second).
			SetHeader("Accept", "application/json"),
		apiKey:   apiKey,
		lookback: 7 * 24 * time.Hour,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetNews returns the most recent headlines for symbol, newest first as
// Finnhub orders them.
func (c *Client) GetNews(ctx context.Context, symbol string) ([]models.NewsItem, error) {
	from, to := util.DayRange(c.now(), c.lookback)

	var raw []companyNews
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"symbol": symbol,
			"from":   from,
			"to":     to,
			"token":  c.apiKey,
		}).
		SetResult(&raw).
		Get("/company-news")
	if err != nil {
		return nil, fmt.Errorf("finnhub company-news: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("finnhub company-news: status %d", resp.StatusCode())
	}

	items := make([]models.NewsItem, 0, min(len(raw), MaxItems))
	for _, n := range raw {
		if n.Headline == "" {
			continue
		}
		items = append(items, models.NewsItem{Title: n.Headline, Link: n.URL, Publisher: n.Source})
		if len(items) == MaxItems {
			break
		}
	}
	return items, nil
}
