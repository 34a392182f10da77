package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	domrepo "VibeFinance/internal/domain/repository"
	"VibeFinance/pkg/logger"

	"github.com/go-resty/resty/v2"
	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/quote"
)

// errNotFound is returned by get when Yahoo answers 404.
var errNotFound = errors.New("yahoo: not found")

// Client implements repository.MarketDataProvider on Yahoo Finance's public
// JSON endpoints.
type Client struct {
	http      *resty.Client
	news      domrepo.NewsSource
	quoteFn   func(symbol string) (*finance.Quote, error)
	log       *logger.Logger
	crumb     bool
	cookieURL string

	mu       sync.Mutex
	crumbVal string
}

var _ domrepo.MarketDataProvider = (*Client)(nil)

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

func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.http.SetHeader("User-Agent", ua)
		}
	}
}

// WithNewsSource routes GetNews to another source (e.g. Finnhub).
func WithNewsSource(src domrepo.NewsSource) Option {
	return func(c *Client) { c.news = src }
}

// WithQuoteFallback answers GetInfo from finance-go's quote endpoint when
// quoteSummary fails. fn is normally quote.Get.
func WithQuoteFallback(fn func(symbol string) (*finance.Quote, error)) Option {
	return func(c *Client) { c.quoteFn = fn }
}

// WithCrumb primes a cookie from cookieURL and sends the crumb Yahoo
// requires on quoteSummary.
func WithCrumb(cookieURL string) Option {
	return func(c *Client) {
		c.crumb = true
		c.cookieURL = cookieURL
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// DefaultQuoteFallback is the finance-go lookup.
func DefaultQuoteFallback(symbol string) (*finance.Quote, error) {
	return quote.Get(symbol)
}

func New(opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL("https://query2.finance.yahoo.com").
			SetTimeout(10*time.Second).
			SetHeader("Accept", "application/json").
			SetHeader("User-Agent", "Mozilla/5.0 VibeFinance/1.0"),
		log: logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// getJSON issues a GET and decodes the body into a generic document. A
// {symbol} segment in path is filled with the path-escaped symbol.
func (c *Client) getJSON(ctx context.Context, path, symbol string, params map[string]string) (any, error) {
	req := c.http.R().SetContext(ctx).SetQueryParams(params).SetPathParam("symbol", symbol)
	if c.crumb {
		crumb, err := c.ensureCrumb(ctx)
		if err != nil {
			return nil, err
		}
		req.SetQueryParam("crumb", crumb)
	}

	resp, err := req.Get(path)
	path = strings.Replace(path, "{symbol}", symbol, 1)
	if err != nil {
		return nil, fmt.Errorf("yahoo request %s: %w", path, err)
	}
	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return nil, errNotFound
	case resp.StatusCode() == http.StatusUnauthorized && c.crumb:
		c.resetCrumb()
		return nil, fmt.Errorf("yahoo %s: unauthorized, crumb rejected", path)
	case resp.IsError():
		return nil, fmt.Errorf("yahoo %s: status %d", path, resp.StatusCode())
	}

	var doc any
	if err := json.Unmarshal(resp.Body(), &doc); err != nil {
		return nil, fmt.Errorf("yahoo %s: decode: %w", path, err)
	}
	return doc, nil
}

func (c *Client) ensureCrumb(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.crumbVal != "" {
		return c.crumbVal, nil
	}

	if c.cookieURL != "" {
		// fc.yahoo.com answers 404 but sets the consent cookie on the client's jar
		if _, err := c.http.R().SetContext(ctx).Get(c.cookieURL); err != nil {
			return "", fmt.Errorf("yahoo cookie: %w", err)
		}
	}
	resp, err := c.http.R().SetContext(ctx).SetHeader("Accept", "text/plain").Get("/v1/test/getcrumb")
	if err != nil {
		return "", fmt.Errorf("yahoo crumb: %w", err)
	}
	crumb := strings.TrimSpace(resp.String())
	if resp.IsError() || crumb == "" {
		return "", fmt.Errorf("yahoo crumb: status %d", resp.StatusCode())
	}
	c.crumbVal = crumb
	return crumb, nil
}

func (c *Client) resetCrumb() {
	c.mu.Lock()
	c.crumbVal = ""
	c.mu.Unlock()
}
