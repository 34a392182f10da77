package yahoo

import (
	"context"
	"strconv"

	"VibeFinance/internal/domain/models"
)

const newsCount = 8

// GetNews returns recent headlines for symbol from the configured news
// source, or from Yahoo's search endpoint by default.
func (c *Client) GetNews(ctx context.Context, symbol string) ([]models.NewsItem, error) {
	if c.news != nil {
		return c.news.GetNews(ctx, symbol)
	}

	doc, err := c.getJSON(ctx, "/v1/finance/search", "", map[string]string{
		"q":           symbol,
		"quotesCount": "0",
		"newsCount":   strconv.Itoa(newsCount),
	})
	if err != nil {
		return nil, err
	}

	raw := asList(lookup(doc, "$.news"))
	items := make([]models.NewsItem, 0, len(raw))
	for _, r := range raw {
		item := models.NewsItem{
			Title:     asString(lookup(r, "$.title")),
			Link:      asString(lookup(r, "$.link")),
			Publisher: asString(lookup(r, "$.publisher")),
		}
		if item.Title == "" {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}
