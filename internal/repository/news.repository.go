package repository

import (
	"context"

	"investmentanalyzer/internal/domain"
	"investmentanalyzer/internal/logger"
	"investmentanalyzer/internal/util"
	"investmentanalyzer/pkg/yahoo"
)

const (
	noTitle   = "No Title"
	noSummary = "No summary available"
	unknown   = "Unknown"
)

// NewsRepository returns at most limit recent articles for a symbol
type NewsRepository interface {
	GetNews(ctx context.Context, symbol string, limit int) ([]domain.NewsItem, error)
}

type yahooNewsClient interface {
	GetNews(ctx context.Context, symbol string, limit int) ([]yahoo.NewsArticle, error)
}

type yahooNewsRepositoryHandler struct {
	Client yahooNewsClient
}

func NewYahooNewsRepository(client yahoo.Client) NewsRepository {
	return yahooNewsRepositoryHandler{
		Client: client,
	}
}

func (h yahooNewsRepositoryHandler) GetNews(ctx context.Context, symbol string, limit int) ([]domain.NewsItem, error) {
	if limit <= 0 {
		return []domain.NewsItem{}, nil
	}

	articles, err := h.Client.GetNews(ctx, symbol, limit)
	if err != nil {
		return nil, err
	}
	if len(articles) > limit {
		articles = articles[:limit]
	}

	out := []domain.NewsItem{}
	for _, a := range articles {
		out = append(out, domain.NewsItem{
			Title:     valueOr(a.Title, noTitle),
			Publisher: valueOr(a.Publisher, unknown),
			Link:      a.Link,
			Date:      util.UnixDateString(a.ProviderPublishTime),
			Summary:   valueOr(a.Summary, noSummary),
		})
	}
	return out, nil
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

type fallbackNewsRepositoryHandler struct {
	Primary  NewsRepository
	Fallback NewsRepository
}

// NewFallbackNewsRepository reads from primary and uses fallback whenever
// primary errors or has nothing
func NewFallbackNewsRepository(primary, fallback NewsRepository) NewsRepository {
	return fallbackNewsRepositoryHandler{
		Primary:  primary,
		Fallback: fallback,
	}
}

func (h fallbackNewsRepositoryHandler) GetNews(ctx context.Context, symbol string, limit int) ([]domain.NewsItem, error) {
	news, err := h.Primary.GetNews(ctx, symbol, limit)
	if err == nil && len(news) > 0 {
		return news, nil
	}
	if err != nil {
		logger.FromContext(ctx).Warnf("primary news source failed for %s: %s", symbol, err.Error())
	}
	return h.Fallback.GetNews(ctx, symbol, limit)
}
