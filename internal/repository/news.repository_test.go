package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"investmentanalyzer/internal/domain"
	"investmentanalyzer/pkg/yahoo"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type fakeYahooNewsClient struct {
	articles []yahoo.NewsArticle
	err      error
}

func (f fakeYahooNewsClient) GetNews(ctx context.Context, symbol string, limit int) ([]yahoo.NewsArticle, error) {
	return f.articles, f.err
}

type fakeAlpacaNewsClient struct {
	news []marketdata.News
	err  error
	req  *marketdata.GetNewsRequest
}

func (f *fakeAlpacaNewsClient) GetNews(req marketdata.GetNewsRequest) ([]marketdata.News, error) {
	f.req = &req
	return f.news, f.err
}

type staticNewsRepository struct {
	news  []domain.NewsItem
	err   error
	calls int
}

func (s *staticNewsRepository) GetNews(ctx context.Context, symbol string, limit int) ([]domain.NewsItem, error) {
	s.calls++
	return s.news, s.err
}

func TestYahooNewsRepository_GetNews(t *testing.T) {
	t.Run("fills placeholders", func(t *testing.T) {
		h := yahooNewsRepositoryHandler{
			Client: fakeYahooNewsClient{
				articles: []yahoo.NewsArticle{
					{
						Title:               "Apple ships",
						Publisher:           "Reuters",
						Link:                "https://example.com/a",
						ProviderPublishTime: 1718236800,
						Summary:             "summary",
					},
					{
						Link: "https://example.com/b",
					},
				},
			},
		}

		news, err := h.GetNews(context.Background(), "AAPL", 10)
		require.NoError(t, err)
		require.Equal(
			t,
			"",
			cmp.Diff(
				[]domain.NewsItem{
					{
						Title:     "Apple ships",
						Publisher: "Reuters",
						Link:      "https://example.com/a",
						Date:      "2024-06-13",
						Summary:   "summary",
					},
					{
						Title:     "No Title",
						Publisher: "Unknown",
						Link:      "https://example.com/b",
						Date:      "1970-01-01",
						Summary:   "No summary available",
					},
				},
				news,
			),
		)
	})

	t.Run("truncates to limit", func(t *testing.T) {
		h := yahooNewsRepositoryHandler{
			Client: fakeYahooNewsClient{
				articles: []yahoo.NewsArticle{{Title: "a"}, {Title: "b"}, {Title: "c"}},
			},
		}

		news, err := h.GetNews(context.Background(), "AAPL", 2)
		require.NoError(t, err)
		require.Len(t, news, 2)
	})

	t.Run("zero limit", func(t *testing.T) {
		h := yahooNewsRepositoryHandler{
			Client: fakeYahooNewsClient{
				articles: []yahoo.NewsArticle{{Title: "a"}},
			},
		}

		news, err := h.GetNews(context.Background(), "AAPL", 0)
		require.NoError(t, err)
		require.Empty(t, news)
	})

	t.Run("propagates client error", func(t *testing.T) {
		h := yahooNewsRepositoryHandler{
			Client: fakeYahooNewsClient{err: fmt.Errorf("timeout")},
		}

		_, err := h.GetNews(context.Background(), "AAPL", 3)
		require.ErrorContains(t, err, "timeout")
	})
}

func TestAlpacaNewsRepository_GetNews(t *testing.T) {
	createdAt := time.Date(2024, 6, 12, 14, 30, 0, 0, time.UTC)

	client := &fakeAlpacaNewsClient{
		news: []marketdata.News{
			{
				Headline:  "Chip demand",
				Author:    "Benzinga",
				URL:       "https://example.com/c",
				Summary:   "demand is up",
				CreatedAt: createdAt,
			},
			{
				CreatedAt: createdAt,
			},
		},
	}
	h := alpacaNewsRepositoryHandler{MdClient: client}

	news, err := h.GetNews(context.Background(), "NVDA", 5)
	require.NoError(t, err)
	require.Equal(t, []string{"NVDA"}, client.req.Symbols)
	require.Equal(t, 5, client.req.TotalLimit)
	require.Equal(
		t,
		"",
		cmp.Diff(
			[]domain.NewsItem{
				{
					Title:     "Chip demand",
					Publisher: "Benzinga",
					Link:      "https://example.com/c",
					Date:      "2024-06-12",
					Summary:   "demand is up",
				},
				{
					Title:     "No Title",
					Publisher: "Unknown",
					Date:      "2024-06-12",
					Summary:   "No summary available",
				},
			},
			news,
		),
	)

	t.Run("error is wrapped", func(t *testing.T) {
		h := alpacaNewsRepositoryHandler{MdClient: &fakeAlpacaNewsClient{err: fmt.Errorf("forbidden")}}
		_, err := h.GetNews(context.Background(), "NVDA", 5)
		require.ErrorContains(t, err, "alpaca news API: forbidden")
	})
}

func TestFallbackNewsRepository_GetNews(t *testing.T) {
	fallbackNews := []domain.NewsItem{{Title: "from yahoo"}}

	t.Run("uses primary when it has results", func(t *testing.T) {
		primary := &staticNewsRepository{news: []domain.NewsItem{{Title: "from alpaca"}}}
		fallback := &staticNewsRepository{news: fallbackNews}

		news, err := NewFallbackNewsRepository(primary, fallback).GetNews(context.Background(), "AAPL", 10)
		require.NoError(t, err)
		require.Equal(t, "from alpaca", news[0].Title)
		require.Equal(t, 0, fallback.calls)
	})

	t.Run("falls back on error", func(t *testing.T) {
		primary := &staticNewsRepository{err: fmt.Errorf("boom")}
		fallback := &staticNewsRepository{news: fallbackNews}

		news, err := NewFallbackNewsRepository(primary, fallback).GetNews(context.Background(), "AAPL", 10)
		require.NoError(t, err)
		require.Equal(t, fallbackNews, news)
	})

	t.Run("falls back on empty", func(t *testing.T) {
		primary := &staticNewsRepository{news: []domain.NewsItem{}}
		fallback := &staticNewsRepository{news: fallbackNews}

		news, err := NewFallbackNewsRepository(primary, fallback).GetNews(context.Background(), "AAPL", 10)
		require.NoError(t, err)
		require.Equal(t, fallbackNews, news)
		require.Equal(t, 1, fallback.calls)
	})
}
