package repository

import (
	"context"
	"fmt"

	"investmentanalyzer/internal/domain"
	"investmentanalyzer/internal/util"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"
)

type alpacaNewsClient interface {
	GetNews(req marketdata.GetNewsRequest) ([]marketdata.News, error)
}

type alpacaNewsRepositoryHandler struct {
	MdClient alpacaNewsClient
}

func NewAlpacaNewsRepository(apiKey, apiSecret string) NewsRepository {
	mdClient := marketdata.NewClient(marketdata.ClientOpts{
		APIKey:    apiKey,
		APISecret: apiSecret,
	})

	return alpacaNewsRepositoryHandler{
		MdClient: mdClient,
	}
}

func (h alpacaNewsRepositoryHandler) GetNews(ctx context.Context, symbol string, limit int) ([]domain.NewsItem, error) {
	if limit <= 0 {
		return []domain.NewsItem{}, nil
	}

	news, err := h.MdClient.GetNews(marketdata.GetNewsRequest{
		Symbols:    []string{symbol},
		TotalLimit: limit,
		Sort:       marketdata.SortDesc,
	})
	if err != nil {
		return nil, fmt.Errorf("alpaca news API: %w", err)
	}

	out := []domain.NewsItem{}
	for _, a := range news {
		if len(out) >= limit {
			break
		}
		out = append(out, domain.NewsItem{
			Title:     valueOr(a.Headline, noTitle),
			Publisher: valueOr(a.Author, unknown),
			Link:      a.URL,
			Date:      util.DateString(a.CreatedAt),
			Summary:   valueOr(a.Summary, noSummary),
		})
	}
	return out, nil
}
