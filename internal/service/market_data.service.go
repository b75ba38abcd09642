package service

//go:generate mockgen -destination=mocks/mock_service.go -package=mock_service investmentanalyzer/internal/service MarketDataService,NarrativeService

import (
	"context"
	"errors"
	"fmt"
	"time"

	"investmentanalyzer/internal/calculator"
	"investmentanalyzer/internal/domain"
	"investmentanalyzer/internal/logger"
	"investmentanalyzer/internal/repository"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const DefaultNewsLimit = 10

const historyWindow = 365 * 24 * time.Hour

type MarketDataService interface {
	// FetchStockData loads a trailing year of bars plus company info.
	// Errors are domain.ErrNoData or domain.FetchError.
	FetchStockData(ctx context.Context, ticker string) (*domain.StockData, *domain.CompanyInfo, error)
	// FetchNews never fails; provider errors come back as a single error item
	FetchNews(ctx context.Context, ticker string, limit int) []domain.NewsItem
	ValidateTicker(ctx context.Context, ticker string) bool
	BatchValidate(ctx context.Context, tickers []string) *orderedmap.OrderedMap[string, bool]
}

type marketDataServiceHandler struct {
	PriceRepository repository.PriceRepository
	QuoteRepository repository.QuoteRepository
	NewsRepository  repository.NewsRepository
	Now             func() time.Time
}

func NewMarketDataService(
	priceRepository repository.PriceRepository,
	quoteRepository repository.QuoteRepository,
	newsRepository repository.NewsRepository,
) MarketDataService {
	return marketDataServiceHandler{
		PriceRepository: priceRepository,
		QuoteRepository: quoteRepository,
		NewsRepository:  newsRepository,
		Now:             time.Now,
	}
}

func (h marketDataServiceHandler) FetchStockData(ctx context.Context, ticker string) (*domain.StockData, *domain.CompanyInfo, error) {
	profile, _ := domain.GetProfile(ctx)
	_, endSpan := profile.StartSpan(fmt.Sprintf("fetch stock data %s", ticker))
	defer endSpan()

	info, err := h.QuoteRepository.GetCompanyInfo(ctx, ticker)
	if err != nil {
		return nil, nil, domain.FetchError{Symbol: ticker, Err: err}
	}

	end := h.Now()
	start := end.Add(-historyWindow)
	bars, err := h.PriceRepository.GetDailyBars(ctx, ticker, start, end)
	if err != nil {
		return nil, nil, domain.FetchError{Symbol: ticker, Err: err}
	}
	if len(bars) == 0 {
		return nil, nil, domain.ErrNoData
	}

	data, err := calculator.ComputeStockData(bars)
	if err != nil {
		if errors.Is(err, domain.ErrNoData) {
			return nil, nil, err
		}
		return nil, nil, domain.FetchError{Symbol: ticker, Err: err}
	}

	return data, info, nil
}

func (h marketDataServiceHandler) FetchNews(ctx context.Context, ticker string, limit int) []domain.NewsItem {
	if limit < 0 {
		limit = 0
	}
	news, err := h.NewsRepository.GetNews(ctx, ticker, limit)
	if err != nil {
		logger.FromContext(ctx).Warnf("failed to fetch news for %s: %s", ticker, err.Error())
		return []domain.NewsItem{
			domain.NewNewsError(fmt.Sprintf("Failed to fetch news: %s", err.Error())),
		}
	}
	if len(news) > limit {
		news = news[:limit]
	}
	return news
}

func (h marketDataServiceHandler) ValidateTicker(ctx context.Context, ticker string) bool {
	info, err := h.QuoteRepository.GetCompanyInfo(ctx, ticker)
	if err != nil {
		logger.FromContext(ctx).Debugf("ticker %s failed validation: %s", ticker, err.Error())
		return false
	}
	return info != nil && info.HasLivePrice()
}

// BatchValidate checks every ticker in order. Repeated tickers share a key.
func (h marketDataServiceHandler) BatchValidate(ctx context.Context, tickers []string) *orderedmap.OrderedMap[string, bool] {
	out := orderedmap.New[string, bool]()
	for _, t := range tickers {
		if _, ok := out.Get(t); ok {
			continue
		}
		out.Set(t, h.ValidateTicker(ctx, t))
	}
	return out
}
