package app

//go:generate mockgen -destination=mocks/mock_app.go -package=mock_app investmentanalyzer/internal/app AnalyzerApp

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"investmentanalyzer/internal/domain"
	"investmentanalyzer/internal/logger"
	"investmentanalyzer/internal/service"

	"github.com/shopspring/decimal"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// AnalyzerApp composes market data and model commentary into stock and
// portfolio analyses
type AnalyzerApp interface {
	AnalyzeStock(ctx context.Context, ticker string) domain.StockAnalysis
	AnalyzePortfolio(ctx context.Context, tickers []string) (*domain.PortfolioAnalysis, error)
}

type AnalyzerOptions struct {
	EnableNewsSentiment    bool
	EnableTrendForecasting bool
	// number of tickers analyzed at once in a portfolio
	MaxConcurrency int
}

type analyzerAppHandler struct {
	MarketDataService service.MarketDataService
	NarrativeService  service.NarrativeService
	Options           AnalyzerOptions
}

func NewAnalyzerApp(
	marketDataService service.MarketDataService,
	narrativeService service.NarrativeService,
	options AnalyzerOptions,
) AnalyzerApp {
	if options.MaxConcurrency <= 0 {
		options.MaxConcurrency = 1
	}
	return analyzerAppHandler{
		MarketDataService: marketDataService,
		NarrativeService:  narrativeService,
		Options:           options,
	}
}

func (h analyzerAppHandler) AnalyzeStock(ctx context.Context, ticker string) domain.StockAnalysis {
	profile, _ := domain.GetProfile(ctx)
	_, endSpan := profile.StartSpan(fmt.Sprintf("analyze stock %s", ticker))
	defer endSpan()

	data, info, err := h.MarketDataService.FetchStockData(ctx, ticker)
	if err != nil {
		logger.FromContext(ctx).Warnf("skipping analysis of %s: %s", ticker, err.Error())
		return domain.NewStockAnalysisError(err.Error())
	}

	var (
		wg        sync.WaitGroup
		summary   domain.FundamentalsSummary
		news      *[]domain.NewsItem
		sentiment *domain.SentimentResult
		forecast  *domain.Forecast
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		summary = h.NarrativeService.SummarizeFundamentals(ctx, data, info)
	}()

	if h.Options.EnableNewsSentiment {
		wg.Add(1)
		go func() {
			defer wg.Done()
			items := h.MarketDataService.FetchNews(ctx, ticker, service.DefaultNewsLimit)
			if items == nil {
				items = []domain.NewsItem{}
			}
			news = &items
			result := h.NarrativeService.AnalyzeNewsSentiment(ctx, ticker, items)
			sentiment = &result
		}()
	}

	if h.Options.EnableTrendForecasting {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result := h.NarrativeService.ForecastTrends(ctx, ticker, data)
			forecast = &result
		}()
	}

	wg.Wait()

	return domain.StockAnalysis{
		Ticker:       ticker,
		CompanyName:  info.NameOrUnknown(),
		Sector:       info.SectorOrUnknown(),
		CurrentPrice: data.CurrentPrice,
		Metrics: domain.StockMetrics{
			FiftyTwoWeekHigh: data.FiftyTwoWeekHigh,
			FiftyTwoWeekLow:  data.FiftyTwoWeekLow,
			MarketCap:        domain.FloatOrZero(info.MarketCap),
			PERatio:          domain.FloatOrZero(info.TrailingPE),
			DividendYield:    domain.FloatOrZero(info.DividendYield),
			Beta:             domain.FloatOrZero(info.Beta),
			Volatility30d:    data.Volatility30d,
		},
		Analysis:      summary.Analysis.Sections,
		AnalysisText:  summary.Analysis.Raw,
		AnalysisError: summary.Error,
		News:          news,
		NewsSentiment: sentiment,
		Forecast:      forecast,
	}
}

func (h analyzerAppHandler) AnalyzePortfolio(ctx context.Context, tickers []string) (*domain.PortfolioAnalysis, error) {
	if len(tickers) == 0 {
		return nil, domain.ErrNoTickers
	}

	profile, _ := domain.GetProfile(ctx)
	_, endSpan := profile.StartSpan("validate tickers")
	validity := h.MarketDataService.BatchValidate(ctx, tickers)
	endSpan()

	invalid := []string{}
	for p := validity.Oldest(); p != nil; p = p.Next() {
		if !p.Value {
			invalid = append(invalid, p.Key)
		}
	}
	if len(invalid) > 0 {
		return nil, domain.InvalidTickersError{Tickers: invalid}
	}

	unique := domain.Keys(validity)
	analyses := h.analyzeAll(ctx, unique)

	stocks := orderedmap.New[string, domain.StockAnalysis]()
	for _, t := range unique {
		stocks.Set(t, analyses[t])
	}

	return &domain.PortfolioAnalysis{
		Stocks: stocks,
		PortfolioMetrics: domain.PortfolioMetrics{
			RiskLevel:          PortfolioRisk(stocks),
			SectorDistribution: SectorDistribution(stocks),
		},
	}, nil
}

type analyzeResult struct {
	Ticker   string
	Analysis domain.StockAnalysis
}

// analyzeAll runs AnalyzeStock over a bounded pool of workers
func (h analyzerAppHandler) analyzeAll(ctx context.Context, tickers []string) map[string]domain.StockAnalysis {
	inputCh := make(chan string, len(tickers))
	resultCh := make(chan analyzeResult, len(tickers))
	for _, t := range tickers {
		inputCh <- t
	}
	close(inputCh)

	numGoroutines := h.Options.MaxConcurrency
	if numGoroutines > len(tickers) {
		numGoroutines = len(tickers)
	}

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ticker := range inputCh {
				resultCh <- analyzeResult{
					Ticker:   ticker,
					Analysis: h.AnalyzeStock(ctx, ticker),
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	out := map[string]domain.StockAnalysis{}
	for res := range resultCh {
		out[res.Ticker] = res.Analysis
	}
	return out
}

var (
	lowRiskCeiling  = decimal.RequireFromString("1.67")
	highRiskFloor   = decimal.RequireFromString("2.33")
	riskScoreLow    = decimal.NewFromInt(1)
	riskScoreMedium = decimal.NewFromInt(2)
	riskScoreHigh   = decimal.NewFromInt(3)
)

func riskScore(a domain.StockAnalysis) decimal.Decimal {
	text, ok := a.Section(service.SectionRiskAssessment)
	if !ok {
		return riskScoreMedium
	}
	text = strings.ToLower(text)
	switch {
	case strings.Contains(text, domain.RiskLow):
		return riskScoreLow
	case strings.Contains(text, domain.RiskHigh):
		return riskScoreHigh
	default:
		return riskScoreMedium
	}
}

// PortfolioRisk averages per-stock risk scores (low 1, medium 2, high 3),
// rounds to two places and buckets the result. Stocks without a risk
// assessment count as medium.
func PortfolioRisk(stocks *orderedmap.OrderedMap[string, domain.StockAnalysis]) string {
	if stocks.Len() == 0 {
		return domain.RiskMedium
	}

	total := decimal.Zero
	for p := stocks.Oldest(); p != nil; p = p.Next() {
		total = total.Add(riskScore(p.Value))
	}
	avg := total.Div(decimal.NewFromInt(int64(stocks.Len()))).Round(2)

	switch {
	case avg.LessThan(lowRiskCeiling):
		return domain.RiskLow
	case avg.GreaterThan(highRiskFloor):
		return domain.RiskHigh
	default:
		return domain.RiskMedium
	}
}

// SectorDistribution is the percent of stocks in each sector, in order of
// first appearance
func SectorDistribution(stocks *orderedmap.OrderedMap[string, domain.StockAnalysis]) *orderedmap.OrderedMap[string, float64] {
	counts := orderedmap.New[string, int64]()
	for p := stocks.Oldest(); p != nil; p = p.Next() {
		sector := p.Value.Sector
		if sector == "" {
			sector = "Unknown"
		}
		count, _ := counts.Get(sector)
		counts.Set(sector, count+1)
	}

	out := orderedmap.New[string, float64]()
	total := decimal.NewFromInt(int64(stocks.Len()))
	if total.IsZero() {
		return out
	}
	for p := counts.Oldest(); p != nil; p = p.Next() {
		pct := decimal.NewFromInt(p.Value).Div(total).Mul(decimal.NewFromInt(100)).Round(2)
		out.Set(p.Key, pct.InexactFloat64())
	}
	return out
}
