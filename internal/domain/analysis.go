package domain

import (
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	SentimentBullish = "bullish"
	SentimentBearish = "bearish"
	SentimentNeutral = "neutral"
)

const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// SectionedText is model output split into labelled sections. Raw is the
// unparsed response.
type SectionedText struct {
	Sections *orderedmap.OrderedMap[string, string]
	Raw      string
}

func (s SectionedText) Get(label string) (string, bool) {
	if s.Sections == nil {
		return "", false
	}
	return s.Sections.Get(label)
}

type FundamentalsSummary struct {
	Analysis SectionedText `json:"-"`
	Error    string        `json:"error,omitempty"`
}

func (f FundamentalsSummary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Error    string                                 `json:"error,omitempty"`
		Analysis *orderedmap.OrderedMap[string, string] `json:"analysis"`
		FullText string                                 `json:"full_text"`
	}{
		Error:    f.Error,
		Analysis: orEmpty(f.Analysis.Sections),
		FullText: f.Analysis.Raw,
	})
}

type SentimentResult struct {
	Error     string  `json:"error,omitempty"`
	Sentiment string  `json:"sentiment"`
	Analysis  *string `json:"analysis,omitempty"`
	// only set when there was nothing to analyze
	Explanation string `json:"explanation,omitempty"`
}

type Forecast struct {
	Sections SectionedText `json:"-"`
	Error    string        `json:"error,omitempty"`
}

func (f Forecast) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Error            string                                 `json:"error,omitempty"`
		ForecastSections *orderedmap.OrderedMap[string, string] `json:"forecast_sections"`
		FullForecast     string                                 `json:"full_forecast"`
	}{
		Error:            f.Error,
		ForecastSections: orEmpty(f.Sections.Sections),
		FullForecast:     f.Sections.Raw,
	})
}

type StockMetrics struct {
	FiftyTwoWeekHigh float64 `json:"52_week_high"`
	FiftyTwoWeekLow  float64 `json:"52_week_low"`
	MarketCap        float64 `json:"market_cap"`
	PERatio          float64 `json:"pe_ratio"`
	DividendYield    float64 `json:"dividend_yield"`
	Beta             float64 `json:"beta"`
	Volatility30d    float64 `json:"volatility_30d"`
}

type StockAnalysis struct {
	Ticker        string                                 `json:"ticker"`
	CompanyName   string                                 `json:"company_name"`
	Sector        string                                 `json:"sector"`
	CurrentPrice  float64                                `json:"current_price"`
	Metrics       StockMetrics                           `json:"metrics"`
	Analysis      *orderedmap.OrderedMap[string, string] `json:"analysis"`
	AnalysisText  string                                 `json:"analysis_text"`
	AnalysisError string                                 `json:"analysis_error,omitempty"`

	// nil when news sentiment is disabled, otherwise points at a possibly
	// empty list
	News          *[]NewsItem      `json:"news,omitempty"`
	NewsSentiment *SentimentResult `json:"news_sentiment,omitempty"`
	Forecast      *Forecast        `json:"forecast,omitempty"`

	// set when market data could not be fetched; nothing else is populated
	Error string `json:"-"`
}

func NewStockAnalysisError(msg string) StockAnalysis {
	return StockAnalysis{Error: msg}
}

// Section looks up a labelled part of the fundamentals analysis
func (s StockAnalysis) Section(label string) (string, bool) {
	return SectionedText{Sections: s.Analysis}.Get(label)
}

func (s StockAnalysis) MarshalJSON() ([]byte, error) {
	if s.Error != "" {
		return json.Marshal(errorPayload{Error: s.Error})
	}
	type plain StockAnalysis
	s.Analysis = orEmpty(s.Analysis)
	return json.Marshal(plain(s))
}

type PortfolioMetrics struct {
	RiskLevel          string                                  `json:"risk_level"`
	SectorDistribution *orderedmap.OrderedMap[string, float64] `json:"sector_distribution"`
}

type PortfolioAnalysis struct {
	Stocks           *orderedmap.OrderedMap[string, StockAnalysis] `json:"stocks"`
	PortfolioMetrics PortfolioMetrics                              `json:"portfolio_metrics"`
}
