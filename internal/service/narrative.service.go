package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"investmentanalyzer/internal/calculator"
	"investmentanalyzer/internal/domain"
	"investmentanalyzer/internal/logger"
	"investmentanalyzer/internal/parser"
	"investmentanalyzer/internal/repository"
)

const (
	SectionRiskAssessment      = "RISK ASSESSMENT"
	SectionVolatilityAnalysis  = "VOLATILITY ANALYSIS"
	SectionFundamentalAnalysis = "FUNDAMENTAL ANALYSIS"
	SectionSummary             = "SUMMARY"
	SectionShortTermOutlook    = "SHORT-TERM OUTLOOK"
	SectionPotentialCatalysts  = "POTENTIAL CATALYSTS"
	SectionKeyIndicators       = "KEY INDICATORS"
)

const (
	narrativeTemperature  = 0.3
	fundamentalsMaxTokens = 1000
	sentimentMaxTokens    = 500
	forecastMaxTokens     = 800

	maxSentimentHeadlines       = 5
	forecastRecentCloses        = 10
	forecastRecentChangesWindow = 5

	noNewsExplanation = "No recent news data available"
	notAvailable      = "N/A"
)

const (
	fundamentalsSystemPrompt = "You are a precise financial analyst providing concise stock assessments."
	sentimentSystemPrompt    = "You are a financial news analyst providing concise sentiment analysis."
	forecastSystemPrompt     = "You are a precise technical analyst providing trend forecasts based on historical data."
)

// NarrativeService turns market data into model-written commentary. Failures
// are reported on the returned payloads rather than as errors.
type NarrativeService interface {
	SummarizeFundamentals(ctx context.Context, data *domain.StockData, info *domain.CompanyInfo) domain.FundamentalsSummary
	AnalyzeNewsSentiment(ctx context.Context, ticker string, news []domain.NewsItem) domain.SentimentResult
	ForecastTrends(ctx context.Context, ticker string, data *domain.StockData) domain.Forecast
}

type narrativeServiceHandler struct {
	TextGenerationRepository repository.TextGenerationRepository
	FundamentalsParser       parser.SectionParser
	ForecastParser           parser.SectionParser
}

func NewNarrativeService(textGenerationRepository repository.TextGenerationRepository) NarrativeService {
	return narrativeServiceHandler{
		TextGenerationRepository: textGenerationRepository,
		FundamentalsParser: parser.NewKeywordSectionParser(
			SectionRiskAssessment,
			SectionVolatilityAnalysis,
			SectionFundamentalAnalysis,
			SectionSummary,
		),
		ForecastParser: parser.NewKeywordSectionParser(
			SectionShortTermOutlook,
			SectionPotentialCatalysts,
			SectionKeyIndicators,
			SectionSummary,
		),
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatOptional(f *float64) string {
	if f == nil {
		return notAvailable
	}
	return formatNumber(*f)
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func fundamentalsPrompt(data *domain.StockData, info *domain.CompanyInfo) string {
	return fmt.Sprintf(`As a financial expert, analyze this stock data and provide insights:

Ticker: %s
Company: %s
Sector: %s
Industry: %s

Key Metrics:
- Current Price: $%s
- 52-Week High: $%s
- 52-Week Low: $%s
- P/E Ratio: %s
- Market Cap: $%s
- Beta: %s
- Average Volume: %s

Based on this information, provide a concise analysis with these sections:
1. RISK ASSESSMENT: Evaluate the overall risk level (low/medium/high) with reasoning.
2. VOLATILITY ANALYSIS: Analyze price stability and comparison to market.
3. FUNDAMENTAL ANALYSIS: Key strengths and concerns based on the fundamentals.
4. SUMMARY: A 2-3 sentence overall assessment.

Keep each section brief and focused on actionable insights.
`,
		orUnknown(info.Symbol),
		orUnknown(info.LongName),
		orUnknown(info.Sector),
		orUnknown(info.Industry),
		formatNumber(data.CurrentPrice),
		formatNumber(data.FiftyTwoWeekHigh),
		formatNumber(data.FiftyTwoWeekLow),
		formatOptional(info.TrailingPE),
		formatOptional(info.MarketCap),
		formatOptional(info.Beta),
		formatOptional(info.AverageVolume),
	)
}

func (h narrativeServiceHandler) SummarizeFundamentals(ctx context.Context, data *domain.StockData, info *domain.CompanyInfo) domain.FundamentalsSummary {
	profile, _ := domain.GetProfile(ctx)
	_, endSpan := profile.StartSpan(fmt.Sprintf("summarize fundamentals %s", info.Symbol))
	defer endSpan()

	text, err := h.TextGenerationRepository.Complete(ctx, repository.CompletionRequest{
		SystemPrompt: fundamentalsSystemPrompt,
		Prompt:       fundamentalsPrompt(data, info),
		Temperature:  narrativeTemperature,
		MaxTokens:    fundamentalsMaxTokens,
	})
	if err != nil {
		logger.FromContext(ctx).Warnf("fundamentals summary failed for %s: %s", info.Symbol, err.Error())
		return domain.FundamentalsSummary{
			Error: fmt.Sprintf("Failed to generate analysis: %s", err.Error()),
		}
	}

	return domain.FundamentalsSummary{
		Analysis: h.FundamentalsParser.Parse(text),
	}
}

func sentimentPrompt(ticker string, news []domain.NewsItem) string {
	snippets := []string{}
	for i, item := range news {
		if i >= maxSentimentHeadlines {
			break
		}
		title, date := item.Title, item.Date
		if title == "" {
			title = "No title"
		}
		if date == "" {
			date = "Unknown date"
		}
		snippets = append(snippets, fmt.Sprintf("%d. %s (%s)", i+1, title, date))
	}

	return fmt.Sprintf(`As a financial news analyst, review these recent news headlines about %s:

%s

Based on these headlines, provide:
1. Overall sentiment: bullish, bearish, or neutral
2. A brief explanation (2-3 sentences) of your assessment
3. Potential market impact (short-term)
`, ticker, strings.Join(snippets, "\n"))
}

// SentimentLabel scans the response for the first matching keyword, with
// bullish checked before bearish
func SentimentLabel(analysis string) string {
	lower := strings.ToLower(analysis)
	switch {
	case strings.Contains(lower, domain.SentimentBullish):
		return domain.SentimentBullish
	case strings.Contains(lower, domain.SentimentBearish):
		return domain.SentimentBearish
	default:
		return domain.SentimentNeutral
	}
}

func (h narrativeServiceHandler) AnalyzeNewsSentiment(ctx context.Context, ticker string, news []domain.NewsItem) domain.SentimentResult {
	if len(news) == 0 {
		return domain.SentimentResult{
			Sentiment:   domain.SentimentNeutral,
			Explanation: noNewsExplanation,
		}
	}

	profile, _ := domain.GetProfile(ctx)
	_, endSpan := profile.StartSpan(fmt.Sprintf("analyze news sentiment %s", ticker))
	defer endSpan()

	text, err := h.TextGenerationRepository.Complete(ctx, repository.CompletionRequest{
		SystemPrompt: sentimentSystemPrompt,
		Prompt:       sentimentPrompt(ticker, news),
		Temperature:  narrativeTemperature,
		MaxTokens:    sentimentMaxTokens,
	})
	if err != nil {
		logger.FromContext(ctx).Warnf("news sentiment failed for %s: %s", ticker, err.Error())
		empty := ""
		return domain.SentimentResult{
			Error:     fmt.Sprintf("Failed to analyze news sentiment: %s", err.Error()),
			Sentiment: domain.SentimentNeutral,
			Analysis:  &empty,
		}
	}

	return domain.SentimentResult{
		Sentiment: SentimentLabel(text),
		Analysis:  &text,
	}
}

func forecastPrompt(ticker string, data *domain.StockData) string {
	dates := domain.Keys(data.ClosePrices)
	if len(dates) > forecastRecentCloses {
		dates = dates[len(dates)-forecastRecentCloses:]
	}
	recentPrices := []string{}
	for _, d := range dates {
		price, _ := data.ClosePrices.Get(d)
		recentPrices = append(recentPrices, fmt.Sprintf("%s: $%.2f", d, price))
	}

	trend := data.Trend90d
	if trend == "" {
		trend = notAvailable
	}

	return fmt.Sprintf(`As a technical analyst, forecast trends for %s based on this data:

Recent closing prices:
%s

Average recent daily change: %.2f%%
30-day volatility: %s
90-day trend direction: %s

Based on technical analysis principles, provide:
1. SHORT-TERM OUTLOOK (1-2 weeks): Direction and key levels
2. POTENTIAL CATALYSTS: Technical factors that could affect price
3. KEY INDICATORS: Important technical signals currently showing
4. SUMMARY: A concise forecast statement

Avoid making specific price predictions. Focus on trend direction and technical patterns.
`,
		ticker,
		strings.Join(recentPrices, "\n"),
		calculator.MeanOfLast(data.PercentChanges, forecastRecentChangesWindow),
		formatNumber(data.Volatility30d),
		trend,
	)
}

func (h narrativeServiceHandler) ForecastTrends(ctx context.Context, ticker string, data *domain.StockData) domain.Forecast {
	profile, _ := domain.GetProfile(ctx)
	_, endSpan := profile.StartSpan(fmt.Sprintf("forecast trends %s", ticker))
	defer endSpan()

	text, err := h.TextGenerationRepository.Complete(ctx, repository.CompletionRequest{
		SystemPrompt: forecastSystemPrompt,
		Prompt:       forecastPrompt(ticker, data),
		Temperature:  narrativeTemperature,
		MaxTokens:    forecastMaxTokens,
	})
	if err != nil {
		logger.FromContext(ctx).Warnf("forecast failed for %s: %s", ticker, err.Error())
		return domain.Forecast{
			Error: fmt.Sprintf("Failed to generate forecast: %s", err.Error()),
		}
	}

	return domain.Forecast{
		Sections: h.ForecastParser.Parse(text),
	}
}
