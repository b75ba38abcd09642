package repository

import (
	"context"
	"errors"
	"fmt"

	"investmentanalyzer/internal/domain"
	"investmentanalyzer/internal/logger"
	"investmentanalyzer/pkg/yahoo"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/equity"
)

// QuoteRepository loads the fundamentals payload for a ticker
type QuoteRepository interface {
	GetCompanyInfo(ctx context.Context, symbol string) (*domain.CompanyInfo, error)
}

type quoteSummaryClient interface {
	GetQuoteSummary(ctx context.Context, symbol string) (*yahoo.QuoteSummaryResult, error)
}

type quoteRepositoryHandler struct {
	SummaryClient quoteSummaryClient
	// finance-go equity quotes, used when quoteSummary is unavailable.
	// It has no sector, industry or beta.
	GetEquity func(symbol string) (*finance.Equity, error)
}

func NewQuoteRepository(client yahoo.Client) QuoteRepository {
	return quoteRepositoryHandler{
		SummaryClient: client,
		GetEquity:     equity.Get,
	}
}

func (h quoteRepositoryHandler) GetCompanyInfo(ctx context.Context, symbol string) (*domain.CompanyInfo, error) {
	summary, summaryErr := h.SummaryClient.GetQuoteSummary(ctx, symbol)
	if summaryErr == nil {
		return companyInfoFromSummary(symbol, summary), nil
	}

	logger.FromContext(ctx).Warnf("quote summary failed for %s, falling back to equity quote: %s", symbol, summaryErr.Error())

	q, err := h.GetEquity(symbol)
	if err != nil {
		return nil, errors.Join(summaryErr, fmt.Errorf("failed to get equity quote for %s: %w", symbol, err))
	}
	if q == nil {
		return nil, errors.Join(summaryErr, fmt.Errorf("no equity quote found for %s", symbol))
	}

	return companyInfoFromEquity(symbol, q), nil
}

func companyInfoFromSummary(symbol string, r *yahoo.QuoteSummaryResult) *domain.CompanyInfo {
	info := &domain.CompanyInfo{
		Symbol: symbol,
	}
	if r.Price != nil {
		if r.Price.Symbol != "" {
			info.Symbol = r.Price.Symbol
		}
		info.LongName = r.Price.LongName
		if info.LongName == "" {
			info.LongName = r.Price.ShortName
		}
		info.RegularMarketPrice = r.Price.RegularMarketPrice.Value()
		info.MarketCap = r.Price.MarketCap.Value()
	}
	if r.SummaryDetail != nil {
		info.TrailingPE = r.SummaryDetail.TrailingPE.Value()
		info.DividendYield = r.SummaryDetail.DividendYield.Value()
		info.Beta = r.SummaryDetail.Beta.Value()
		info.AverageVolume = r.SummaryDetail.AverageVolume.Value()
		if info.MarketCap == nil {
			info.MarketCap = r.SummaryDetail.MarketCap.Value()
		}
	}
	if info.Beta == nil && r.DefaultKeyStatistics != nil {
		info.Beta = r.DefaultKeyStatistics.Beta.Value()
	}
	if r.AssetProfile != nil {
		info.Sector = r.AssetProfile.Sector
		info.Industry = r.AssetProfile.Industry
	}
	if r.FinancialData != nil {
		info.CurrentPrice = r.FinancialData.CurrentPrice.Value()
	}
	return info
}

func nonZero(f float64) *float64 {
	if f == 0 {
		return nil
	}
	return &f
}

func companyInfoFromEquity(symbol string, q *finance.Equity) *domain.CompanyInfo {
	info := &domain.CompanyInfo{
		Symbol:             symbol,
		LongName:           q.LongName,
		RegularMarketPrice: nonZero(q.RegularMarketPrice),
		MarketCap:          nonZero(float64(q.MarketCap)),
		TrailingPE:         nonZero(q.TrailingPE),
		DividendYield:      nonZero(q.TrailingAnnualDividendYield),
		AverageVolume:      nonZero(float64(q.AverageDailyVolume3Month)),
	}
	if q.Symbol != "" {
		info.Symbol = q.Symbol
	}
	if info.LongName == "" {
		info.LongName = q.ShortName
	}
	return info
}
