package calculator

import (
	"fmt"
	"math"

	"investmentanalyzer/internal/domain"
	"investmentanalyzer/internal/util"

	"github.com/montanaflynn/stats"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	VolatilityWindow = 30
	TrendLookback    = 90
	DisplayWindow    = 30
	tradingDays      = 252
)

// DailyReturns computes fractional close-to-close changes. Pairs with a
// zero previous close are skipped.
func DailyReturns(closes []float64) []float64 {
	returns := []float64{}
	for i := 1; i < len(closes); i++ {
		prev := closes[i-1]
		if prev == 0 {
			continue
		}
		returns = append(returns, (closes[i]-prev)/prev)
	}
	return returns
}

// AnnualizedVolatility is the sample stdev of the trailing window of
// returns, annualized and expressed as a percentage. It is 0 when fewer
// than two returns are available.
func AnnualizedVolatility(returns []float64, window int) (float64, error) {
	if len(returns) > window {
		returns = returns[len(returns)-window:]
	}
	if len(returns) < 2 {
		return 0, nil
	}
	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate stdev of %d returns: %w", len(returns), err)
	}
	return stdev * math.Sqrt(tradingDays) * 100, nil
}

// TrendDirection compares the latest close with the close `lookback`
// positions from the end (closes[n-lookback]). Equal counts as downward.
// Returns "" when there are fewer than lookback closes.
func TrendDirection(closes []float64, lookback int) string {
	if lookback <= 0 || len(closes) < lookback {
		return ""
	}
	if closes[len(closes)-1] > closes[len(closes)-lookback] {
		return domain.TrendUpward
	}
	return domain.TrendDownward
}

// ComputeStockData derives display metrics from bars ordered oldest first
func ComputeStockData(bars []domain.PriceBar) (*domain.StockData, error) {
	if len(bars) == 0 {
		return nil, domain.ErrNoData
	}

	closes := make([]float64, 0, len(bars))
	highs := make([]float64, 0, len(bars))
	lows := make([]float64, 0, len(bars))
	for _, b := range bars {
		closes = append(closes, b.Close)
		highs = append(highs, b.High)
		lows = append(lows, b.Low)
	}

	high, err := stats.Max(highs)
	if err != nil {
		return nil, fmt.Errorf("failed to compute 52 week high: %w", err)
	}
	low, err := stats.Min(lows)
	if err != nil {
		return nil, fmt.Errorf("failed to compute 52 week low: %w", err)
	}

	returns := DailyReturns(closes)
	volatility, err := AnnualizedVolatility(returns, VolatilityWindow)
	if err != nil {
		return nil, err
	}

	percentChanges := make([]float64, 0, len(returns))
	for _, r := range returns {
		percentChanges = append(percentChanges, r*100)
	}

	displayStart := 0
	if len(bars) > DisplayWindow {
		displayStart = len(bars) - DisplayWindow
	}
	closePrices := orderedmap.New[string, float64]()
	volume := []int64{}
	for _, b := range bars[displayStart:] {
		closePrices.Set(util.DateString(b.Date), b.Close)
		volume = append(volume, b.Volume)
	}

	return &domain.StockData{
		CurrentPrice:     closes[len(closes)-1],
		FiftyTwoWeekHigh: high,
		FiftyTwoWeekLow:  low,
		Volatility30d:    volatility,
		Trend90d:         TrendDirection(closes, TrendLookback),
		PercentChanges:   percentChanges,
		ClosePrices:      closePrices,
		Volume:           volume,
	}, nil
}

// MeanOfLast averages the trailing n values. It is 0 unless at least n
// values exist.
func MeanOfLast(values []float64, n int) float64 {
	if n <= 0 || len(values) < n {
		return 0
	}
	values = values[len(values)-n:]
	mean, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return mean
}
