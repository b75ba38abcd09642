package repository

import (
	"context"
	"fmt"
	"time"

	"investmentanalyzer/internal/domain"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

type PriceRepository interface {
	// GetDailyBars returns bars oldest first
	GetDailyBars(ctx context.Context, symbol string, start, end time.Time) ([]domain.PriceBar, error)
}

type priceRepositoryHandler struct{}

func NewPriceRepository() PriceRepository {
	return priceRepositoryHandler{}
}

func (h priceRepositoryHandler) GetDailyBars(ctx context.Context, symbol string, start, end time.Time) ([]domain.PriceBar, error) {
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	bars := []domain.PriceBar{}
	for iter.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		bar := iter.Bar()
		// adjusted close matches what the trend and volatility should see
		closePrice := bar.AdjClose
		if closePrice.IsZero() {
			closePrice = bar.Close
		}
		bars = append(bars, domain.PriceBar{
			Date:   time.Unix(int64(bar.Timestamp), 0).UTC(),
			Close:  closePrice.InexactFloat64(),
			High:   bar.High.InexactFloat64(),
			Low:    bar.Low.InexactFloat64(),
			Volume: int64(bar.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}

	return bars, nil
}
