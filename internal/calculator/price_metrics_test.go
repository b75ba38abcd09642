package calculator

import (
	"math"
	"testing"
	"time"

	"investmentanalyzer/internal/domain"
	"investmentanalyzer/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func barsFromCloses(start time.Time, closes []float64) []domain.PriceBar {
	bars := []domain.PriceBar{}
	for i, c := range closes {
		bars = append(bars, domain.PriceBar{
			Date:   start.AddDate(0, 0, i),
			Close:  c,
			High:   c + 1,
			Low:    c - 1,
			Volume: int64(1000 + i),
		})
	}
	return bars
}

func TestDailyReturns(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		require.Equal(
			t,
			"",
			cmp.Diff(
				[]float64{0.1, -0.5},
				DailyReturns([]float64{100, 110, 55}),
				cmp.Comparer(func(i, j float64) bool {
					return math.Abs(i-j) < 1e-9
				}),
			),
		)
	})

	t.Run("skips zero previous close", func(t *testing.T) {
		require.Equal(t, []float64{1}, DailyReturns([]float64{0, 5, 10}))
	})

	t.Run("single close", func(t *testing.T) {
		require.Empty(t, DailyReturns([]float64{5}))
	})
}

func TestAnnualizedVolatility(t *testing.T) {
	t.Run("two returns", func(t *testing.T) {
		v, err := AnnualizedVolatility([]float64{0.01, -0.01}, 30)
		require.NoError(t, err)
		require.InDelta(t, 22.44994432064365, v, 1e-9)
	})

	t.Run("uses only trailing window", func(t *testing.T) {
		closes := []float64{}
		for i := 0; i < 40; i++ {
			closes = append(closes, float64(100+i))
		}
		v, err := AnnualizedVolatility(DailyReturns(closes), 30)
		require.NoError(t, err)
		require.InDelta(t, 0.926260606178618, v, 1e-9)
	})

	t.Run("fewer than two returns is zero", func(t *testing.T) {
		v, err := AnnualizedVolatility([]float64{0.3}, 30)
		require.NoError(t, err)
		require.Equal(t, float64(0), v)

		v, err = AnnualizedVolatility(nil, 30)
		require.NoError(t, err)
		require.Equal(t, float64(0), v)
	})
}

func TestTrendDirection(t *testing.T) {
	flat := func(n int, v float64) []float64 {
		out := make([]float64, n)
		for i := range out {
			out[i] = v
		}
		return out
	}

	t.Run("upward", func(t *testing.T) {
		closes := flat(90, 10)
		closes[89] = 11
		require.Equal(t, domain.TrendUpward, TrendDirection(closes, 90))
	})

	t.Run("equal is downward", func(t *testing.T) {
		require.Equal(t, domain.TrendDownward, TrendDirection(flat(90, 10), 90))
	})

	t.Run("compares against closes[n-90]", func(t *testing.T) {
		closes := flat(120, 10)
		// index 30 is the reference for 120 closes
		closes[30] = 20
		closes[119] = 15
		require.Equal(t, domain.TrendDownward, TrendDirection(closes, 90))

		closes[30] = 14
		require.Equal(t, domain.TrendUpward, TrendDirection(closes, 90))
	})

	t.Run("not enough history", func(t *testing.T) {
		require.Equal(t, "", TrendDirection(flat(89, 10), 90))
	})
}

func TestComputeStockData(t *testing.T) {
	t.Run("no bars", func(t *testing.T) {
		_, err := ComputeStockData(nil)
		require.ErrorIs(t, err, domain.ErrNoData)
	})

	t.Run("derives metrics", func(t *testing.T) {
		start := util.NewDate(2024, 1, 1)
		closes := []float64{}
		for i := 0; i < 100; i++ {
			closes = append(closes, float64(50+i))
		}
		closes[20] = 500

		data, err := ComputeStockData(barsFromCloses(start, closes))
		require.NoError(t, err)

		require.Equal(t, float64(149), data.CurrentPrice)
		require.Equal(t, float64(501), data.FiftyTwoWeekHigh)
		require.Equal(t, float64(49), data.FiftyTwoWeekLow)
		require.Equal(t, domain.TrendUpward, data.Trend90d)
		require.Len(t, data.PercentChanges, 99)
		require.InDelta(t, 1.0/148*100, data.PercentChanges[98], 1e-9)

		require.Equal(t, 30, data.ClosePrices.Len())
		keys := domain.Keys(data.ClosePrices)
		require.Equal(t, "2024-03-11", keys[0])
		require.Equal(t, "2024-04-09", keys[29])
		last, ok := data.ClosePrices.Get("2024-04-09")
		require.True(t, ok)
		require.Equal(t, float64(149), last)
		require.Len(t, data.Volume, 30)
		require.Equal(t, int64(1099), data.Volume[29])

		expectedVol, err := AnnualizedVolatility(DailyReturns(closes), 30)
		require.NoError(t, err)
		require.Equal(t, expectedVol, data.Volatility30d)
	})

	t.Run("short history has no trend", func(t *testing.T) {
		data, err := ComputeStockData(barsFromCloses(util.NewDate(2024, 1, 1), []float64{10, 11}))
		require.NoError(t, err)
		require.Equal(t, "", data.Trend90d)
		require.Equal(t, float64(0), data.Volatility30d)
		require.Equal(t, 2, data.ClosePrices.Len())
	})
}

func TestMeanOfLast(t *testing.T) {
	require.InDelta(t, 3.0, MeanOfLast([]float64{100, 1, 2, 3, 4, 5}, 5), 1e-9)
	require.Equal(t, float64(0), MeanOfLast([]float64{1, 2, 3}, 5))
	require.Equal(t, float64(0), MeanOfLast(nil, 5))
}
