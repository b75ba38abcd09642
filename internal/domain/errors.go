package domain

import (
	"errors"
	"fmt"
	"strings"
)

// messages on these errors are returned to api callers as-is

var ErrNoData = errors.New("No historical data available")

var ErrNoTickers = errors.New("No tickers provided")

// FetchError wraps any failure talking to the market data provider
type FetchError struct {
	Symbol string
	Err    error
}

func (e FetchError) Error() string {
	return fmt.Sprintf("Failed to fetch stock data: %s", e.Err.Error())
}

func (e FetchError) Unwrap() error {
	return e.Err
}

type InvalidTickersError struct {
	Tickers []string
}

func (e InvalidTickersError) Error() string {
	return fmt.Sprintf("Invalid ticker(s): %s", strings.Join(e.Tickers, ", "))
}
