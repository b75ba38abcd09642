package domain

import (
	"encoding/json"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	TrendUpward   = "upward"
	TrendDownward = "downward"
)

// PriceBar is one daily bar of price history
type PriceBar struct {
	Date   time.Time
	Close  float64
	High   float64
	Low    float64
	Volume int64
}

// StockData holds the metrics derived from a trailing year of bars
type StockData struct {
	CurrentPrice     float64
	FiftyTwoWeekHigh float64
	FiftyTwoWeekLow  float64
	Volatility30d    float64
	// empty when there is not enough history to compare against
	Trend90d       string
	PercentChanges []float64
	// last 30 closes keyed by YYYY-MM-DD, oldest first
	ClosePrices *orderedmap.OrderedMap[string, float64]
	Volume      []int64
}

// CompanyInfo is the fundamentals payload for a ticker. Numeric fields
// are nil when the provider did not return them.
type CompanyInfo struct {
	Symbol             string
	LongName           string
	Sector             string
	Industry           string
	MarketCap          *float64
	TrailingPE         *float64
	DividendYield      *float64
	Beta               *float64
	AverageVolume      *float64
	RegularMarketPrice *float64
	CurrentPrice       *float64
}

// HasLivePrice reports whether the payload carried any live price field
func (c CompanyInfo) HasLivePrice() bool {
	return c.RegularMarketPrice != nil || c.CurrentPrice != nil
}

func (c CompanyInfo) NameOrUnknown() string {
	return stringOrUnknown(c.LongName)
}

func (c CompanyInfo) SectorOrUnknown() string {
	return stringOrUnknown(c.Sector)
}

func stringOrUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

// FloatOrZero dereferences optional provider values
func FloatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

type NewsItem struct {
	Title     string `json:"title"`
	Publisher string `json:"publisher"`
	Link      string `json:"link"`
	Date      string `json:"date"`
	Summary   string `json:"summary"`

	// set instead of the fields above when the provider failed
	Error string `json:"-"`
}

func NewNewsError(msg string) NewsItem {
	return NewsItem{Error: msg}
}

func (n NewsItem) MarshalJSON() ([]byte, error) {
	if n.Error != "" {
		return json.Marshal(errorPayload{Error: n.Error})
	}
	type plain NewsItem
	return json.Marshal(plain(n))
}

type errorPayload struct {
	Error string `json:"error"`
}
