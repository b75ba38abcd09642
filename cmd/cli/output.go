package main

import (
	"encoding/json"
	"fmt"
	"io"

	"investmentanalyzer/internal/domain"
	"investmentanalyzer/internal/service"

	"github.com/gocarina/gocsv"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

func writeJson(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type stockRow struct {
	Ticker         string  `csv:"ticker"`
	CompanyName    string  `csv:"company_name"`
	Sector         string  `csv:"sector"`
	CurrentPrice   float64 `csv:"current_price"`
	MarketCap      float64 `csv:"market_cap"`
	PERatio        float64 `csv:"pe_ratio"`
	Beta           float64 `csv:"beta"`
	Volatility30d  float64 `csv:"volatility_30d"`
	RiskAssessment string  `csv:"risk_assessment"`
	Sentiment      string  `csv:"sentiment"`
	Error          string  `csv:"error"`
}

func newStockRow(ticker string, a domain.StockAnalysis) stockRow {
	if a.Error != "" {
		return stockRow{Ticker: ticker, Error: a.Error}
	}
	risk, _ := a.Section(service.SectionRiskAssessment)
	row := stockRow{
		Ticker:         ticker,
		CompanyName:    a.CompanyName,
		Sector:         a.Sector,
		CurrentPrice:   a.CurrentPrice,
		MarketCap:      a.Metrics.MarketCap,
		PERatio:        a.Metrics.PERatio,
		Beta:           a.Metrics.Beta,
		Volatility30d:  a.Metrics.Volatility30d,
		RiskAssessment: risk,
		Error:          a.AnalysisError,
	}
	if a.NewsSentiment != nil {
		row.Sentiment = a.NewsSentiment.Sentiment
	}
	return row
}

func writeStockCsv(w io.Writer, stocks *orderedmap.OrderedMap[string, domain.StockAnalysis]) error {
	rows := []stockRow{}
	for p := stocks.Oldest(); p != nil; p = p.Next() {
		rows = append(rows, newStockRow(p.Key, p.Value))
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write stock csv: %w", err)
	}
	return nil
}

type newsRow struct {
	Title     string `csv:"title"`
	Publisher string `csv:"publisher"`
	Link      string `csv:"link"`
	Date      string `csv:"date"`
	Summary   string `csv:"summary"`
	Error     string `csv:"error"`
}

func writeNewsCsv(w io.Writer, news []domain.NewsItem) error {
	rows := []newsRow{}
	for _, n := range news {
		rows = append(rows, newsRow{
			Title:     n.Title,
			Publisher: n.Publisher,
			Link:      n.Link,
			Date:      n.Date,
			Summary:   n.Summary,
			Error:     n.Error,
		})
	}
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write news csv: %w", err)
	}
	return nil
}

type validityRow struct {
	Ticker string `csv:"ticker" json:"ticker"`
	Valid  bool   `csv:"valid" json:"valid"`
}
