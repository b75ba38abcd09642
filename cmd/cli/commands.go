package main

import (
	"fmt"

	"investmentanalyzer/internal/domain"
	"investmentanalyzer/internal/service"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var stockCmd = &cobra.Command{
	Use:   "stock [ticker]",
	Short: "Analyze a single stock",
	Args:  cobra.ExactArgs(1),
	RunE:  runStock,
}

func runStock(c *cobra.Command, args []string) error {
	ctx, done := commandContext(c)
	defer done()

	analysis := apiHandler.AnalyzerApp.AnalyzeStock(ctx, args[0])
	if outputCsv {
		stocks := orderedmap.New[string, domain.StockAnalysis]()
		stocks.Set(args[0], analysis)
		return writeStockCsv(c.OutOrStdout(), stocks)
	}
	return writeJson(c.OutOrStdout(), analysis)
}

var portfolioCmd = &cobra.Command{
	Use:   "portfolio [ticker...]",
	Short: "Analyze a set of stocks as a portfolio",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPortfolio,
}

func runPortfolio(c *cobra.Command, args []string) error {
	ctx, done := commandContext(c)
	defer done()

	result, err := apiHandler.AnalyzerApp.AnalyzePortfolio(ctx, args)
	if err != nil {
		return err
	}
	if outputCsv {
		return writeStockCsv(c.OutOrStdout(), result.Stocks)
	}
	return writeJson(c.OutOrStdout(), result)
}

var newsLimit int

var newsCmd = &cobra.Command{
	Use:   "news [ticker]",
	Short: "List recent headlines for a stock",
	Args:  cobra.ExactArgs(1),
	RunE:  runNews,
}

func init() {
	newsCmd.Flags().IntVar(&newsLimit, "limit", service.DefaultNewsLimit, "Maximum number of headlines")
}

func runNews(c *cobra.Command, args []string) error {
	if newsLimit < 0 {
		return fmt.Errorf("limit must be a non-negative integer, got %d", newsLimit)
	}
	ctx, done := commandContext(c)
	defer done()

	news := apiHandler.MarketDataService.FetchNews(ctx, args[0], newsLimit)
	if outputCsv {
		return writeNewsCsv(c.OutOrStdout(), news)
	}
	if news == nil {
		news = []domain.NewsItem{}
	}
	return writeJson(c.OutOrStdout(), news)
}

var validateCmd = &cobra.Command{
	Use:   "validate [ticker...]",
	Short: "Check whether tickers are known to the market data provider",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runValidate,
}

func runValidate(c *cobra.Command, args []string) error {
	ctx, done := commandContext(c)
	defer done()

	validity := apiHandler.MarketDataService.BatchValidate(ctx, args)
	rows := []validityRow{}
	for p := validity.Oldest(); p != nil; p = p.Next() {
		rows = append(rows, validityRow{Ticker: p.Key, Valid: p.Value})
	}
	if outputCsv {
		return gocsv.Marshal(&rows, c.OutOrStdout())
	}
	return writeJson(c.OutOrStdout(), rows)
}
