package cmd

import (
	"context"
	"fmt"

	"investmentanalyzer/api"
	"investmentanalyzer/internal/app"
	"investmentanalyzer/internal/logger"
	"investmentanalyzer/internal/repository"
	"investmentanalyzer/internal/service"
	"investmentanalyzer/internal/util"
	"investmentanalyzer/pkg/yahoo"
)

func InitializeDependencies(ctx context.Context) (*api.ApiHandler, *util.Secrets, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	textGenerationRepository, err := repository.NewTextGenerationRepository(ctx, *secrets)
	if err != nil {
		return nil, nil, err
	}

	yahooClient := yahoo.NewClient()
	priceRepository := repository.NewPriceRepository()
	quoteRepository := repository.NewQuoteRepository(yahooClient)

	newsRepository := repository.NewYahooNewsRepository(yahooClient)
	if secrets.Alpaca.Enabled() {
		newsRepository = repository.NewFallbackNewsRepository(
			repository.NewAlpacaNewsRepository(secrets.Alpaca.ApiKey, secrets.Alpaca.ApiSecret),
			newsRepository,
		)
	}

	marketDataService := service.NewMarketDataService(
		priceRepository,
		quoteRepository,
		newsRepository,
	)
	narrativeService := service.NewNarrativeService(textGenerationRepository)

	analyzerApp := app.NewAnalyzerApp(
		marketDataService,
		narrativeService,
		app.AnalyzerOptions{
			EnableNewsSentiment:    secrets.EnableNewsSentiment,
			EnableTrendForecasting: secrets.EnableTrendForecasting,
			MaxConcurrency:         secrets.MaxConcurrency,
		},
	)

	logger.FromContext(ctx).Infow(
		"initialized dependencies",
		"llmProvider", secrets.LlmProvider,
		"alpacaNews", secrets.Alpaca.Enabled(),
		"newsSentiment", secrets.EnableNewsSentiment,
		"trendForecasting", secrets.EnableTrendForecasting,
	)

	apiHandler := &api.ApiHandler{
		AnalyzerApp:       analyzerApp,
		MarketDataService: marketDataService,
		EnableCors:        secrets.EnableCors,
	}

	return apiHandler, secrets, nil
}
