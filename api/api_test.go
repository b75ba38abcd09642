package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mock_app "investmentanalyzer/internal/app/mocks"
	"investmentanalyzer/internal/domain"
	mock_service "investmentanalyzer/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.uber.org/mock/gomock"
)

type apiTestHarness struct {
	app    *mock_app.MockAnalyzerApp
	market *mock_service.MockMarketDataService
	router *gin.Engine
}

func newApiTestHarness(t *testing.T, enableCors bool) apiTestHarness {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	appMock := mock_app.NewMockAnalyzerApp(ctrl)
	marketMock := mock_service.NewMockMarketDataService(ctrl)
	handler := ApiHandler{
		AnalyzerApp:       appMock,
		MarketDataService: marketMock,
		EnableCors:        enableCors,
	}
	return apiTestHarness{
		app:    appMock,
		market: marketMock,
		router: handler.InitializeRouterEngine(),
	}
}

func (h apiTestHarness) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	h := newApiTestHarness(t, false)
	w := h.do(http.MethodGet, "/api/health", "")

	require.Equal(t, 200, w.Code)
	require.JSONEq(t, `{"status":"ok","service":"investment-analyzer-api"}`, w.Body.String())
	require.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestValidateTicker(t *testing.T) {
	t.Run("missing ticker", func(t *testing.T) {
		h := newApiTestHarness(t, false)
		w := h.do(http.MethodGet, "/api/validate-ticker", "")

		require.Equal(t, 400, w.Code)
		require.JSONEq(t, `{"error":"No ticker provided"}`, w.Body.String())
	})

	t.Run("known ticker", func(t *testing.T) {
		h := newApiTestHarness(t, false)
		h.market.EXPECT().ValidateTicker(gomock.Any(), "AAPL").Return(true)

		w := h.do(http.MethodGet, "/api/validate-ticker?ticker=AAPL", "")

		require.Equal(t, 200, w.Code)
		require.JSONEq(t, `{"ticker":"AAPL","valid":true}`, w.Body.String())
	})
}

func TestAnalyzeStock(t *testing.T) {
	t.Run("missing ticker", func(t *testing.T) {
		h := newApiTestHarness(t, false)
		w := h.do(http.MethodGet, "/api/stock", "")

		require.Equal(t, 400, w.Code)
		require.JSONEq(t, `{"error":"No ticker provided"}`, w.Body.String())
	})

	t.Run("fetch failure is a 200 with an error body", func(t *testing.T) {
		h := newApiTestHarness(t, false)
		h.app.EXPECT().
			AnalyzeStock(gomock.Any(), "ZZZZ").
			Return(domain.NewStockAnalysisError("No historical data available"))

		w := h.do(http.MethodGet, "/api/stock?ticker=ZZZZ", "")

		require.Equal(t, 200, w.Code)
		require.JSONEq(t, `{"error":"No historical data available"}`, w.Body.String())
	})

	t.Run("analysis", func(t *testing.T) {
		h := newApiTestHarness(t, false)
		h.app.EXPECT().
			AnalyzeStock(gomock.Any(), "AAPL").
			Return(domain.StockAnalysis{
				Ticker:       "AAPL",
				CompanyName:  "Apple Inc.",
				Sector:       "Technology",
				CurrentPrice: 190.5,
				Analysis:     orderedmap.New[string, string](),
			})

		w := h.do(http.MethodGet, "/api/stock?ticker=AAPL", "")

		require.Equal(t, 200, w.Code)
		require.Contains(t, w.Body.String(), `"company_name":"Apple Inc."`)
		require.Contains(t, w.Body.String(), `"current_price":190.5`)
		require.NotContains(t, w.Body.String(), `"news"`)
	})
}

func TestAnalyzePortfolio(t *testing.T) {
	badRequests := []struct {
		name string
		body string
		want string
	}{
		{name: "empty body", body: "", want: `{"error":"No tickers provided in request body"}`},
		{name: "missing field", body: `{"symbols":["AAPL"]}`, want: `{"error":"No tickers provided in request body"}`},
		{name: "not an array", body: `{"tickers":"AAPL"}`, want: `{"error":"Tickers must be a non-empty array"}`},
		{name: "empty array", body: `{"tickers":[]}`, want: `{"error":"Tickers must be a non-empty array"}`},
	}
	for _, tc := range badRequests {
		t.Run(tc.name, func(t *testing.T) {
			h := newApiTestHarness(t, false)
			w := h.do(http.MethodPost, "/api/portfolio", tc.body)

			require.Equal(t, 400, w.Code)
			require.JSONEq(t, tc.want, w.Body.String())
		})
	}

	t.Run("invalid tickers", func(t *testing.T) {
		h := newApiTestHarness(t, false)
		h.app.EXPECT().
			AnalyzePortfolio(gomock.Any(), []string{"AAPL", "XXXX", "YYYY"}).
			Return(nil, domain.InvalidTickersError{Tickers: []string{"XXXX", "YYYY"}})

		w := h.do(http.MethodPost, "/api/portfolio", `{"tickers":["AAPL","XXXX","YYYY"]}`)

		require.Equal(t, 200, w.Code)
		require.JSONEq(t, `{"error":"Invalid ticker(s): XXXX, YYYY"}`, w.Body.String())
	})

	t.Run("portfolio", func(t *testing.T) {
		h := newApiTestHarness(t, false)
		stocks := orderedmap.New[string, domain.StockAnalysis]()
		stocks.Set("MSFT", domain.NewStockAnalysisError("No historical data available"))
		sectors := orderedmap.New[string, float64]()
		sectors.Set("Unknown", 100)
		h.app.EXPECT().
			AnalyzePortfolio(gomock.Any(), []string{"MSFT"}).
			Return(&domain.PortfolioAnalysis{
				Stocks: stocks,
				PortfolioMetrics: domain.PortfolioMetrics{
					RiskLevel:          domain.RiskMedium,
					SectorDistribution: sectors,
				},
			}, nil)

		w := h.do(http.MethodPost, "/api/portfolio", `{"tickers":["MSFT"]}`)

		require.Equal(t, 200, w.Code)
		require.JSONEq(t, `{
			"stocks": {"MSFT": {"error": "No historical data available"}},
			"portfolio_metrics": {"risk_level": "medium", "sector_distribution": {"Unknown": 100}}
		}`, w.Body.String())
	})
}

func TestGetNews(t *testing.T) {
	t.Run("missing ticker", func(t *testing.T) {
		h := newApiTestHarness(t, false)
		w := h.do(http.MethodGet, "/api/news", "")

		require.Equal(t, 400, w.Code)
		require.JSONEq(t, `{"error":"No ticker provided"}`, w.Body.String())
	})

	for _, limit := range []string{"abc", "-1", "2.5"} {
		t.Run("bad limit "+limit, func(t *testing.T) {
			h := newApiTestHarness(t, false)
			w := h.do(http.MethodGet, "/api/news?ticker=AAPL&limit="+limit, "")

			require.Equal(t, 400, w.Code)
			require.JSONEq(t, `{"error":"Limit must be a non-negative integer"}`, w.Body.String())
		})
	}

	t.Run("default limit", func(t *testing.T) {
		h := newApiTestHarness(t, false)
		h.market.EXPECT().FetchNews(gomock.Any(), "AAPL", 10).Return([]domain.NewsItem{
			{Title: "Apple ships", Publisher: "Reuters", Link: "https://example.com/a", Date: "2024-06-13", Summary: "No summary available"},
		})

		w := h.do(http.MethodGet, "/api/news?ticker=AAPL", "")

		require.Equal(t, 200, w.Code)
		require.JSONEq(t, `{
			"ticker": "AAPL",
			"news": [{
				"title": "Apple ships",
				"publisher": "Reuters",
				"link": "https://example.com/a",
				"date": "2024-06-13",
				"summary": "No summary available"
			}]
		}`, w.Body.String())
	})

	t.Run("zero limit returns an empty list", func(t *testing.T) {
		h := newApiTestHarness(t, false)
		h.market.EXPECT().FetchNews(gomock.Any(), "AAPL", 0).Return(nil)

		w := h.do(http.MethodGet, "/api/news?ticker=AAPL&limit=0", "")

		require.Equal(t, 200, w.Code)
		require.JSONEq(t, `{"ticker":"AAPL","news":[]}`, w.Body.String())
	})
}

func TestCors(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		h := newApiTestHarness(t, true)
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		h.router.ServeHTTP(w, req)

		require.Equal(t, 200, w.Code)
		require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("disabled", func(t *testing.T) {
		h := newApiTestHarness(t, false)
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		h.router.ServeHTTP(w, req)

		require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
