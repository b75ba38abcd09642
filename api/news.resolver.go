package api

import (
	"errors"
	"strconv"

	"investmentanalyzer/internal/domain"
	"investmentanalyzer/internal/service"

	"github.com/gin-gonic/gin"
)

var errInvalidLimit = errors.New("Limit must be a non-negative integer")

type getNewsResponse struct {
	Ticker string            `json:"ticker"`
	News   []domain.NewsItem `json:"news"`
}

func (m ApiHandler) getNews(c *gin.Context) {
	ticker := c.Query("ticker")
	if ticker == "" {
		returnErrorJsonCode(errNoTicker, c, 400)
		return
	}

	limit := service.DefaultNewsLimit
	if raw, ok := c.GetQuery("limit"); ok {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			returnErrorJsonCode(errInvalidLimit, c, 400)
			return
		}
		limit = parsed
	}

	news := m.MarketDataService.FetchNews(requestContext(c), ticker, limit)
	if news == nil {
		news = []domain.NewsItem{}
	}
	c.JSON(200, getNewsResponse{
		Ticker: ticker,
		News:   news,
	})
}
