package api

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errNoTicker = errors.New("No ticker provided")

type validateTickerResponse struct {
	Ticker string `json:"ticker"`
	Valid  bool   `json:"valid"`
}

func (m ApiHandler) validateTicker(c *gin.Context) {
	ticker := c.Query("ticker")
	if ticker == "" {
		returnErrorJsonCode(errNoTicker, c, 400)
		return
	}

	valid := m.MarketDataService.ValidateTicker(requestContext(c), ticker)
	c.JSON(200, validateTickerResponse{
		Ticker: ticker,
		Valid:  valid,
	})
}
