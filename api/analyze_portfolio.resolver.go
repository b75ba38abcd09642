package api

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
)

var (
	errNoTickersInBody = errors.New("No tickers provided in request body")
	errTickersNotArray = errors.New("Tickers must be a non-empty array")
)

type analyzePortfolioRequest struct {
	// raw so a non-array value can be told apart from a missing one
	Tickers *json.RawMessage `json:"tickers"`
}

func (m ApiHandler) analyzePortfolio(c *gin.Context) {
	var requestBody analyzePortfolioRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil || requestBody.Tickers == nil {
		returnErrorJsonCode(errNoTickersInBody, c, 400)
		return
	}

	tickers := []string{}
	if err := json.Unmarshal(*requestBody.Tickers, &tickers); err != nil || len(tickers) == 0 {
		returnErrorJsonCode(errTickersNotArray, c, 400)
		return
	}

	result, err := m.AnalyzerApp.AnalyzePortfolio(requestContext(c), tickers)
	if err != nil {
		returnDomainErrorJson(err, c)
		return
	}

	c.JSON(200, result)
}
