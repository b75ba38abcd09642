package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) analyzeStock(c *gin.Context) {
	ticker := c.Query("ticker")
	if ticker == "" {
		returnErrorJsonCode(errNoTicker, c, 400)
		return
	}

	// a failed fetch still returns 200 with an error body
	result := m.AnalyzerApp.AnalyzeStock(requestContext(c), ticker)
	c.JSON(200, result)
}
