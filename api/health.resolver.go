package api

import "github.com/gin-gonic/gin"

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

func (m ApiHandler) health(c *gin.Context) {
	c.JSON(200, healthResponse{
		Status:  "ok",
		Service: "investment-analyzer-api",
	})
}
