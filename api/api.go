package api

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"investmentanalyzer/internal/app"
	"investmentanalyzer/internal/domain"
	"investmentanalyzer/internal/logger"
	"investmentanalyzer/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	AnalyzerApp       app.AnalyzerApp
	MarketDataService service.MarketDataService
	EnableCors        bool
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	if m.EnableCors {
		router.Use(cors.Default())
	}
	router.Use(m.logRequestMiddlware)

	group := router.Group("/api")
	group.GET("/health", m.health)
	group.GET("/validate-ticker", m.validateTicker)
	group.GET("/stock", m.analyzeStock)
	group.POST("/portfolio", m.analyzePortfolio)
	group.GET("/news", m.getNews)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c).Warnf("request failed with %d: %s", code, err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// domain rejections are reported in the body with a 200
func returnDomainErrorJson(err error, c *gin.Context) {
	c.JSON(200, gin.H{
		"error": err.Error(),
	})
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

const requestIDHeader = "X-Request-ID"

func (m ApiHandler) logRequestMiddlware(c *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
	c.Writer = w

	requestID := uuid.New()
	lg := logger.FromContext(c).With(
		"requestID", requestID.String(),
		"method", c.Request.Method,
		"route", c.Request.URL.Path,
	)
	c.Set(logger.ContextKey, lg)
	c.Header(requestIDHeader, requestID.String())

	profile, endProfile := domain.NewProfile()
	c.Set(domain.ContextProfileKey, profile)

	start := time.Now().UTC()
	c.Next()
	endProfile()

	spans, err := profile.ToJsonBytes()
	if err != nil {
		lg.Warnf("failed to serialize performance profile: %s", err.Error())
	}

	status := c.Writer.Status()
	fields := []interface{}{
		"status", status,
		"durationMs", time.Since(start).Milliseconds(),
		"spans", string(spans),
	}
	if status >= 400 {
		fields = append(fields, "responseBody", w.body.String())
		lg.Warnw("request completed", fields...)
		return
	}
	lg.Infow("request completed", fields...)
}

// requestContext carries the request logger and profile into app code
// without holding on to the gin context
func requestContext(c *gin.Context) context.Context {
	ctx := logger.NewContext(c.Request.Context(), logger.FromContext(c))
	profile, _ := domain.GetProfile(c)
	return domain.NewCtxWithProfile(ctx, profile)
}
