package ginserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"

	"rentgear/internal/infra/config"
	"rentgear/internal/infra/obs"
)

type QuoteHTTP interface {
	Estimate(c *gin.Context)
}

type WindowHTTP interface {
	Resolve(c *gin.Context)
}

type PlanHTTP interface {
	FreePlan(c *gin.Context)
	TemplateHours(c *gin.Context)
}

type Handlers struct {
	Quote  QuoteHTTP
	Window WindowHTTP
	Plan   PlanHTTP
}

func NewServer(cfg config.Config, obsMW obs.Middleware, health obs.HealthHandlers, h Handlers) *http.Server {
	mode := configureGinMode(cfg.Env)
	if obsMW.Logger != nil {
		obsMW.Logger.Info("gin initialized", "mode", mode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(obsMW.RequestID())
	router.Use(obsMW.LoggerMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Type",
			"X-Request-ID",
		},
		MaxAge: 12 * time.Hour,
	}))

	router.GET("/livez", health.Livez)
	router.GET("/readyz", health.Readyz)

	api := router.Group("/api/v1")
	if h.Quote != nil {
		api.POST("/quotes/estimate", h.Quote.Estimate)
	}
	if h.Window != nil {
		api.POST("/listings/:id/booking-window", h.Window.Resolve)
	}
	if h.Plan != nil {
		api.GET("/listings/:id/free-plan", h.Plan.FreePlan)
		api.POST("/free-plan/template-hours", h.Plan.TemplateHours)
	}

	return &http.Server{Addr: cfg.HTTPAddr, Handler: router}
}

func configureGinMode(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "debug", "dev", "local":
		gin.SetMode(gin.DebugMode)
		return gin.DebugMode
	case "test", "testing":
		gin.SetMode(gin.TestMode)
		return gin.TestMode
	default:
		gin.SetMode(gin.ReleaseMode)
		return gin.ReleaseMode
	}
}
