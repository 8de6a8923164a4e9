package handlers

import (
	"log"

	"timestamp_api_go/config"
	"timestamp_api_go/middleware"
	"timestamp_api_go/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the echo instance with every route and middleware.
// gatherer backs /metrics and may be nil when metrics are disabled.
func NewRouter(cfg *config.Config, resolver *services.Resolver, metrics *services.Metrics, gatherer prometheus.Gatherer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.JSONSerializer = services.JSONSerializer{}

	// Middleware
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))
	if metrics != nil {
		e.Use(middleware.Metrics(metrics))
	}

	e.GET("/health", HealthHandler)

	api := e.Group("/api/timestamp")
	{
		api.GET("", TimestampHandler(resolver))
		api.GET("/:"+DateStringParam, TimestampHandler(resolver))
	}

	if cfg.MetricsEnabled && gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	} else {
		log.Println("[INFO] Metrics endpoint disabled")
	}

	return e
}
