package handlers

import (
	"io"
	"net/http/httptest"
	"testing"

	"timestamp_api_go/config"
	"timestamp_api_go/services"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:           config.DefaultPort,
		Environment:    "test",
		AllowedOrigins: []string{"*"},
		MetricsEnabled: true,
	}
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.JSONSerializer = services.JSONSerializer{}
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return e, c, rec
}

func setupRouter(t *testing.T, cfg *config.Config) (*echo.Echo, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	metrics := services.NewMetrics(reg)
	require.NoError(t, metrics.Register())

	resolver := services.NewResolver(cfg.Debug, metrics)
	return NewRouter(cfg, resolver, metrics, reg), reg
}
