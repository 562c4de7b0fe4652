package common

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github/chapool/pouch-wallet/internal/api"
)

func GetMetricsRoute(s *api.Server) *echo.Route {
	return s.Router.Root.GET("/metrics", getMetricsHandler(s))
}

func getMetricsHandler(s *api.Server) echo.HandlerFunc {
	h := promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{})

	return func(c echo.Context) error {
		if !s.Config.Metrics.Enabled {
			return echo.ErrNotFound
		}

		h.ServeHTTP(c.Response(), c.Request())

		return nil
	}
}
