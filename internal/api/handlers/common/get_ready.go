package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/pouch-wallet/internal/api"
	"github/chapool/pouch-wallet/internal/api/httperrors"
)

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/ready", getReadyHandler(s))
}

// Readiness check
// This endpoint returns 200 when the wallet manager and its stores are set up.
func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			return c.String(httperrors.StatusNotReady, "Not ready.")
		}

		return c.String(http.StatusOK, "Ready.")
	}
}
