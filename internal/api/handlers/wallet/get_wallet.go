package wallet

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/pouch-wallet/internal/api"
	"github/chapool/pouch-wallet/internal/util"
)

func GetWalletRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.GET("", getWalletHandler(s))
}

func getWalletHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		return util.ValidateAndReturn(c, http.StatusOK, s.Wallet.ToGetWalletResponse())
	}
}
