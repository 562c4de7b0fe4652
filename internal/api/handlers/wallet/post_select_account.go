package wallet

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/pouch-wallet/internal/api"
	"github/chapool/pouch-wallet/internal/util"
)

func PostSelectAccountRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/accounts/:index/select", postSelectAccountHandler(s))
}

func postSelectAccountHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		index, err := indexParam(c)
		if err != nil {
			return err
		}

		if err := s.Wallet.SelectAccount(c.Request().Context(), index); err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, s.Wallet.ToGetWalletResponse())
	}
}
