package wallet

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/pouch-wallet/internal/api"
	"github/chapool/pouch-wallet/internal/types"
	"github/chapool/pouch-wallet/internal/util"
)

func PutRenameAccountRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.PUT("/accounts/:index/name", putRenameAccountHandler(s))
}

func putRenameAccountHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		index, err := indexParam(c)
		if err != nil {
			return err
		}

		var body types.PutRenameAccountPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		if err := s.Wallet.RenameAccount(c.Request().Context(), index, swag.StringValue(body.Name)); err != nil {
			return err
		}

		return util.ValidateAndReturn(c, http.StatusOK, s.Wallet.ToGetWalletResponse())
	}
}
