package wallet

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/pouch-wallet/internal/api"
	"github/chapool/pouch-wallet/internal/types"
	"github/chapool/pouch-wallet/internal/util"
)

func PostAddAccountRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/accounts", postAddAccountHandler(s))
}

func postAddAccountHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PinPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		account, err := s.Wallet.AddAccount(ctx, swag.StringValue(body.Pin))
		if err != nil {
			log.Debug().Err(err).Msg("Failed to add account")
			return err
		}

		return util.ValidateAndReturn(c, http.StatusCreated, account.ToWalletAccount())
	}
}
