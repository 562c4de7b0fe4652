package wallet

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/pouch-wallet/internal/api"
	"github/chapool/pouch-wallet/internal/types"
	"github/chapool/pouch-wallet/internal/util"
)

func PostImportWalletRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/import", postImportWalletHandler(s))
}

func postImportWalletHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostImportWalletPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		account, err := s.Wallet.ImportWallet(ctx, body.Mnemonic, swag.StringValue(body.Pin))
		if err != nil {
			log.Debug().Err(err).Msg("Failed to import wallet")
			return err
		}

		return util.ValidateAndReturn(c, http.StatusCreated, &types.PostCreateWalletResponse{
			Account: account.ToWalletAccount(),
		})
	}
}
