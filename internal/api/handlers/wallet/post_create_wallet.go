package wallet

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/pouch-wallet/internal/api"
	"github/chapool/pouch-wallet/internal/types"
	"github/chapool/pouch-wallet/internal/util"
	"github/chapool/pouch-wallet/internal/wallet/derivation"
)

func PostCreateWalletRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("", postCreateWalletHandler(s))
}

func postCreateWalletHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body types.PostCreateWalletPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		res := &types.PostCreateWalletResponse{}

		words := body.Mnemonic
		if len(words) == 0 {
			generated, err := derivation.NewMnemonic(derivation.DefaultEntropySize)
			if err != nil {
				log.Error().Err(err).Msg("Failed to generate mnemonic")
				return err
			}
			words = generated
			res.Mnemonic = generated
		}

		account, err := s.Wallet.CreateWallet(ctx, words, swag.StringValue(body.Pin))
		if err != nil {
			log.Debug().Err(err).Msg("Failed to create wallet")
			return err
		}
		res.Account = account.ToWalletAccount()

		return util.ValidateAndReturn(c, http.StatusCreated, res)
	}
}
