package wallet

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/pouch-wallet/internal/api"
	"github/chapool/pouch-wallet/internal/types"
	"github/chapool/pouch-wallet/internal/util"
)

func PostPrivateKeyRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/private-key", postPrivateKeyHandler(s))
}

func postPrivateKeyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body types.PinPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		account, privateKey, err := s.Wallet.UnlockSelectedAccount(c.Request().Context(), swag.StringValue(body.Pin))
		if err != nil {
			return err
		}

		c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

		return util.ValidateAndReturn(c, http.StatusOK, account.ToPostPrivateKeyResponse(privateKey))
	}
}
