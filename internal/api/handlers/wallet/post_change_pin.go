package wallet

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/pouch-wallet/internal/api"
	"github/chapool/pouch-wallet/internal/types"
	"github/chapool/pouch-wallet/internal/util"
)

func PostChangePinRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/pin", postChangePinHandler(s))
}

func postChangePinHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		var body types.PostChangePinPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		if err := s.Wallet.ChangePin(ctx, swag.StringValue(body.OldPin), swag.StringValue(body.NewPin)); err != nil {
			util.LogFromContext(ctx).Debug().Err(err).Msg("Failed to change pin")
			return err
		}

		return c.NoContent(http.StatusNoContent)
	}
}
