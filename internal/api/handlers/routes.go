package handlers

import (
	"github.com/labstack/echo/v4"
	"github/chapool/pouch-wallet/internal/api"
	"github/chapool/pouch-wallet/internal/api/handlers/common"
	"github/chapool/pouch-wallet/internal/api/handlers/wallet"
)

func AttachAllRoutes(s *api.Server) []*echo.Route {
	// attach our routes
	return []*echo.Route{
		common.GetReadyRoute(s),
		common.GetMetricsRoute(s),
		wallet.GetWalletRoute(s),
		wallet.PostCreateWalletRoute(s),
		wallet.PostImportWalletRoute(s),
		wallet.DeleteWalletRoute(s),
		wallet.PostAddAccountRoute(s),
		wallet.PutRenameAccountRoute(s),
		wallet.PostSelectAccountRoute(s),
		wallet.PostPrivateKeyRoute(s),
		wallet.PostMnemonicRoute(s),
		wallet.PostChangePinRoute(s),
	}
}
