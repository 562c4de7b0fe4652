package router

import (
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"github/chapool/pouch-wallet/internal/api"
	"github/chapool/pouch-wallet/internal/api/handlers"
	"github/chapool/pouch-wallet/internal/api/middleware"
)

// Init creates the echo instance and attaches all middlewares and routes to s.
func Init(s *api.Server) error {
	s.Echo = echo.New()

	s.Echo.Debug = s.Config.Echo.Debug
	s.Echo.HideBanner = true
	s.Echo.HidePort = true
	s.Echo.Logger.SetOutput(&echoLogWriter{})

	s.Echo.HTTPErrorHandler = HTTPErrorHandler

	s.Echo.Pre(echoMiddleware.RemoveTrailingSlash())

	s.Echo.Use(
		echoMiddleware.Recover(),
		echoMiddleware.RequestID(),
		middleware.LoggerWithConfig(s.Config.Logger.RequestLevel, nil),
		echoMiddleware.BodyLimit("64K"),
	)

	s.Router = &api.Router{
		Routes:      nil,
		Root:        s.Echo.Group(""),
		Management:  s.Echo.Group("/-"),
		APIV1Wallet: s.Echo.Group("/api/v1/wallet"),
	}

	s.Router.Routes = handlers.AttachAllRoutes(s)

	log.Debug().Int("routes", len(s.Router.Routes)).Msg("Attached routes")

	return nil
}

// echoLogWriter forwards echo's internal log output to zerolog.
type echoLogWriter struct{}

func (w *echoLogWriter) Write(p []byte) (int, error) {
	log.Debug().Str("component", "echo").Msg(string(p))
	return len(p), nil
}
