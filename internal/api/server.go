package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github/chapool/pouch-wallet/internal/config"
	"github/chapool/pouch-wallet/internal/metrics"
	"github/chapool/pouch-wallet/internal/store"
	"github/chapool/pouch-wallet/internal/wallet"
)

type Router struct {
	Routes      []*echo.Route
	Root        *echo.Group
	Management  *echo.Group
	APIV1Wallet *echo.Group
}

// Stores are the two backends of a wallet: the secure one for salt and
// ciphertexts, the plain one for metadata.
type Stores struct {
	Secure store.KV
	Meta   store.KV
}

// Close closes both stores.
func (s *Stores) Close() error {
	var result *multierror.Error

	for _, kv := range []store.KV{s.Secure, s.Meta} {
		if kv == nil {
			continue
		}
		if err := kv.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}

// Server is a central struct keeping all the dependencies.
// It is initialized with wire, which handles making the new instances of the components
// in the right order. To add a new component, 3 steps are required:
// - declaring it in this struct
// - adding a provider function in providers.go
// - adding the provider's function name to the arguments of wire.Build() in wire.go
//
// Components labeled as `wire:"-"` will be skipped and have to be initialized after the InitNewServer* call.
// For more information about wire refer to https://pkg.go.dev/github.com/google/wire
type Server struct {
	// skip wire:
	// -> initialized with router.Init(s) function
	Echo   *echo.Echo `wire:"-"`
	Router *Router    `wire:"-"`

	Config   config.Server
	Stores   *Stores
	Registry *prometheus.Registry
	Metrics  *metrics.Service
	Wallet   *wallet.Manager
}

// newServerWithComponents is used by wire to initialize the server components.
// Components not listed here won't be handled by wire and should be initialized separately.
// Components which shouldn't be handled must be labeled `wire:"-"` in Server struct.
func newServerWithComponents(
	cfg config.Server,
	stores *Stores,
	registry *prometheus.Registry,
	metrics *metrics.Service,
	manager *wallet.Manager,
) *Server {
	return &Server{
		Config:   cfg,
		Stores:   stores,
		Registry: registry,
		Metrics:  metrics,
		Wallet:   manager,
	}
}

func NewServer(config config.Server) *Server {
	s := &Server{
		Config: config,
	}

	return s
}

func (s *Server) Ready() bool {
	switch {
	case s.Echo == nil, s.Router == nil:
		log.Debug().Msg("Server router is not initialized")
		return false
	case s.Stores == nil, s.Registry == nil, s.Wallet == nil:
		log.Debug().Msg("Server is not fully initialized")
		return false
	}

	return true
}

func (s *Server) Start() error {
	if !s.Ready() {
		return errors.New("server is not ready")
	}

	if err := s.Echo.Start(s.Config.Echo.ListenAddress); err != nil {
		return fmt.Errorf("failed to start echo server: %w", err)
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) []error {
	log.Warn().Msg("Shutting down server")

	var errs []error

	if s.Echo != nil {
		log.Debug().Msg("Shutting down echo server")

		if err := s.Echo.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to shutdown echo server")
			errs = append(errs, err)
		}
	}

	if s.Stores != nil {
		log.Debug().Msg("Closing wallet stores")

		if err := s.Stores.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close wallet stores")
			errs = append(errs, err)
		}
	}

	return errs
}
