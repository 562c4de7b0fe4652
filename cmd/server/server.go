package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/pouch-wallet/internal/api"
	"github/chapool/pouch-wallet/internal/api/router"
	"github/chapool/pouch-wallet/internal/util/command"
)

const shutdownTimeout = 10 * time.Second

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Starts the local wallet API",
		Long: `Starts the local wallet API

Requires configuration through ENV.
Binds to 127.0.0.1:8080 unless SERVER_ECHO_LISTEN_ADDRESS says otherwise.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context())
		},
	}
}

func runServer(ctx context.Context) error {
	cfg := command.ServerConfig()
	command.ConfigureLogger(cfg)

	s, err := api.InitNewServer(cfg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize server")
		return err
	}

	if err := router.Init(s); err != nil {
		log.Error().Err(err).Msg("Failed to initialize router")
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("address", cfg.Echo.ListenAddress).Bool("has_wallet", s.Wallet.HasWallet()).Msg("Starting server")
		errCh <- s.Start()
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if errs := s.Shutdown(shutdownCtx); len(errs) > 0 {
		log.Error().Errs("shutdownErrors", errs).Msg("Failed to gracefully shut down server")
	}

	if err != nil {
		log.Error().Err(err).Msg("Server stopped")
	}

	return err
}
