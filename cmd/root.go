package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/pouch-wallet/cmd/db"
	"github/chapool/pouch-wallet/cmd/env"
	"github/chapool/pouch-wallet/cmd/probe"
	"github/chapool/pouch-wallet/cmd/server"
	"github/chapool/pouch-wallet/cmd/wallet"
	"github/chapool/pouch-wallet/internal/config"
	"github/chapool/pouch-wallet/internal/util/command"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Version: config.GetFormattedBuildArgs(),
	Use:     "pouch",
	Short:   config.ModuleName,
	Long: fmt.Sprintf(`%v

A local EVM wallet: key derivation, PIN based secret encryption and
account management, usable through the CLI or a local JSON API.
Requires configuration through ENV or flags.`, config.ModuleName),
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	if err := command.BindPersistentFlags(rootCmd); err != nil {
		log.Fatal().Err(err).Msg("Failed to bind flags")
	}

	// attach the subcommands
	rootCmd.AddCommand(
		db.New(),
		env.New(),
		probe.New(),
		server.New(),
		wallet.New(),
	)

	// Interrupting a PIN prompt cancels the pending operation.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to execute root command")
		stop()
		os.Exit(1)
	}
}
