package probe

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/pouch-wallet/internal/util/command"
)

const readinessTimeout = 5 * time.Second

func newReadiness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Checks that the running server is ready",
		Long: `Requests /-/ready of the server listening on SERVER_ECHO_LISTEN_ADDRESS.
Exits with a non-zero code if it does not answer with 200.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			verbose, _ := cmd.Flags().GetBool(verboseFlag)
			return runReadiness(cmd.Context(), "http://"+command.ServerConfig().Echo.ListenAddress+"/-/ready", verbose)
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output.")

	return cmd
}

func runReadiness(ctx context.Context, url string, verbose bool) error {
	ctx, cancel := context.WithTimeout(ctx, readinessTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("readiness request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("server not ready: status %d", res.StatusCode)
	}

	if verbose {
		log.Info().Str("url", url).Msg("Server is ready")
	}

	return nil
}
