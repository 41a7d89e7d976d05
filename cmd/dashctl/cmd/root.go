package cmd

import (
	"fmt"
	"os"

	"syncboard/internal/app/client"
	"syncboard/internal/app/client/config"
	"syncboard/internal/utils/logger"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

var (
	cfg        *config.Config
	log        *slog.Logger
	app        *client.App
	jsonOutput bool
	serverURL  string
)

var rootCmd = &cobra.Command{
	Use:   "dashctl",
	Short: "dashctl - CLI for the syncboard dashboard API",
	Long: `dashctl talks to a running syncboard server: log in, trigger
synchronization of external sources and inspect aggregate metrics.

The session token obtained at login is stored under ~/.syncboard and
reused by later invocations until it expires.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(_ *cobra.Command, _ []string) error {
	cfg = config.MustLoad()
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}

	log = logger.New(cfg.Env)

	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("init client: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print raw JSON responses")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "syncboard server URL")
}
