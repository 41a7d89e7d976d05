package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"syncboard/internal/app/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync <source>",
	Short: "Trigger a synchronization run on the server",
	Long: `Pulls one batch from the named source into the dashboard store.
Requires an admin token. Valid sources: ` + strings.Join(client.SyncSources, ", ") + `.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !app.IsAuthenticated() {
			return fmt.Errorf("not logged in, run: dashctl login")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		result, err := app.Sync(ctx, args[0])
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(result)
		}

		if result.Synced == 0 {
			color.Yellow("Nothing new from %s (0 records)", result.Source)
			return nil
		}
		color.Green("Synced %d records from %s", result.Synced, result.Source)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
