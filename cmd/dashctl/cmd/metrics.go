package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show aggregate metrics across synced sources",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !app.IsAuthenticated() {
			return fmt.Errorf("not logged in, run: dashctl login")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		summary, err := app.Metrics(ctx)
		if err != nil {
			return fmt.Errorf("fetch metrics: %w", err)
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(summary)
		}

		header := color.New(color.Bold, color.FgCyan)

		header.Println("Orders")
		fmt.Printf("  total: %d  pending: %d  completed: %d  revenue: %.2f\n",
			summary.Orders.Total, summary.Orders.Pending,
			summary.Orders.Completed, summary.Orders.Revenue)

		header.Println("Stripe")
		fmt.Printf("  total: %d  volume: %.2f\n",
			summary.Stripe.Total, summary.Stripe.Volume)

		header.Println("GitHub")
		fmt.Printf("  total: %d  open: %d\n",
			summary.GitHub.Total, summary.GitHub.Open)

		header.Println("Weather")
		fmt.Printf("  cities: %d  readings: %d\n",
			summary.Weather.Cities, summary.Weather.Readings)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}
