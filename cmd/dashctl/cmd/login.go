package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the syncboard server",
	Long:  "Authenticates with username and password and saves the session token locally.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Print("Username: ")
		var username string
		if _, err := fmt.Scanln(&username); err != nil {
			return fmt.Errorf("read username: %w", err)
		}

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		result, err := app.Login(ctx, username, string(password))
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		if err := app.SaveToken(); err != nil {
			return fmt.Errorf("save token: %w", err)
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(result)
		}

		color.Green("Logged in as %s (%s)", result.Username, result.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the saved session token",
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := app.ClearToken(); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}
