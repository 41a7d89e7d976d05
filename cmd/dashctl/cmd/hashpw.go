package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

var hashpwCmd = &cobra.Command{
	Use:   "hashpw",
	Short: "Generate a bcrypt hash for the server users file",
	Long: `Prompts for a password and prints its bcrypt hash, suitable for
the password_hash field of the server's users file.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		fmt.Print("Repeat password: ")
		confirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		if string(password) != string(confirm) {
			return fmt.Errorf("passwords do not match")
		}

		hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		fmt.Println(string(hash))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hashpwCmd)
}
