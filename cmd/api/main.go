package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/wishmas/core/cmd/api/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wishmas",
		Short: "WishMas API Server",
		Long:  `WishMas is a family Christmas wish list service: users compose and send wish lists, parents read them, and a developer space manages accounts, announcements and passwords.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewAccountCommand())
	rootCmd.AddCommand(commands.NewListsCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
