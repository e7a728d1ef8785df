package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "membersfetcher",
		Short: "Export the members of a Discord guild to CSV",
		Long: `Members Fetcher exports every member of a Discord guild to a CSV file,
with each member's mutual guilds and mutual friends.

Exports can be started from chat ("mf fetch <guild_id>") while the run command
is active, from the terminal with the export command, or by an agent through
the MCP server.

The account token is read from DISCORD_TOKEN (environment, .env file or the
config file).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: membersfetcher.yaml)")

	rootCmd.AddCommand(
		newRunCommand(&configPath),
		newExportCommand(&configPath),
		newMCPCommand(&configPath),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
