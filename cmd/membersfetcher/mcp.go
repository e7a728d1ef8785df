package main

import (
	"github.com/matillion/members-fetcher/internal/mcp"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMCPCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the export tools to an agent over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, *configPath)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			server := mcp.CreateServer(a.logger, mcp.NewTools(a.client, a.exporter), version)
			if err := server.Run(ctx, &sdkmcp.StdioTransport{}); err != nil {
				a.logger.Error("Server error", zap.Error(err))
				return err
			}
			return nil
		},
	}
}
