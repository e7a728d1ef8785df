package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matillion/members-fetcher/internal/bot"
	"github.com/matillion/members-fetcher/internal/discord"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Listen for chat commands and export members on request",
		Long: `Connect to Discord and wait for commands sent by the account itself:

  mf help
  mf fetch <guild_id> [<file_name>]
  mf shutdown

Commands are handled one at a time, in the order they are received.
The process exits on "mf shutdown", SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot(cmd.Context(), *configPath)
		},
	}
}

func runBot(ctx context.Context, configPath string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, configPath)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	gateway := discord.NewGateway(a.client.Session(), a.logger)
	dispatcher := bot.NewDispatcher(a.client, a.exporter, gateway, a.logger, a.cfg.QueueSize, stop)

	if err := gateway.Open(func(msg discord.Message) { dispatcher.Submit(msg) }); err != nil {
		return fmt.Errorf("failed to connect to Discord: %w", err)
	}
	defer gateway.Close()

	a.logger.Info("Listening for commands", zap.String("output_path", a.cfg.OutputPath))
	if err := dispatcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	a.logger.Info("Goodbye world")
	return nil
}
