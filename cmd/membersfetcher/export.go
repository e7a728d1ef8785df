package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/matillion/members-fetcher/internal/export"
	"github.com/spf13/cobra"
)

func newExportCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "export <guild_id> [file_name]",
		Short: "Export the members of a guild once and exit",
		Long: `Export every member of a guild to a CSV file in the output directory.

When file_name is omitted the file is named after the guild and the current
time. The file name is sanitized and .csv is appended.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			guildID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid guild id %q: must be a numeric ID", args[0])
			}
			var filename string
			if len(args) == 2 {
				filename = args[1]
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runExport(ctx, cmd.OutOrStdout(), *configPath, guildID, filename)
		},
	}
}

func runExport(ctx context.Context, out io.Writer, configPath string, guildID uint64, filename string) error {
	a, err := newApp(ctx, configPath)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	guild, err := a.client.FetchGuild(ctx, guildID)
	if err != nil {
		return fmt.Errorf("failed to fetch guild: %w", err)
	}

	fmt.Fprintf(out, "Fetching members from guild %q, this may take a while...\n", guild.Name)
	result, err := a.exporter.Export(ctx, guild, filename)
	if err != nil {
		return fmt.Errorf("failed to fetch members: %w", err)
	}

	printResult(out, result)
	return nil
}

func printResult(out io.Writer, result export.Result) {
	fmt.Fprintf(out, "Successfully fetched %d member.s from %q in %.2f seconds.\n",
		result.Members, result.Guild.Name, result.Elapsed.Seconds())
	fmt.Fprintf(out, "Wrote %s (%d bytes)\n", result.File.Path, result.File.Bytes)
}
