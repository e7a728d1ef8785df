package export

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/matillion/members-fetcher/internal/directory"
	"go.uber.org/zap"
)

// ErrExportInProgress is returned when an export is requested while another
// one is still running in this process.
var ErrExportInProgress = errors.New("an export is already running")

// progressEvery is how many rows are processed between progress log lines
const progressEvery = 10

// Options holds the throttling policy of an export
type Options struct {
	// SidebarScrapeDelay is the pause between roster scan steps.
	SidebarScrapeDelay time.Duration
	// MemberScrapeDelay is the pause after each member profile lookup.
	MemberScrapeDelay time.Duration
}

// Result summarizes a finished export
type Result struct {
	Guild   directory.Guild `json:"guild"`
	File    FileRef         `json:"file"`
	Members int             `json:"members"`
	Roster  int             `json:"roster"`
	Elapsed time.Duration   `json:"elapsed"`
}

type Exporter struct {
	dir    directory.Directory
	files  RowWriter
	logger *zap.Logger
	opts   Options

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error

	running sync.Mutex
}

func NewExporter(dir directory.Directory, files RowWriter, logger *zap.Logger, opts Options) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{
		dir:    dir,
		files:  files,
		logger: logger,
		opts:   opts,
		now:    time.Now,
		sleep:  sleepContext,
	}
}

// Export enumerates every member of guild, looks up each member's mutual
// guilds and friends, and writes one CSV row per member to filename (or a
// generated name when filename is empty). The account running the export is
// left out. Nothing is written unless every lookup succeeds.
func (e *Exporter) Export(ctx context.Context, guild directory.Guild, filename string) (Result, error) {
	if !e.running.TryLock() {
		return Result{}, ErrExportInProgress
	}
	defer e.running.Unlock()

	start := e.now()
	logger := e.logger.With(zap.Uint64("guild_id", guild.ID), zap.String("guild_name", guild.Name))
	logger.Info("Preparing member export", zap.String("output_dir", e.files.Dir()))

	filename = ResolveFilename(guild.Name, filename, start)

	channels, err := e.dir.FetchChannels(ctx, guild.ID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to fetch channels: %w", err)
	}
	textChannels := directory.TextChannels(channels)
	for _, ch := range channels {
		if ch.Kind != directory.ChannelText {
			logger.Debug("Skipping channel for roster scan",
				zap.String("channel", ch.Name),
				zap.Stringer("kind", ch.Kind))
		}
	}
	logger.Info("Found text channels, using them for roster scan",
		zap.Int("text_channels", len(textChannels)),
		zap.Int("channels", len(channels)))

	logger.Info("Fetching members")
	members, err := e.dir.FetchMembers(ctx, guild.ID, directory.RosterOptions{
		Channels:    textChannels,
		ForceScrape: true,
		Delay:       e.opts.SidebarScrapeDelay,
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to fetch members: %w", err)
	}
	total := len(members)
	logger.Info("Found members", zap.Int("members", total))

	rows, err := e.buildRows(ctx, logger, guild.ID, members)
	if err != nil {
		return Result{}, err
	}
	logger.Info("All members processed", zap.Int("rows", len(rows)))

	ref, err := e.files.WriteRows(filename, rows)
	if err != nil {
		return Result{}, fmt.Errorf("failed to write export: %w", err)
	}

	elapsed := e.now().Sub(start)
	logger.Info("Member export saved",
		zap.String("path", ref.Path),
		zap.Int("rows", len(rows)),
		zap.Int64("bytes", ref.Bytes),
		zap.Duration("elapsed", elapsed))

	return Result{
		Guild:   guild,
		File:    ref,
		Members: len(rows),
		Roster:  total,
		Elapsed: elapsed,
	}, nil
}

// buildRows fetches the profile of each member in roster order and converts
// it into a row, pausing after every member.
func (e *Exporter) buildRows(ctx context.Context, logger *zap.Logger, guildID uint64, members []directory.Member) ([]Row, error) {
	self := e.dir.Self()
	total := len(members)
	rows := make([]Row, 0, total)

	for _, m := range members {
		if m.ID == self.ID {
			continue
		}

		profile, err := e.dir.FetchProfile(ctx, guildID, m.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch profile of member %d: %w", m.ID, err)
		}
		if !hasGuild(profile, guildID) {
			logger.Warn("Profile does not list the exported guild, mutual guild count will be off by one",
				zap.Uint64("user_id", m.ID),
				zap.Int("mutual_guilds", len(profile.MutualGuilds)))
		}

		rows = append(rows, BuildRow(m, profile, guildID))

		if processed := len(rows); processed%progressEvery == 0 {
			logger.Info("Members processed",
				zap.Int("processed", processed),
				zap.Int("total", total),
				zap.Float64("percent", percent(processed, total)))
		}

		if err := e.sleep(ctx, e.opts.MemberScrapeDelay); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// percent returns part/total as a percentage rounded to one decimal place
func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(total)*1000) / 10
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
