package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/matillion/members-fetcher/internal/directory"
	"github.com/matillion/members-fetcher/internal/discord"
	"github.com/matillion/members-fetcher/internal/export"
	"go.uber.org/zap"
)

// Replier sends a reply to a chat message
//
//go:generate go tool mockgen -source=$GOFILE -destination=dispatcher_mocks.go -package=bot
type Replier interface {
	Reply(msg discord.Message, content string) error
}

// GuildResolver identifies the account and resolves guild ids
type GuildResolver interface {
	Self() directory.Member
	FetchGuild(ctx context.Context, guildID uint64) (directory.Guild, error)
}

// Exporter runs a member export
type Exporter interface {
	Export(ctx context.Context, guild directory.Guild, filename string) (export.Result, error)
}

type queuedCommand struct {
	msg discord.Message
	inv Invocation
}

// Dispatcher turns chat commands from the account itself into exports.
// Fetches are queued and run one at a time in the order received; every other
// command is answered as soon as it arrives, even while an export runs.
type Dispatcher struct {
	resolver GuildResolver
	exporter Exporter
	replier  Replier
	logger   *zap.Logger
	shutdown func()
	queue    chan queuedCommand
}

func NewDispatcher(resolver GuildResolver, exporter Exporter, replier Replier, logger *zap.Logger, queueSize int, shutdown func()) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if queueSize < 1 {
		queueSize = 1
	}
	if shutdown == nil {
		shutdown = func() {}
	}
	return &Dispatcher{
		resolver: resolver,
		exporter: exporter,
		replier:  replier,
		logger:   logger,
		shutdown: shutdown,
		queue:    make(chan queuedCommand, queueSize),
	}
}

// Submit accepts msg if it is a command written by the account itself and
// reports whether it was accepted. Fetch commands are queued for Run; the
// others are handled before Submit returns.
func (d *Dispatcher) Submit(msg discord.Message) bool {
	if msg.AuthorID != d.resolver.Self().ID {
		return false
	}
	inv := Parse(msg.Content)
	if inv.Command == Ignore {
		return false
	}
	d.logger.Info("Received command",
		zap.Stringer("command", inv.Command),
		zap.Strings("args", inv.Args))

	if inv.Command != Fetch {
		d.respond(msg, inv)
		return true
	}

	select {
	case d.queue <- queuedCommand{msg: msg, inv: inv}:
		return true
	default:
		d.logger.Warn("Command queue full, dropping command", zap.String("content", msg.Content))
		d.reply(msg, BusyMessage)
		return false
	}
}

// Run runs queued fetches until ctx is done
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-d.queue:
			d.fetch(ctx, cmd.msg, cmd.inv)
		}
	}
}

// respond answers every command except Fetch. Shutdown calls the hook right
// away so an export in progress is abandoned.
func (d *Dispatcher) respond(msg discord.Message, inv Invocation) {
	switch inv.Command {
	case Help:
		d.reply(msg, HelpMessage)
	case Shutdown:
		d.reply(msg, ShutdownMessage)
		d.shutdown()
	case NotACommand:
		d.reply(msg, NotACommandMessage)
	default:
		d.reply(msg, BadlyFormattedMessage)
	}
}

func (d *Dispatcher) fetch(ctx context.Context, msg discord.Message, inv Invocation) {
	guild, err := d.resolveGuild(ctx, inv.GuildArg())
	if err != nil {
		d.logger.Error("Failed to fetch guild",
			zap.String("guild_arg", inv.GuildArg()),
			zap.Error(discord.WrapError(d.logger, "fetch_guild", err)))
		d.reply(msg, FetchGuildFailedMessage)
		return
	}

	d.reply(msg, fmt.Sprintf(fetchingMessage, guild.Name))

	result, err := d.exporter.Export(ctx, guild, inv.FilenameArg())
	if err != nil {
		if ctx.Err() != nil {
			d.logger.Info("Export abandoned", zap.Uint64("guild_id", guild.ID), zap.Error(err))
			return
		}
		d.logger.Error("Failed to fetch members",
			zap.Uint64("guild_id", guild.ID),
			zap.Error(discord.WrapError(d.logger, "export_members", err)))
		if errors.Is(err, export.ErrExportInProgress) {
			d.reply(msg, BusyMessage)
			return
		}
		d.reply(msg, FetchMembersFailedMessage)
		return
	}

	d.logger.Info("Export finished",
		zap.Uint64("guild_id", guild.ID),
		zap.Int("members", result.Members),
		zap.Duration("elapsed", result.Elapsed))
	d.reply(msg, fmt.Sprintf(fetchedMessage, result.Members, guild.Name, result.Elapsed.Seconds()))
}

// resolveGuild parses a guild id argument and fetches the guild
func (d *Dispatcher) resolveGuild(ctx context.Context, arg string) (directory.Guild, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil {
		return directory.Guild{}, fmt.Errorf("invalid guild id %q: %w", arg, directory.ErrGuildNotFound)
	}
	return d.resolver.FetchGuild(ctx, id)
}

func (d *Dispatcher) reply(msg discord.Message, content string) {
	if err := d.replier.Reply(msg, content); err != nil {
		d.logger.Error("Failed to reply", zap.String("message_id", msg.ID), zap.Error(err))
	}
}
