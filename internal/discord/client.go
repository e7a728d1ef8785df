package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/matillion/members-fetcher/internal/directory"
	"go.uber.org/zap"
)

// DiscordAPI defines the Discord REST methods used by the client
//
//go:generate go tool mockgen -source=$GOFILE -destination=client_mocks.go -package=discord
type DiscordAPI interface {
	User(userID string, options ...discordgo.RequestOption) (*discordgo.User, error)
	UserGuilds(limit int, beforeID, afterID string, withCounts bool, options ...discordgo.RequestOption) ([]*discordgo.UserGuild, error)
	GuildWithCounts(guildID string, options ...discordgo.RequestOption) (*discordgo.Guild, error)
	GuildChannels(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Channel, error)
	GuildMembers(guildID string, after string, limit int, options ...discordgo.RequestOption) ([]*discordgo.Member, error)
	GuildMember(guildID, userID string, options ...discordgo.RequestOption) (*discordgo.Member, error)
	ChannelMessages(channelID string, limit int, beforeID, afterID, aroundID string, options ...discordgo.RequestOption) ([]*discordgo.Message, error)
	RequestWithBucketID(method, urlStr string, data interface{}, bucketID string, options ...discordgo.RequestOption) ([]byte, error)
}

// Config holds configuration for the Discord client
type Config struct {
	// Token of the user account that runs exports (required). Member profiles
	// are only served to user accounts, so bot tokens cannot export.
	Token string
}

const (
	userGuildsPageSize = 200
	requestTimeout     = 20 * time.Second
)

type Client struct {
	api     DiscordAPI
	session *discordgo.Session
	guilds  *guildIndex
	logger  *zap.Logger
	self    directory.Member
}

func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("discord token is required")
	}

	session, err := discordgo.New(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	// Rate limits are retried by withRetry so waits are logged and cancellable.
	session.ShouldRetryOnRateLimit = false
	session.Client = &http.Client{
		Timeout:   requestTimeout,
		Transport: newLoggingTransport(http.DefaultTransport, logger),
	}
	session.SyncEvents = true
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	c := &Client{
		api:     session,
		session: session,
		guilds:  newGuildIndex(),
		logger:  logger,
	}

	return c, nil
}

// newClientWithAPI creates a client with a given DiscordAPI (for testing)
func newClientWithAPI(api DiscordAPI, guilds *guildIndex, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if guilds == nil {
		guilds = newGuildIndex()
	}
	return &Client{
		api:    api,
		guilds: guilds,
		logger: logger,
	}
}

// Authenticate resolves the account behind the token and indexes the names
// of every guild it belongs to.
func (c *Client) Authenticate(ctx context.Context) error {
	var user *discordgo.User
	err := withRetry(ctx, c.logger, func() error {
		var e error
		user, e = c.api.User("@me", discordgo.WithContext(ctx))
		return e
	})
	if err != nil {
		return fmt.Errorf("failed to fetch current user: %w", err)
	}
	c.self = toDirectoryUser(user)

	if err := c.loadGuilds(ctx); err != nil {
		return err
	}

	c.logger.Info("Authenticated",
		zap.String("user", user.Username),
		zap.Uint64("user_id", c.self.ID),
		zap.Int("guilds", c.guilds.Size()))
	return nil
}

// loadGuilds pages through the account's guilds and feeds the guild index.
func (c *Client) loadGuilds(ctx context.Context) error {
	after := ""
	for {
		var page []*discordgo.UserGuild
		err := withRetry(ctx, c.logger, func() error {
			var e error
			page, e = c.api.UserGuilds(userGuildsPageSize, "", after, false, discordgo.WithContext(ctx))
			return e
		})
		if err != nil {
			return fmt.Errorf("failed to list guilds: %w", err)
		}
		for _, g := range page {
			c.guilds.Add(parseID(g.ID), g.Name)
		}
		if len(page) < userGuildsPageSize {
			return nil
		}
		after = page[len(page)-1].ID
	}
}

// Self returns the authenticated account. It is the zero Member until
// Authenticate succeeds.
func (c *Client) Self() directory.Member {
	return c.self
}

// Session returns the underlying session for the chat gateway
func (c *Client) Session() *discordgo.Session {
	return c.session
}

// FetchGuild fetches a guild with approximate member and presence counts.
// Unknown or inaccessible guilds yield an error wrapping directory.ErrGuildNotFound.
func (c *Client) FetchGuild(ctx context.Context, guildID uint64) (directory.Guild, error) {
	var g *discordgo.Guild
	err := withRetry(ctx, c.logger, func() error {
		var e error
		g, e = c.api.GuildWithCounts(formatID(guildID), discordgo.WithContext(ctx))
		return e
	})
	if err != nil {
		if isGuildNotFound(err) {
			return directory.Guild{}, fmt.Errorf("guild %d: %w: %v", guildID, directory.ErrGuildNotFound, err)
		}
		return directory.Guild{}, fmt.Errorf("failed to fetch guild %d: %w", guildID, err)
	}
	if g == nil {
		return directory.Guild{}, fmt.Errorf("guild %d: %w", guildID, directory.ErrGuildNotFound)
	}

	guild := directory.Guild{
		ID:                       parseID(g.ID),
		Name:                     g.Name,
		ApproximateMemberCount:   g.ApproximateMemberCount,
		ApproximatePresenceCount: g.ApproximatePresenceCount,
	}
	c.guilds.Add(guild.ID, guild.Name)
	return guild, nil
}

// FetchChannels lists the channels of a guild
func (c *Client) FetchChannels(ctx context.Context, guildID uint64) ([]directory.Channel, error) {
	var channels []*discordgo.Channel
	err := withRetry(ctx, c.logger, func() error {
		var e error
		channels, e = c.api.GuildChannels(formatID(guildID), discordgo.WithContext(ctx))
		return e
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channels: %w", err)
	}

	out := make([]directory.Channel, 0, len(channels))
	for _, ch := range channels {
		out = append(out, directory.Channel{
			ID:      parseID(ch.ID),
			GuildID: parseID(ch.GuildID),
			Name:    ch.Name,
			Kind:    channelKind(ch.Type),
		})
	}
	return out, nil
}

func channelKind(t discordgo.ChannelType) directory.ChannelKind {
	switch t {
	case discordgo.ChannelTypeGuildText, discordgo.ChannelTypeGuildNews:
		return directory.ChannelText
	case discordgo.ChannelTypeGuildVoice, discordgo.ChannelTypeGuildStageVoice:
		return directory.ChannelVoice
	case discordgo.ChannelTypeGuildCategory:
		return directory.ChannelCategory
	default:
		return directory.ChannelOther
	}
}

func isGuildNotFound(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return false
	}
	if restErr.Message != nil {
		switch restErr.Message.Code {
		case discordgo.ErrCodeUnknownGuild, discordgo.ErrCodeMissingAccess:
			return true
		}
	}
	return restErr.Response != nil &&
		(restErr.Response.StatusCode == http.StatusNotFound || restErr.Response.StatusCode == http.StatusForbidden)
}

// parseID converts a snowflake string to its numeric form. Malformed ids map to 0.
func parseID(s string) uint64 {
	id, _ := strconv.ParseUint(s, 10, 64)
	return id
}

func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}
