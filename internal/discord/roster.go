package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/matillion/members-fetcher/internal/directory"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	memberPageSize  = 1000
	scanMessageSize = 100
)

// codeOnlyBotsCanUseEndpoint is returned when a user account lists members
const codeOnlyBotsCanUseEndpoint = 20002

// FetchMembers assembles the roster of a guild. Members are listed page by
// page; with ForceScrape the given channels are then scanned for authors the
// listing missed. Every step waits opts.Delay after the previous one.
//
// User accounts cannot list members. When the listing is refused the roster
// is built from the channel scan alone, whatever opts.ForceScrape says.
func (c *Client) FetchMembers(ctx context.Context, guildID uint64, opts directory.RosterOptions) ([]directory.Member, error) {
	gid := formatID(guildID)
	limiter := newStepLimiter(opts)
	seen := make(map[string]bool)

	members, err := c.listMembers(ctx, limiter, gid, seen)
	scan := opts.ForceScrape
	if err != nil {
		if !isListingDenied(err) {
			return nil, err
		}
		c.logger.Warn("Member listing refused, discovering members from channel messages",
			zap.String("guild_id", gid),
			zap.Int("channels", len(opts.Channels)),
			zap.Error(err))
		members = nil
		scan = true
	}

	if !scan {
		return members, nil
	}

	for _, ch := range opts.Channels {
		found, err := c.scanChannel(ctx, limiter, gid, formatID(ch.ID), seen)
		if err != nil {
			return nil, err
		}
		members = append(members, found...)
		c.logger.Debug("Scanned channel",
			zap.String("channel", ch.Name),
			zap.Int("discovered", len(found)))
	}
	return members, nil
}

// listMembers pages through the guild's member list
func (c *Client) listMembers(ctx context.Context, limiter *rate.Limiter, gid string, seen map[string]bool) ([]directory.Member, error) {
	var members []directory.Member
	after := ""
	for {
		if err := limiter.Wait(ctx); err != nil {
			return nil, err
		}

		var page []*discordgo.Member
		err := withRetry(ctx, c.logger, func() error {
			var e error
			page, e = c.api.GuildMembers(gid, after, memberPageSize, discordgo.WithContext(ctx))
			return e
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list members after %q: %w", after, err)
		}

		for _, m := range page {
			if m.User == nil || seen[m.User.ID] {
				continue
			}
			seen[m.User.ID] = true
			members = append(members, toDirectoryMember(m))
		}
		c.logger.Debug("Fetched member page",
			zap.String("guild_id", gid),
			zap.Int("page_size", len(page)),
			zap.Int("members", len(members)))

		if len(page) < memberPageSize {
			return members, nil
		}
		after = page[len(page)-1].User.ID
	}
}

// scanChannel reads the latest messages of a channel and resolves authors
// that are not in seen. Authors who have since left the guild are skipped.
func (c *Client) scanChannel(ctx context.Context, limiter *rate.Limiter, guildID, channelID string, seen map[string]bool) ([]directory.Member, error) {
	if err := limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var messages []*discordgo.Message
	err := withRetry(ctx, c.logger, func() error {
		var e error
		messages, e = c.api.ChannelMessages(channelID, scanMessageSize, "", "", "", discordgo.WithContext(ctx))
		return e
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan channel %s: %w", channelID, err)
	}

	var found []directory.Member
	for _, msg := range messages {
		if msg.Author == nil || msg.WebhookID != "" || seen[msg.Author.ID] {
			continue
		}
		seen[msg.Author.ID] = true

		if err := limiter.Wait(ctx); err != nil {
			return nil, err
		}
		var m *discordgo.Member
		err := withRetry(ctx, c.logger, func() error {
			var e error
			m, e = c.api.GuildMember(guildID, msg.Author.ID, discordgo.WithContext(ctx))
			return e
		})
		if isUnknownMember(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to fetch member %s: %w", msg.Author.ID, err)
		}
		if m.User == nil {
			m.User = msg.Author
		}
		found = append(found, toDirectoryMember(m))
	}
	return found, nil
}

// newStepLimiter allows one roster step per opts.Delay
func newStepLimiter(opts directory.RosterOptions) *rate.Limiter {
	if opts.Delay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(opts.Delay), 1)
}

// isListingDenied reports whether the account may not list guild members
func isListingDenied(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return false
	}
	if restErr.Message != nil {
		switch restErr.Message.Code {
		case codeOnlyBotsCanUseEndpoint, discordgo.ErrCodeMissingAccess:
			return true
		}
	}
	return restErr.Response != nil && restErr.Response.StatusCode == http.StatusForbidden
}

func isUnknownMember(err error) bool {
	var restErr *discordgo.RESTError
	return errors.As(err, &restErr) && restErr.Message != nil && restErr.Message.Code == discordgo.ErrCodeUnknownMember
}

func toDirectoryMember(m *discordgo.Member) directory.Member {
	member := toDirectoryUser(m.User)
	member.JoinedAt = m.JoinedAt
	if m.Nick != "" {
		member.DisplayName = m.Nick
	}
	return member
}

func toDirectoryUser(u *discordgo.User) directory.Member {
	created, _ := discordgo.SnowflakeTimestamp(u.ID)
	display := u.GlobalName
	if display == "" {
		display = u.Username
	}
	return directory.Member{
		ID:          parseID(u.ID),
		Username:    u.Username,
		DisplayName: display,
		CreatedAt:   created,
	}
}
