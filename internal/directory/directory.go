package directory

import (
	"context"
	"errors"
	"time"
)

// ErrGuildNotFound is returned when a guild id does not resolve to a guild
// the account can see.
var ErrGuildNotFound = errors.New("guild not found or inaccessible")

// Directory defines the remote lookups the member export depends on
//
//go:generate go tool mockgen -source=$GOFILE -destination=directory_mocks.go -package=directory
type Directory interface {
	// Self returns the authenticated account.
	Self() Member
	FetchGuild(ctx context.Context, guildID uint64) (Guild, error)
	FetchChannels(ctx context.Context, guildID uint64) ([]Channel, error)
	FetchMembers(ctx context.Context, guildID uint64, opts RosterOptions) ([]Member, error)
	FetchProfile(ctx context.Context, guildID, userID uint64) (Profile, error)
}

// Guild is a community the account belongs to
type Guild struct {
	ID                       uint64 `json:"id"`
	Name                     string `json:"name"`
	ApproximateMemberCount   int    `json:"approximate_member_count"`
	ApproximatePresenceCount int    `json:"approximate_presence_count"`
}

// ChannelKind classifies a guild channel
type ChannelKind int

const (
	ChannelOther ChannelKind = iota
	ChannelText
	ChannelVoice
	ChannelCategory
)

func (k ChannelKind) String() string {
	switch k {
	case ChannelText:
		return "text"
	case ChannelVoice:
		return "voice"
	case ChannelCategory:
		return "category"
	default:
		return "other"
	}
}

// Channel is a guild channel. Text channels are used as roster scan surfaces.
type Channel struct {
	ID      uint64
	GuildID uint64
	Name    string
	Kind    ChannelKind
}

// TextChannels returns the text channels of channels, preserving order.
func TextChannels(channels []Channel) []Channel {
	text := make([]Channel, 0, len(channels))
	for _, ch := range channels {
		if ch.Kind == ChannelText {
			text = append(text, ch)
		}
	}
	return text
}

// Member is a guild member as returned by a roster fetch
type Member struct {
	ID          uint64
	Username    string
	DisplayName string
	JoinedAt    time.Time
	CreatedAt   time.Time
}

// Ref names a mutual guild or a mutual friend
type Ref struct {
	ID   uint64
	Name string
}

// Profile holds the relationship data of one member relative to the account
type Profile struct {
	MutualGuilds  []Ref
	MutualFriends []Ref
}

// RosterOptions controls how a roster is assembled
type RosterOptions struct {
	// Channels are scanned for members the listing did not return.
	Channels []Channel
	// ForceScrape enables the slower channel scan.
	ForceScrape bool
	// Delay is the pause between scan steps.
	Delay time.Duration
}
