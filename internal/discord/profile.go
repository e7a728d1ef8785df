package discord

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bwmarrin/discordgo"
	"github.com/matillion/members-fetcher/internal/directory"
)

// profileResponse is the subset of the user profile payload we read
type profileResponse struct {
	MutualGuilds []struct {
		ID string `json:"id"`
	} `json:"mutual_guilds"`
	MutualFriends []*discordgo.User `json:"mutual_friends"`
}

func profileURL(guildID, userID uint64) string {
	q := url.Values{}
	q.Set("with_mutual_guilds", "true")
	q.Set("with_mutual_friends", "true")
	q.Set("guild_id", formatID(guildID))
	return discordgo.EndpointUser(formatID(userID)) + "/profile?" + q.Encode()
}

// FetchProfile fetches the mutual guilds and mutual friends of a member, as
// seen from the authenticated account. Mutual guilds are named from the guild
// index; a guild missing from it is named by its id.
func (c *Client) FetchProfile(ctx context.Context, guildID, userID uint64) (directory.Profile, error) {
	var body []byte
	err := withRetry(ctx, c.logger, func() error {
		var e error
		body, e = c.api.RequestWithBucketID(http.MethodGet, profileURL(guildID, userID), nil,
			discordgo.EndpointUsers+"profile", discordgo.WithContext(ctx))
		return e
	})
	if err != nil {
		return directory.Profile{}, fmt.Errorf("failed to fetch profile of %d: %w", userID, err)
	}

	var resp profileResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return directory.Profile{}, fmt.Errorf("failed to decode profile of %d: %w", userID, err)
	}

	profile := directory.Profile{
		MutualGuilds:  make([]directory.Ref, 0, len(resp.MutualGuilds)),
		MutualFriends: make([]directory.Ref, 0, len(resp.MutualFriends)),
	}
	for _, g := range resp.MutualGuilds {
		id := parseID(g.ID)
		name, ok := c.guilds.Name(id)
		if !ok {
			name = g.ID
		}
		profile.MutualGuilds = append(profile.MutualGuilds, directory.Ref{ID: id, Name: name})
	}
	for _, f := range resp.MutualFriends {
		if f == nil {
			continue
		}
		profile.MutualFriends = append(profile.MutualFriends, directory.Ref{ID: parseID(f.ID), Name: f.Username})
	}
	return profile, nil
}
