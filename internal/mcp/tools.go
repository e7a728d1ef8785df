package mcp

import (
	"context"
	"fmt"
	"strconv"

	"github.com/matillion/members-fetcher/internal/directory"
	"github.com/matillion/members-fetcher/internal/export"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// GuildFetcher resolves guild ids
//
//go:generate go tool mockgen -source=$GOFILE -destination=tools_mocks.go -package=mcp
type GuildFetcher interface {
	FetchGuild(ctx context.Context, guildID uint64) (directory.Guild, error)
}

// MemberExporter runs a member export
type MemberExporter interface {
	Export(ctx context.Context, guild directory.Guild, filename string) (export.Result, error)
}

// Tools implements ToolHandler on top of a guild directory and an exporter
type Tools struct {
	guilds   GuildFetcher
	exporter MemberExporter
}

func NewTools(guilds GuildFetcher, exporter MemberExporter) *Tools {
	return &Tools{guilds: guilds, exporter: exporter}
}

// GetGuildInput defines input for looking up a guild
type GetGuildInput struct {
	GuildID string `json:"guild_id" jsonschema:"Guild ID (numeric snowflake)"`
}

// GuildInfo represents a Discord guild. IDs are strings since snowflakes
// overflow JSON numbers.
type GuildInfo struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	MemberCount   int    `json:"approximate_member_count"`
	PresenceCount int    `json:"approximate_presence_count"`
}

// GetGuildOutput contains guild information
type GetGuildOutput struct {
	Guild GuildInfo `json:"guild"`
}

func (t *Tools) GetGuild(ctx context.Context, req *mcp.CallToolRequest, input GetGuildInput) (*mcp.CallToolResult, GetGuildOutput, error) {
	guild, err := t.fetchGuild(ctx, input.GuildID)
	if err != nil {
		return nil, GetGuildOutput{}, err
	}
	return nil, GetGuildOutput{Guild: toGuildInfo(guild)}, nil
}

// ExportMembersInput defines input for exporting guild members
type ExportMembersInput struct {
	GuildID  string `json:"guild_id" jsonschema:"Guild ID (numeric snowflake)"`
	Filename string `json:"filename,omitempty" jsonschema:"Output file name. Sanitized, .csv is appended. Default: guild name plus a timestamp"`
}

// ExportMembersOutput contains a file reference and a summary of the export
type ExportMembersOutput struct {
	Guild          GuildInfo      `json:"guild"`
	File           export.FileRef `json:"file"`
	Members        int            `json:"members"`
	ElapsedSeconds float64        `json:"elapsed_seconds"`
}

// ExportMembers writes the guild's members to a CSV file.
// The rows are not returned to save tokens.
func (t *Tools) ExportMembers(ctx context.Context, req *mcp.CallToolRequest, input ExportMembersInput) (*mcp.CallToolResult, ExportMembersOutput, error) {
	guild, err := t.fetchGuild(ctx, input.GuildID)
	if err != nil {
		return nil, ExportMembersOutput{}, err
	}

	result, err := t.exporter.Export(ctx, guild, input.Filename)
	if err != nil {
		return nil, ExportMembersOutput{}, fmt.Errorf("failed to export members: %w", err)
	}

	return nil, ExportMembersOutput{
		Guild:          toGuildInfo(result.Guild),
		File:           result.File,
		Members:        result.Members,
		ElapsedSeconds: result.Elapsed.Seconds(),
	}, nil
}

func (t *Tools) fetchGuild(ctx context.Context, rawID string) (directory.Guild, error) {
	if rawID == "" {
		return directory.Guild{}, fmt.Errorf("guild_id is required")
	}
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		return directory.Guild{}, fmt.Errorf("invalid guild_id %q: must be a numeric ID", rawID)
	}
	guild, err := t.guilds.FetchGuild(ctx, id)
	if err != nil {
		return directory.Guild{}, fmt.Errorf("failed to get guild: %w", err)
	}
	return guild, nil
}

func toGuildInfo(g directory.Guild) GuildInfo {
	return GuildInfo{
		ID:            strconv.FormatUint(g.ID, 10),
		Name:          g.Name,
		MemberCount:   g.ApproximateMemberCount,
		PresenceCount: g.ApproximatePresenceCount,
	}
}
