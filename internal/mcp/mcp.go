package mcp

import (
	"context"

	"github.com/matillion/members-fetcher/internal/discord"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// errorWrappingHandler wraps a ToolHandler to provide enhanced error messages
type errorWrappingHandler struct {
	handler ToolHandler
	logger  *zap.Logger
}

func (h *errorWrappingHandler) GetGuild(ctx context.Context, req *mcp.CallToolRequest, input GetGuildInput) (*mcp.CallToolResult, GetGuildOutput, error) {
	result, output, err := h.handler.GetGuild(ctx, req, input)
	return result, output, discord.WrapError(h.logger, "get_guild", err)
}

func (h *errorWrappingHandler) ExportMembers(ctx context.Context, req *mcp.CallToolRequest, input ExportMembersInput) (*mcp.CallToolResult, ExportMembersOutput, error) {
	result, output, err := h.handler.ExportMembers(ctx, req, input)
	return result, output, discord.WrapError(h.logger, "export_members", err)
}

// ToolHandler defines the interface for Discord tool operations
//
//go:generate go tool mockgen -source=$GOFILE -destination=mcp_mocks.go -package=mcp
type ToolHandler interface {
	GetGuild(ctx context.Context, req *mcp.CallToolRequest, input GetGuildInput) (*mcp.CallToolResult, GetGuildOutput, error)
	ExportMembers(ctx context.Context, req *mcp.CallToolRequest, input ExportMembersInput) (*mcp.CallToolResult, ExportMembersOutput, error)
}

// CreateServer creates an MCP server with the member export tools registered
func CreateServer(logger *zap.Logger, handler ToolHandler, version string) *mcp.Server {
	logger.Info("Starting MCP server")
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "membersfetcher",
			Version: version,
		},
		nil,
	)

	wrappedHandler := &errorWrappingHandler{handler: handler, logger: logger}
	registerTools(server, wrappedHandler)
	logger.Info("Members fetcher server initialized, starting transport")
	return server
}

func registerTools(server *mcp.Server, handler ToolHandler) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "discord_get_guild",
		Description: "Look up a Discord guild by ID. Returns the guild name and approximate member and online counts.",
	}, handler.GetGuild)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "discord_export_members",
		Description: "Export every member of a Discord guild to a CSV file, including mutual guilds and mutual friends for each member. Slow on large guilds. Returns a file reference and the number of members written.",
	}, handler.ExportMembers)
}
