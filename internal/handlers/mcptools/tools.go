// Package mcptools exposes the deck codec as MCP tools over stdio
package mcptools

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/KirkDiggler/deckbuilder-api/internal/codec"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/orchestrators/share"
)

const (
	serverName = "deckbuilder"

	toolDecodeDeck = "decode_deck"
	toolDecodeTeam = "decode_team"
	toolEncodeDeck = "encode_deck"
)

// DecodeInput is the argument of both decode tools
type DecodeInput struct {
	Token string `json:"token" jsonschema:"required,description=Share token taken from a builder URL"`
}

// DeckResult is the output of decode_deck
type DeckResult struct {
	Deck     *entities.Deck      `json:"deck"`
	Warnings map[string][]string `json:"warnings,omitempty"`
}

// TeamResult is the output of decode_team
type TeamResult struct {
	Team     *entities.Team                         `json:"team"`
	Warnings [entities.TeamSize]map[string][]string `json:"warnings"`
}

// EncodeDeckInput is the argument of encode_deck
type EncodeDeckInput struct {
	SpellcasterID string   `json:"spellcaster_id,omitempty" jsonschema:"description=Catalog ID of the spellcaster"`
	SlotIDs       []string `json:"slot_ids,omitempty" jsonschema:"description=Up to five card IDs in slot order. Slot 5 holds the titan."`
	Name          string   `json:"name,omitempty"`
}

// EncodeResult is the output of encode_deck
type EncodeResult struct {
	Token string `json:"token"`
	Path  string `json:"path"`
}

// Config holds the dependencies for the MCP tools
type Config struct {
	Share   share.Service
	Version string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Share == nil {
		vb.RequiredField("Share")
	}

	return vb.Build()
}

// Server hosts the MCP tools
type Server struct {
	mcpServer *server.MCPServer
}

// New registers the deck tools on a fresh MCP server
func New(cfg *Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	version := cfg.Version
	if version == "" {
		version = "dev"
	}

	s := server.NewMCPServer(serverName, version, server.WithToolCapabilities(false))
	s.AddTool(decodeDeckTool(), DecodeDeckHandler(cfg.Share))
	s.AddTool(decodeTeamTool(), DecodeTeamHandler(cfg.Share))
	s.AddTool(encodeDeckTool(), EncodeDeckHandler())

	return &Server{mcpServer: s}, nil
}

// ServeStdio blocks serving the tools on stdin/stdout
func (s *Server) ServeStdio() error {
	if s == nil || s.mcpServer == nil {
		return errors.Internal("mcp server is not configured")
	}
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return errors.Wrap(err, "failed to serve mcp")
	}
	return nil
}

func decodeDeckTool() mcp.Tool {
	return mcp.NewTool(toolDecodeDeck,
		mcp.WithDescription("Decode a deck share token and resolve its cards against the catalog"),
		mcp.WithInputSchema[DecodeInput](),
		mcp.WithOutputSchema[DeckResult](),
	)
}

func decodeTeamTool() mcp.Tool {
	return mcp.NewTool(toolDecodeTeam,
		mcp.WithDescription("Decode a v1 or v2 team share token and resolve its three decks"),
		mcp.WithInputSchema[DecodeInput](),
		mcp.WithOutputSchema[TeamResult](),
	)
}

func encodeDeckTool() mcp.Tool {
	return mcp.NewTool(toolEncodeDeck,
		mcp.WithDescription("Encode card IDs into a deck share token and builder path"),
		mcp.WithInputSchema[EncodeDeckInput](),
		mcp.WithOutputSchema[EncodeResult](),
	)
}

// DecodeDeckHandler loads a deck token as if it arrived in ?d=
func DecodeDeckHandler(svc share.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		token, err := request.RequireString("token")
		if err != nil || token == "" {
			return mcp.NewToolResultError("token is required"), nil
		}

		out, err := svc.LoadShared(ctx, &share.LoadSharedInput{
			Query: url.Values{share.QueryDeck: {token}},
		})
		if err != nil {
			return toolError("decode deck failed", err), nil
		}

		return mcp.NewToolResultStructuredOnly(DeckResult{Deck: out.Deck, Warnings: out.Warnings}), nil
	}
}

// DecodeTeamHandler loads a team token as if it arrived in ?team=
func DecodeTeamHandler(svc share.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		token, err := request.RequireString("token")
		if err != nil || token == "" {
			return mcp.NewToolResultError("token is required"), nil
		}

		out, err := svc.LoadShared(ctx, &share.LoadSharedInput{
			Query: url.Values{share.QueryTeam: {token}},
		})
		if err != nil {
			return toolError("decode team failed", err), nil
		}

		return mcp.NewToolResultStructuredOnly(TeamResult{Team: out.Team, Warnings: out.TeamWarnings}), nil
	}
}

// EncodeDeckHandler packs IDs without consulting the catalog
func EncodeDeckHandler() server.ToolHandlerFunc {
	return func(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var input EncodeDeckInput
		if err := request.BindArguments(&input); err != nil {
			return mcp.NewToolResultErrorFromErr("invalid encode_deck arguments", err), nil
		}
		if len(input.SlotIDs) > entities.SlotCount {
			return mcp.NewToolResultErrorf("slot_ids holds at most %d cards", entities.SlotCount), nil
		}

		deck := codec.StoredDeck{
			SpellcasterID: input.SpellcasterID,
			Name:          codec.SanitizeName(input.Name),
		}
		copy(deck.SlotIDs[:], input.SlotIDs)
		if deck.IsEmpty() {
			return mcp.NewToolResultError("deck has no cards"), nil
		}

		token, err := codec.EncodeDeck(deck)
		if err != nil {
			return toolError("encode deck failed", err), nil
		}

		return mcp.NewToolResultStructuredOnly(EncodeResult{
			Token: token,
			Path:  "/?" + url.Values{share.QueryDeck: {token}}.Encode(),
		}), nil
	}
}

// toolError reports domain failures in the result; internal detail stays in the log
func toolError(text string, err error) *mcp.CallToolResult {
	code := errors.GetCode(err)
	if code.HTTPStatus() >= 500 {
		slog.Error(text, "error", err)
		return mcp.NewToolResultError(text + ": internal error")
	}
	return mcp.NewToolResultErrorf("%s: %s (%s)", text, errors.GetMessage(err), code)
}
