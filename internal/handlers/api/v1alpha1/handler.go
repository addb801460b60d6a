// Package v1alpha1 serves the deck codec over gRPC
package v1alpha1

import (
	"context"
	"log/slog"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/deckbuilder-api/internal/codec"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
)

// Team token versions reported by DecodeTeam
const (
	TeamVersionV1 = "v1"
	TeamVersionV2 = "v2"
)

// EncodeDeckRequest is the payload of EncodeDeck
type EncodeDeckRequest struct {
	Deck codec.StoredDeck `json:"deck"`
}

// TokenResponse is the payload returned by both encode methods
type TokenResponse struct {
	Token string `json:"token"`
}

// DecodeRequest is the payload of both decode methods
type DecodeRequest struct {
	Token string `json:"token"`
}

// DecodeDeckResponse is the payload returned by DecodeDeck
type DecodeDeckResponse struct {
	Deck codec.StoredDeck `json:"deck"`
}

// EncodeTeamRequest is the payload of EncodeTeam. Legacy selects the v1 format.
type EncodeTeamRequest struct {
	Name   string                              `json:"name"`
	Decks  [entities.TeamSize]codec.StoredDeck `json:"decks"`
	Legacy bool                                `json:"legacy"`
}

// DecodeTeamResponse is the payload returned by DecodeTeam
type DecodeTeamResponse struct {
	Team    codec.StoredTeam `json:"team"`
	Version string           `json:"version"`
}

// Handler implements DeckCodecServiceServer on top of the codec package
type Handler struct{}

// NewHandler creates a deck codec handler
func NewHandler() *Handler {
	return &Handler{}
}

var _ DeckCodecServiceServer = (*Handler)(nil)

// EncodeDeck packs a deck into a share token
func (h *Handler) EncodeDeck(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req EncodeDeckRequest
	if err := FromStruct(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	token, err := codec.EncodeDeck(req.Deck)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(TokenResponse{Token: token})
}

// DecodeDeck unpacks a deck token
func (h *Handler) DecodeDeck(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req DecodeRequest
	if err := FromStruct(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.Token == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("token is required"))
	}

	deck, err := codec.DecodeDeck(req.Token)
	if err != nil {
		slog.Debug("deck token rejected", "error", err)
		return nil, errors.ToGRPCError(err)
	}

	return respond(DecodeDeckResponse{Deck: *deck})
}

// EncodeTeam packs three decks into a team token
func (h *Handler) EncodeTeam(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req EncodeTeamRequest
	if err := FromStruct(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	var (
		token string
		err   error
	)
	if req.Legacy {
		token, err = codec.EncodeTeamLegacy(req.Decks)
	} else {
		token, err = codec.EncodeTeam(req.Name, req.Decks)
	}
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(TokenResponse{Token: token})
}

// DecodeTeam unpacks a v1 or v2 team token
func (h *Handler) DecodeTeam(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req DecodeRequest
	if err := FromStruct(in, &req); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if req.Token == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("token is required"))
	}

	team, err := codec.DecodeTeam(req.Token)
	if err != nil {
		slog.Debug("team token rejected", "error", err)
		return nil, errors.ToGRPCError(err)
	}

	version := TeamVersionV1
	if codec.IsTeamV2(req.Token) {
		version = TeamVersionV2
	}

	return respond(DecodeTeamResponse{Team: team, Version: version})
}

func respond(v any) (*structpb.Struct, error) {
	out, err := ToStruct(v)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
