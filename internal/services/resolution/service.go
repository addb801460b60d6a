// Package resolution turns decoded share tokens into live decks and teams
package resolution

//go:generate mockgen -destination=mock/mock_service.go -package=resolutionmock github.com/KirkDiggler/deckbuilder-api/internal/services/resolution Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/deckbuilder-api/internal/clients/catalog"
	"github.com/KirkDiggler/deckbuilder-api/internal/codec"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/pkg/idgen"
	"github.com/KirkDiggler/deckbuilder-api/internal/rules"
)

// Service resolves stored IDs against a freshly fetched catalog
type Service interface {
	ResolveDeck(ctx context.Context, input *ResolveDeckInput) (*ResolveDeckOutput, error)
	ResolveTeam(ctx context.Context, input *ResolveTeamInput) (*ResolveTeamOutput, error)
	GetCard(ctx context.Context, input *GetCardInput) (*GetCardOutput, error)
}

// ResolveDeckInput is the stored deck plus an optional deck ID to keep
type ResolveDeckInput struct {
	Deck   codec.StoredDeck
	DeckID string
}

// ResolveDeckOutput carries the live deck and any validation warnings
type ResolveDeckOutput struct {
	Deck     entities.Deck
	Warnings map[string][]string
}

// ResolveTeamInput is the stored team plus optional IDs to keep
type ResolveTeamInput struct {
	Team    codec.StoredTeam
	TeamID  string
	DeckIDs [entities.TeamSize]string
}

// ResolveTeamOutput carries the live team and per-deck warnings keyed by deck position
type ResolveTeamOutput struct {
	Team     entities.Team
	Warnings [entities.TeamSize]map[string][]string
}

// GetCardInput names a card
type GetCardInput struct {
	CardID string
}

// GetCardOutput is the catalog entry
type GetCardOutput struct {
	Card *entities.Card
}

// Config holds the dependencies for the resolution service
type Config struct {
	CatalogClient catalog.Client
	IDGenerator   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CatalogClient == nil {
		vb.RequiredField("CatalogClient")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type service struct {
	catalog catalog.Client
	idGen   idgen.Generator
}

// New creates a resolution service
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{
		catalog: cfg.CatalogClient,
		idGen:   cfg.IDGenerator,
	}, nil
}

func (s *service) index(ctx context.Context) (*Index, error) {
	cards, err := s.catalog.ListCards(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load card catalog")
	}
	return NewIndex(cards), nil
}

func (s *service) ResolveDeck(ctx context.Context, input *ResolveDeckInput) (*ResolveDeckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	idx, err := s.index(ctx)
	if err != nil {
		return nil, err
	}

	deck := idx.ResolveDeck(input.Deck)
	deck.ID = s.idOr(input.DeckID)

	return &ResolveDeckOutput{
		Deck:     deck,
		Warnings: Warnings(deck),
	}, nil
}

func (s *service) ResolveTeam(ctx context.Context, input *ResolveTeamInput) (*ResolveTeamOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	idx, err := s.index(ctx)
	if err != nil {
		return nil, err
	}

	team := idx.ResolveTeam(input.Team)
	team.ID = s.idOr(input.TeamID)

	out := &ResolveTeamOutput{}
	for i := range team.Decks {
		team.Decks[i].ID = s.idOr(input.DeckIDs[i])
		if input.Team.Decks[i] != nil {
			out.Warnings[i] = Warnings(team.Decks[i])
		}
	}
	out.Team = team

	return out, nil
}

func (s *service) GetCard(ctx context.Context, input *GetCardInput) (*GetCardOutput, error) {
	if input == nil || input.CardID == "" {
		return nil, errors.InvalidArgument("card id is required")
	}

	idx, err := s.index(ctx)
	if err != nil {
		return nil, err
	}

	card := idx.Card(input.CardID)
	if card == nil {
		return nil, errors.NotFoundf("card %s not found", input.CardID)
	}
	return &GetCardOutput{Card: card}, nil
}

func (s *service) idOr(id string) string {
	if id != "" {
		return id
	}
	return s.idGen.Generate()
}

// Warnings flattens ValidateDeck into field messages. Empty decks carry no warnings.
func Warnings(deck entities.Deck) map[string][]string {
	if deck.IsEmpty() {
		return nil
	}
	err := rules.ValidateDeck(deck)
	if err == nil {
		return nil
	}
	if fields := errors.ValidationFields(err); fields != nil {
		return fields
	}
	slog.Warn("deck failed structural check", "deck_id", deck.ID, "error", err)
	return map[string][]string{"deck": {errors.GetMessage(err)}}
}
