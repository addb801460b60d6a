// Package builder applies drag and drop gestures to decks and teams held as share tokens
package builder

//go:generate mockgen -destination=mock/mock_service.go -package=buildermock github.com/KirkDiggler/deckbuilder-api/internal/orchestrators/builder Service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/deckbuilder-api/internal/codec"
	"github.com/KirkDiggler/deckbuilder-api/internal/drag"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/services/resolution"
)

// Service resolves the current state, classifies the drop and applies it
type Service interface {
	DropOnDeck(ctx context.Context, input *DropOnDeckInput) (*DropOnDeckOutput, error)
	DropOnTeam(ctx context.Context, input *DropOnTeamInput) (*DropOnTeamOutput, error)
}

// DropOnDeckInput is a solo-mode drop. Card kinds are taken from the catalog and
// the current deck, never from the caller.
type DropOnDeckInput struct {
	DeckID string
	Deck   codec.StoredDeck
	Source *drag.Source
	Target *drag.Target
}

// DropOnDeckOutput is the applied action and the resulting deck
type DropOnDeckOutput struct {
	Action   drag.Action
	Deck     entities.Deck
	Token    string
	Warnings map[string][]string
}

// DropOnTeamInput is a team-mode drop. DeckIDs name the three team positions so
// the drag descriptors can refer to them.
type DropOnTeamInput struct {
	TeamID  string
	DeckIDs [entities.TeamSize]string
	Team    codec.StoredTeam
	Source  *drag.Source
	Target  *drag.Target
}

// DropOnTeamOutput is the applied action and the resulting team
type DropOnTeamOutput struct {
	Action   drag.Action
	Team     entities.Team
	Token    string
	Warnings [entities.TeamSize]map[string][]string
}

// Config holds the dependencies for the builder orchestrator
type Config struct {
	Resolver resolution.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}

	return vb.Build()
}

type orchestrator struct {
	resolver resolution.Service
}

// NewOrchestrator creates a new builder orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		resolver: cfg.Resolver,
	}, nil
}

func (o *orchestrator) DropOnDeck(ctx context.Context, input *DropOnDeckInput) (*DropOnDeckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("deck_id", input.DeckID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	resolved, err := o.resolver.ResolveDeck(ctx, &resolution.ResolveDeckInput{
		Deck:   input.Deck,
		DeckID: input.DeckID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve deck")
	}
	deck := resolved.Deck

	source, err := o.hydrateSource(ctx, input.Source, func(deckID string) *entities.Deck {
		if deckID == "" || deckID == deck.ID {
			return &deck
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	action := drag.DetermineAction(source, input.Target)
	updated, err := ApplyDeckAction(deck, action)
	if err != nil {
		slog.Debug("drop rejected", "deck_id", deck.ID, "action", action.Type, "code", errors.GetCode(err))
		return nil, err
	}

	token, err := codec.EncodeDeck(codec.StoredDeckFrom(updated))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode deck")
	}

	slog.Debug("drop applied", "deck_id", deck.ID, "action", action.Type)

	return &DropOnDeckOutput{
		Action:   action,
		Deck:     updated,
		Token:    token,
		Warnings: resolution.Warnings(updated),
	}, nil
}

func (o *orchestrator) DropOnTeam(ctx context.Context, input *DropOnTeamInput) (*DropOnTeamOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	seen := make(map[string]bool, entities.TeamSize)
	for i, id := range input.DeckIDs {
		switch {
		case id == "":
			vb.RequiredField(deckIDField(i))
		case seen[id]:
			vb.Field(deckIDField(i), "must be unique")
		}
		seen[id] = true
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	resolved, err := o.resolver.ResolveTeam(ctx, &resolution.ResolveTeamInput{
		Team:    input.Team,
		TeamID:  input.TeamID,
		DeckIDs: input.DeckIDs,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve team")
	}
	team := resolved.Team

	source, err := o.hydrateSource(ctx, input.Source, func(deckID string) *entities.Deck {
		if i := team.DeckIndex(deckID); i >= 0 {
			return &team.Decks[i]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	action := drag.DetermineAction(source, input.Target)
	updated, err := ApplyTeamAction(team, action)
	if err != nil {
		slog.Debug("team drop rejected", "team_id", team.ID, "action", action.Type, "code", errors.GetCode(err))
		return nil, err
	}

	token, err := codec.EncodeTeam(updated.Name, codec.StoredTeamFrom(updated).DeckValues())
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode team")
	}

	slog.Debug("team drop applied", "team_id", team.ID, "action", action.Type,
		"cross_deck", action.IsCrossDeck())

	out := &DropOnTeamOutput{
		Action: action,
		Team:   updated,
		Token:  token,
	}
	for i, d := range updated.Decks {
		out.Warnings[i] = resolution.Warnings(d)
	}
	return out, nil
}

// hydrateSource replaces the caller's card with the authoritative one: the catalog
// entry for browser drags, the current occupant for deck drags.
func (o *orchestrator) hydrateSource(ctx context.Context, source *drag.Source, deckByID func(string) *entities.Deck) (*drag.Source, error) {
	if source == nil {
		return nil, nil
	}
	hydrated := *source

	switch source.Kind {
	case drag.SourceCatalog:
		if source.Card == nil || source.Card.ID == "" {
			hydrated.Card = nil
			return &hydrated, nil
		}
		out, err := o.resolver.GetCard(ctx, &resolution.GetCardInput{CardID: source.Card.ID})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to look up card %s", source.Card.ID)
		}
		hydrated.Card = out.Card

	case drag.SourceDeckSlot:
		hydrated.Card = nil
		deck := deckByID(source.DeckID)
		if deck != nil && source.SlotIndex >= 0 && source.SlotIndex < entities.SlotCount {
			hydrated.Card = deck.Slots[source.SlotIndex].Card
			hydrated.DeckID = deck.ID
		}

	case drag.SourceSpellcaster:
		hydrated.Card = nil
		if deck := deckByID(source.DeckID); deck != nil {
			hydrated.Card = deck.Spellcaster
			hydrated.DeckID = deck.ID
		}
	}

	return &hydrated, nil
}

func deckIDField(i int) string {
	return fmt.Sprintf("deck_ids[%d]", i)
}
