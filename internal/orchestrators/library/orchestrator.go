// Package library saves decks and teams for a player and loads them back
package library

//go:generate mockgen -destination=mock/mock_service.go -package=librarymock github.com/KirkDiggler/deckbuilder-api/internal/orchestrators/library Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/deckbuilder-api/internal/codec"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	libraryrepo "github.com/KirkDiggler/deckbuilder-api/internal/repositories/library"
	"github.com/KirkDiggler/deckbuilder-api/internal/services/resolution"
)

// Service manages a player's saved decks and teams
type Service interface {
	SaveDeck(ctx context.Context, input *SaveDeckInput) (*SaveOutput, error)
	SaveTeam(ctx context.Context, input *SaveTeamInput) (*SaveOutput, error)
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// SaveDeckInput saves a deck. A non-empty EntryID overwrites that entry.
type SaveDeckInput struct {
	OwnerID string
	EntryID string
	Deck    codec.StoredDeck
}

// SaveTeamInput saves a team. A non-empty EntryID overwrites that entry.
type SaveTeamInput struct {
	OwnerID string
	EntryID string
	Name    string
	Decks   [entities.TeamSize]codec.StoredDeck
}

// SaveOutput is the stored entry
type SaveOutput struct {
	Entry *libraryrepo.Entry
}

// ListInput names an owner and an optional kind filter
type ListInput struct {
	OwnerID string
	Kind    libraryrepo.EntryKind
}

// ListOutput holds entries, newest first
type ListOutput struct {
	Entries []*libraryrepo.Entry
}

// LoadInput names one entry
type LoadInput struct {
	OwnerID string
	ID      string
}

// LoadOutput is the entry plus its resolved deck or team
type LoadOutput struct {
	Entry        *libraryrepo.Entry
	Deck         *entities.Deck
	Team         *entities.Team
	Warnings     map[string][]string
	TeamWarnings [entities.TeamSize]map[string][]string
}

// DeleteInput names one entry
type DeleteInput struct {
	OwnerID string
	ID      string
}

// DeleteOutput is empty
type DeleteOutput struct{}

// Config holds the dependencies for the library orchestrator
type Config struct {
	Repository libraryrepo.Repository
	Resolver   resolution.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}

	return vb.Build()
}

type orchestrator struct {
	repo     libraryrepo.Repository
	resolver resolution.Service
}

// NewOrchestrator creates a new library orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		repo:     cfg.Repository,
		resolver: cfg.Resolver,
	}, nil
}

func (o *orchestrator) SaveDeck(ctx context.Context, input *SaveDeckInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	token, err := codec.EncodeDeck(input.Deck)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode deck")
	}

	return o.save(ctx, &libraryrepo.Entry{
		ID:      input.EntryID,
		OwnerID: input.OwnerID,
		Kind:    libraryrepo.EntryKindDeck,
		Name:    codec.SanitizeName(input.Deck.Name),
		Token:   token,
	})
}

func (o *orchestrator) SaveTeam(ctx context.Context, input *SaveTeamInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	token, err := codec.EncodeTeam(input.Name, input.Decks)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode team")
	}

	return o.save(ctx, &libraryrepo.Entry{
		ID:      input.EntryID,
		OwnerID: input.OwnerID,
		Kind:    libraryrepo.EntryKindTeam,
		Name:    codec.SanitizeName(input.Name),
		Token:   token,
	})
}

func (o *orchestrator) save(ctx context.Context, entry *libraryrepo.Entry) (*SaveOutput, error) {
	out, err := o.repo.Save(ctx, libraryrepo.SaveInput{Entry: entry})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save %s", entry.Kind)
	}

	slog.Info("library entry saved", "owner_id", out.Entry.OwnerID, "id", out.Entry.ID, "kind", out.Entry.Kind)

	return &SaveOutput{Entry: out.Entry}, nil
}

func (o *orchestrator) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.repo.List(ctx, libraryrepo.ListInput{OwnerID: input.OwnerID, Kind: input.Kind})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list library")
	}

	return &ListOutput{Entries: out.Entries}, nil
}

func (o *orchestrator) Load(ctx context.Context, input *LoadInput) (*LoadOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	got, err := o.repo.Get(ctx, libraryrepo.GetInput{OwnerID: input.OwnerID, ID: input.ID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get library entry")
	}
	entry := got.Entry
	out := &LoadOutput{Entry: entry}

	switch entry.Kind {
	case libraryrepo.EntryKindDeck:
		stored, err := codec.DecodeDeck(entry.Token)
		if err != nil {
			return nil, errors.Wrapf(err, "saved deck %s is unreadable", entry.ID)
		}
		resolved, err := o.resolver.ResolveDeck(ctx, &resolution.ResolveDeckInput{Deck: *stored, DeckID: entry.ID})
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve saved deck")
		}
		out.Deck = &resolved.Deck
		out.Warnings = resolved.Warnings

	case libraryrepo.EntryKindTeam:
		stored, err := codec.DecodeTeam(entry.Token)
		if err != nil {
			return nil, errors.Wrapf(err, "saved team %s is unreadable", entry.ID)
		}
		resolved, err := o.resolver.ResolveTeam(ctx, &resolution.ResolveTeamInput{Team: stored, TeamID: entry.ID})
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve saved team")
		}
		out.Team = &resolved.Team
		out.TeamWarnings = resolved.Warnings

	default:
		return nil, errors.Internalf("library entry %s has unknown kind %q", entry.ID, entry.Kind)
	}

	return out, nil
}

func (o *orchestrator) Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.repo.Delete(ctx, libraryrepo.DeleteInput{OwnerID: input.OwnerID, ID: input.ID}); err != nil {
		return nil, errors.Wrap(err, "failed to delete library entry")
	}

	slog.Info("library entry deleted", "owner_id", input.OwnerID, "id", input.ID)
	return &DeleteOutput{}, nil
}
