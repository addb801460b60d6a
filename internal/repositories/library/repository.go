// Package library stores the decks and teams a player has saved
package library

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=librarymock github.com/KirkDiggler/deckbuilder-api/internal/repositories/library Repository

// EntryKind is what the stored token encodes
type EntryKind string

const (
	EntryKindDeck EntryKind = "deck"
	EntryKindTeam EntryKind = "team"
)

// Entry is one saved deck or team. Token is the same share token used in URLs,
// so saved entries load exactly like shared links.
type Entry struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Kind      EntryKind `json:"kind"`
	Name      string    `json:"name"`
	Token     string    `json:"token"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SaveInput contains the entry to store. An empty ID creates a new entry.
type SaveInput struct {
	Entry *Entry
}

// SaveOutput contains the stored entry with its ID and timestamp set
type SaveOutput struct {
	Entry *Entry
}

// GetInput names one entry
type GetInput struct {
	OwnerID string
	ID      string
}

// GetOutput contains the entry
type GetOutput struct {
	Entry *Entry
}

// ListInput names an owner, optionally filtered by kind
type ListInput struct {
	OwnerID string
	Kind    EntryKind
}

// ListOutput contains the entries, most recently updated first
type ListOutput struct {
	Entries []*Entry
}

// DeleteInput names one entry
type DeleteInput struct {
	OwnerID string
	ID      string
}

// DeleteOutput is empty; a missing entry is reported as NOT_FOUND
type DeleteOutput struct{}

// Repository defines saved library storage
type Repository interface {
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	List(ctx context.Context, input ListInput) (*ListOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
