// Package shortlink stores short codes that point at deck and team share tokens
package shortlink

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=shortlinkmock github.com/KirkDiggler/deckbuilder-api/internal/repositories/shortlink Repository

// LinkType says which query parameter the hash is restored into
type LinkType string

const (
	LinkTypeDeck LinkType = "deck"
	LinkTypeTeam LinkType = "team"
)

// TTL is how long a short link lives. It is not refreshed on read.
const TTL = 30 * 24 * time.Hour

// Link is a stored short link
type Link struct {
	ID        string    `json:"id"`
	Hash      string    `json:"hash"`
	Type      LinkType  `json:"type"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// CreateInput contains parameters for creating a short link
type CreateInput struct {
	Hash string
	Type LinkType
	// Path is the builder page the link redirects to. Defaults to "/".
	Path string
}

// CreateOutput contains the stored link
type CreateOutput struct {
	Link *Link
}

// GetInput names a short link
type GetInput struct {
	ID string
}

// GetOutput contains the stored link
type GetOutput struct {
	Link *Link
}

// Repository defines short link storage
type Repository interface {
	// Create stores a new link under a freshly generated code
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get returns the link or NOT_FOUND when it never existed or has expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
}
