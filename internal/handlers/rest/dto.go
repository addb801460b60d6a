package rest

import (
	"time"

	"github.com/KirkDiggler/deckbuilder-api/internal/codec"
	"github.com/KirkDiggler/deckbuilder-api/internal/drag"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/repositories/library"
	"github.com/KirkDiggler/deckbuilder-api/internal/repositories/shortlink"
)

// CreateLinkRequest is the body of POST /api/share
type CreateLinkRequest struct {
	Hash string             `json:"hash"`
	Type shortlink.LinkType `json:"type"`
	Path string             `json:"path"`
}

// ShareDeckRequest is the body of POST /api/share/deck
type ShareDeckRequest struct {
	Deck codec.StoredDeck `json:"deck"`
	Path string           `json:"path"`
}

// ShareTeamRequest is the body of POST /api/share/team
type ShareTeamRequest struct {
	Name  string                              `json:"name"`
	Decks [entities.TeamSize]codec.StoredDeck `json:"decks"`
	Path  string                              `json:"path"`
}

// LinkResponse describes a created short link
type LinkResponse struct {
	ID        string             `json:"id"`
	Type      shortlink.LinkType `json:"type"`
	Token     string             `json:"token"`
	URL       string             `json:"url,omitempty"`
	ExpiresAt time.Time          `json:"expiresAt"`
}

// LoadResponse is a shared or saved deck or team after resolution
type LoadResponse struct {
	Type         string                                  `json:"type"`
	Deck         *entities.Deck                          `json:"deck,omitempty"`
	Team         *entities.Team                          `json:"team,omitempty"`
	Warnings     map[string][]string                     `json:"warnings,omitempty"`
	TeamWarnings *[entities.TeamSize]map[string][]string `json:"teamWarnings,omitempty"`
}

// DeckDropRequest is the body of POST /api/decks/drop
type DeckDropRequest struct {
	DeckID string           `json:"deckId"`
	Deck   codec.StoredDeck `json:"deck"`
	Source *drag.Source     `json:"source"`
	Target *drag.Target     `json:"target"`
}

// DeckDropResponse is the applied action and new deck state
type DeckDropResponse struct {
	Action   drag.Action         `json:"action"`
	Deck     entities.Deck       `json:"deck"`
	Token    string              `json:"token"`
	Warnings map[string][]string `json:"warnings,omitempty"`
}

// TeamDropRequest is the body of POST /api/teams/drop
type TeamDropRequest struct {
	TeamID  string                    `json:"teamId"`
	DeckIDs [entities.TeamSize]string `json:"deckIds"`
	Team    codec.StoredTeam          `json:"team"`
	Source  *drag.Source              `json:"source"`
	Target  *drag.Target              `json:"target"`
}

// TeamDropResponse is the applied action and new team state
type TeamDropResponse struct {
	Action   drag.Action                            `json:"action"`
	Team     entities.Team                          `json:"team"`
	Token    string                                 `json:"token"`
	Warnings [entities.TeamSize]map[string][]string `json:"warnings"`
}

// SaveDeckRequest is the body of POST /api/library/:owner/decks
type SaveDeckRequest struct {
	ID   string           `json:"id"`
	Deck codec.StoredDeck `json:"deck"`
}

// SaveTeamRequest is the body of POST /api/library/:owner/teams
type SaveTeamRequest struct {
	ID    string                              `json:"id"`
	Name  string                              `json:"name"`
	Decks [entities.TeamSize]codec.StoredDeck `json:"decks"`
}

// LibraryListResponse lists saved entries
type LibraryListResponse struct {
	Entries []*library.Entry `json:"entries"`
}

// LibraryLoadResponse is a saved entry with its resolved content
type LibraryLoadResponse struct {
	Entry *library.Entry `json:"entry"`
	LoadResponse
}

// ErrorResponse carries the stable error code next to the message
type ErrorResponse struct {
	Error  string              `json:"error"`
	Code   string              `json:"code"`
	Fields map[string][]string `json:"fields,omitempty"`
}
