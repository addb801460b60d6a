// Package share turns decks and teams into short links and loads them back
package share

//go:generate mockgen -destination=mock/mock_service.go -package=sharemock github.com/KirkDiggler/deckbuilder-api/internal/orchestrators/share Service

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/KirkDiggler/deckbuilder-api/internal/codec"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/repositories/shortlink"
	"github.com/KirkDiggler/deckbuilder-api/internal/services/resolution"
)

const (
	// QueryDeck carries a deck token in builder URLs
	QueryDeck = "d"
	// QueryTeam carries a team token in builder URLs. It wins over QueryDeck.
	QueryTeam = "team"

	invalidLinkMessage = "link expired or invalid"
)

// Service exposes the share link exchange
type Service interface {
	ShareDeck(ctx context.Context, input *ShareDeckInput) (*ShareOutput, error)
	ShareTeam(ctx context.Context, input *ShareTeamInput) (*ShareOutput, error)
	CreateLink(ctx context.Context, input *CreateLinkInput) (*ShareOutput, error)
	ResolveLink(ctx context.Context, input *ResolveLinkInput) (*ResolveLinkOutput, error)
	LoadShared(ctx context.Context, input *LoadSharedInput) (*LoadSharedOutput, error)
}

// ShareDeckInput is a deck to encode and link
type ShareDeckInput struct {
	Deck codec.StoredDeck
	Path string
}

// ShareTeamInput is a team to encode and link
type ShareTeamInput struct {
	Name  string
	Decks [entities.TeamSize]codec.StoredDeck
	Path  string
}

// CreateLinkInput links a token the caller already encoded
type CreateLinkInput struct {
	Hash string
	Type shortlink.LinkType
	Path string
}

// ShareOutput is the stored link. URL is empty when no public base URL is configured.
type ShareOutput struct {
	Token string
	Link  *shortlink.Link
	URL   string
}

// ResolveLinkInput names a short link
type ResolveLinkInput struct {
	ID string
}

// ResolveLinkOutput is where the short link redirects
type ResolveLinkOutput struct {
	Link        *shortlink.Link
	RedirectURL string
}

// LoadSharedInput holds the builder URL query
type LoadSharedInput struct {
	Query url.Values
}

// LoadSharedOutput holds exactly one of Deck or Team
type LoadSharedOutput struct {
	Type         shortlink.LinkType
	Deck         *entities.Deck
	Team         *entities.Team
	Warnings     map[string][]string
	TeamWarnings [entities.TeamSize]map[string][]string
}

// Config holds the dependencies for the share orchestrator
type Config struct {
	Links    shortlink.Repository
	Resolver resolution.Service
	// PublicBaseURL prefixes short link URLs, e.g. https://decks.example.com
	PublicBaseURL string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Links == nil {
		vb.RequiredField("Links")
	}
	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}
	if c.PublicBaseURL != "" {
		if u, err := url.Parse(c.PublicBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			vb.Field("PublicBaseURL", "must be an absolute URL")
		}
	}

	return vb.Build()
}

type orchestrator struct {
	links    shortlink.Repository
	resolver resolution.Service
	baseURL  string
}

// NewOrchestrator creates a new share orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		links:    cfg.Links,
		resolver: cfg.Resolver,
		baseURL:  strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

func (o *orchestrator) ShareDeck(ctx context.Context, input *ShareDeckInput) (*ShareOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Deck.IsEmpty() {
		return nil, errors.InvalidArgument("cannot share an empty deck")
	}

	token, err := codec.EncodeDeck(input.Deck)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode deck")
	}

	return o.store(ctx, token, shortlink.LinkTypeDeck, input.Path)
}

func (o *orchestrator) ShareTeam(ctx context.Context, input *ShareTeamInput) (*ShareOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	empty := true
	for _, d := range input.Decks {
		if !d.IsEmpty() {
			empty = false
		}
	}
	if empty {
		return nil, errors.InvalidArgument("cannot share an empty team")
	}

	token, err := codec.EncodeTeam(input.Name, input.Decks)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode team")
	}

	return o.store(ctx, token, shortlink.LinkTypeTeam, input.Path)
}

func (o *orchestrator) CreateLink(ctx context.Context, input *CreateLinkInput) (*ShareOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	// only tokens that decode are worth a link
	var err error
	switch input.Type {
	case shortlink.LinkTypeDeck:
		_, err = codec.DecodeDeck(input.Hash)
	case shortlink.LinkTypeTeam:
		_, err = codec.DecodeTeam(input.Hash)
	default:
		return nil, errors.InvalidArgumentf("unknown link type %q", input.Type)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "hash is not a valid %s token", input.Type)
	}

	return o.store(ctx, input.Hash, input.Type, input.Path)
}

func (o *orchestrator) store(ctx context.Context, token string, linkType shortlink.LinkType, path string) (*ShareOutput, error) {
	out, err := o.links.Create(ctx, shortlink.CreateInput{
		Hash: token,
		Type: linkType,
		Path: path,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create link")
	}

	slog.Info("share link created", "id", out.Link.ID, "type", linkType, "token_length", len(token))

	return &ShareOutput{
		Token: token,
		Link:  out.Link,
		URL:   o.shortURL(out.Link.ID),
	}, nil
}

func (o *orchestrator) shortURL(id string) string {
	if o.baseURL == "" {
		return ""
	}
	return o.baseURL + "/s/" + url.PathEscape(id)
}

func (o *orchestrator) ResolveLink(ctx context.Context, input *ResolveLinkInput) (*ResolveLinkOutput, error) {
	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("id is required")
	}

	out, err := o.links.Get(ctx, shortlink.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrap(err, invalidLinkMessage)
	}

	redirect, err := RedirectURL(out.Link)
	if err != nil {
		return nil, err
	}

	return &ResolveLinkOutput{
		Link:        out.Link,
		RedirectURL: redirect,
	}, nil
}

// RedirectURL places the link's hash into its path's query, keeping any
// parameters already there. Team links use QueryTeam, deck links QueryDeck.
func RedirectURL(link *shortlink.Link) (string, error) {
	path := link.Path
	if path == "" {
		path = "/"
	}
	u, err := url.Parse(path)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "", errors.InvalidArgumentf("link %s has an unusable path", link.ID)
	}

	param := QueryDeck
	if link.Type == shortlink.LinkTypeTeam {
		param = QueryTeam
	}

	q := u.Query()
	q.Set(param, link.Hash)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (o *orchestrator) LoadShared(ctx context.Context, input *LoadSharedInput) (*LoadSharedOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if token := input.Query.Get(QueryTeam); token != "" {
		return o.loadTeam(ctx, token)
	}
	if token := input.Query.Get(QueryDeck); token != "" {
		return o.loadDeck(ctx, token)
	}
	return nil, errors.InvalidArgumentf("one of %s or %s is required", QueryDeck, QueryTeam)
}

func (o *orchestrator) loadDeck(ctx context.Context, token string) (*LoadSharedOutput, error) {
	stored, err := codec.DecodeDeck(token)
	if err != nil {
		slog.Debug("shared deck token rejected", "error", err)
		return nil, errors.Wrap(err, invalidLinkMessage)
	}

	out, err := o.resolver.ResolveDeck(ctx, &resolution.ResolveDeckInput{Deck: *stored})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve shared deck")
	}

	return &LoadSharedOutput{
		Type:     shortlink.LinkTypeDeck,
		Deck:     &out.Deck,
		Warnings: out.Warnings,
	}, nil
}

func (o *orchestrator) loadTeam(ctx context.Context, token string) (*LoadSharedOutput, error) {
	stored, err := codec.DecodeTeam(token)
	if err != nil {
		slog.Debug("shared team token rejected", "error", err)
		return nil, errors.Wrap(err, invalidLinkMessage)
	}

	out, err := o.resolver.ResolveTeam(ctx, &resolution.ResolveTeamInput{Team: stored})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve shared team")
	}

	return &LoadSharedOutput{
		Type:         shortlink.LinkTypeTeam,
		Team:         &out.Team,
		TeamWarnings: out.Warnings,
	}, nil
}
