// Package rest serves the deck builder HTTP API with echo
package rest

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/orchestrators/builder"
	"github.com/KirkDiggler/deckbuilder-api/internal/orchestrators/library"
	"github.com/KirkDiggler/deckbuilder-api/internal/orchestrators/share"
	libraryrepo "github.com/KirkDiggler/deckbuilder-api/internal/repositories/library"
	"github.com/KirkDiggler/deckbuilder-api/internal/repositories/shortlink"
)

// Config holds the dependencies for the REST handler
type Config struct {
	Share   share.Service
	Library library.Service
	Builder builder.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Share == nil {
		vb.RequiredField("Share")
	}
	if c.Library == nil {
		vb.RequiredField("Library")
	}
	if c.Builder == nil {
		vb.RequiredField("Builder")
	}

	return vb.Build()
}

// Handler maps HTTP routes onto the orchestrators
type Handler struct {
	share   share.Service
	library library.Service
	builder builder.Service
}

// NewHandler creates a new REST handler
func NewHandler(cfg *Config) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		share:   cfg.Share,
		library: cfg.Library,
		builder: cfg.Builder,
	}, nil
}

// Register mounts every route on e
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/s/:id", h.FollowLink)

	api := e.Group("/api")
	api.POST("/share", h.CreateLink)
	api.POST("/share/deck", h.ShareDeck)
	api.POST("/share/team", h.ShareTeam)
	api.GET("/load", h.Load)

	api.POST("/decks/drop", h.DropOnDeck)
	api.POST("/teams/drop", h.DropOnTeam)

	lib := api.Group("/library/:owner")
	lib.GET("", h.ListLibrary)
	lib.POST("/decks", h.SaveDeck)
	lib.POST("/teams", h.SaveTeam)
	lib.GET("/:id", h.LoadEntry)
	lib.DELETE("/:id", h.DeleteEntry)
}

// Healthz reports liveness
func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// CreateLink stores a short link for a token the client already encoded
func (h *Handler) CreateLink(c echo.Context) error {
	var req CreateLinkRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	out, err := h.share.CreateLink(c.Request().Context(), &share.CreateLinkInput{
		Hash: req.Hash,
		Type: req.Type,
		Path: req.Path,
	})
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusCreated, linkResponse(out))
}

// ShareDeck encodes a deck and stores a short link for it
func (h *Handler) ShareDeck(c echo.Context) error {
	var req ShareDeckRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	out, err := h.share.ShareDeck(c.Request().Context(), &share.ShareDeckInput{Deck: req.Deck, Path: req.Path})
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusCreated, linkResponse(out))
}

// ShareTeam encodes a team and stores a short link for it
func (h *Handler) ShareTeam(c echo.Context) error {
	var req ShareTeamRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	out, err := h.share.ShareTeam(c.Request().Context(), &share.ShareTeamInput{
		Name:  req.Name,
		Decks: req.Decks,
		Path:  req.Path,
	})
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusCreated, linkResponse(out))
}

// FollowLink redirects a short link to the builder URL it stands for
func (h *Handler) FollowLink(c echo.Context) error {
	out, err := h.share.ResolveLink(c.Request().Context(), &share.ResolveLinkInput{ID: c.Param("id")})
	if err != nil {
		return mapError(c, err)
	}

	return c.Redirect(http.StatusFound, out.RedirectURL)
}

// Load decodes and resolves the deck or team named by ?d= or ?team=
func (h *Handler) Load(c echo.Context) error {
	out, err := h.share.LoadShared(c.Request().Context(), &share.LoadSharedInput{Query: c.QueryParams()})
	if err != nil {
		return mapError(c, err)
	}

	resp := LoadResponse{
		Type:     string(out.Type),
		Deck:     out.Deck,
		Team:     out.Team,
		Warnings: out.Warnings,
	}
	if out.Type == shortlink.LinkTypeTeam {
		resp.TeamWarnings = &out.TeamWarnings
	}
	return c.JSON(http.StatusOK, resp)
}

// DropOnDeck applies a drag gesture to a single deck
func (h *Handler) DropOnDeck(c echo.Context) error {
	var req DeckDropRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	out, err := h.builder.DropOnDeck(c.Request().Context(), &builder.DropOnDeckInput{
		DeckID: req.DeckID,
		Deck:   req.Deck,
		Source: req.Source,
		Target: req.Target,
	})
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, DeckDropResponse{
		Action:   out.Action,
		Deck:     out.Deck,
		Token:    out.Token,
		Warnings: out.Warnings,
	})
}

// DropOnTeam applies a drag gesture to a team
func (h *Handler) DropOnTeam(c echo.Context) error {
	var req TeamDropRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	out, err := h.builder.DropOnTeam(c.Request().Context(), &builder.DropOnTeamInput{
		TeamID:  req.TeamID,
		DeckIDs: req.DeckIDs,
		Team:    req.Team,
		Source:  req.Source,
		Target:  req.Target,
	})
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, TeamDropResponse{
		Action:   out.Action,
		Team:     out.Team,
		Token:    out.Token,
		Warnings: out.Warnings,
	})
}

// ListLibrary lists an owner's saved entries, optionally ?kind=deck|team
func (h *Handler) ListLibrary(c echo.Context) error {
	out, err := h.library.List(c.Request().Context(), &library.ListInput{
		OwnerID: c.Param("owner"),
		Kind:    libraryrepo.EntryKind(c.QueryParam("kind")),
	})
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, LibraryListResponse{Entries: out.Entries})
}

// SaveDeck saves a deck to the owner's library
func (h *Handler) SaveDeck(c echo.Context) error {
	var req SaveDeckRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	out, err := h.library.SaveDeck(c.Request().Context(), &library.SaveDeckInput{
		OwnerID: c.Param("owner"),
		EntryID: req.ID,
		Deck:    req.Deck,
	})
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(savedStatus(req.ID), out.Entry)
}

// SaveTeam saves a team to the owner's library
func (h *Handler) SaveTeam(c echo.Context) error {
	var req SaveTeamRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, err)
	}

	out, err := h.library.SaveTeam(c.Request().Context(), &library.SaveTeamInput{
		OwnerID: c.Param("owner"),
		EntryID: req.ID,
		Name:    req.Name,
		Decks:   req.Decks,
	})
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(savedStatus(req.ID), out.Entry)
}

// LoadEntry resolves a saved entry
func (h *Handler) LoadEntry(c echo.Context) error {
	out, err := h.library.Load(c.Request().Context(), &library.LoadInput{
		OwnerID: c.Param("owner"),
		ID:      c.Param("id"),
	})
	if err != nil {
		return mapError(c, err)
	}

	resp := LibraryLoadResponse{
		Entry: out.Entry,
		LoadResponse: LoadResponse{
			Type:     string(out.Entry.Kind),
			Deck:     out.Deck,
			Team:     out.Team,
			Warnings: out.Warnings,
		},
	}
	if out.Team != nil {
		resp.TeamWarnings = &out.TeamWarnings
	}
	return c.JSON(http.StatusOK, resp)
}

// DeleteEntry removes a saved entry
func (h *Handler) DeleteEntry(c echo.Context) error {
	_, err := h.library.Delete(c.Request().Context(), &library.DeleteInput{
		OwnerID: c.Param("owner"),
		ID:      c.Param("id"),
	})
	if err != nil {
		return mapError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func linkResponse(out *share.ShareOutput) LinkResponse {
	return LinkResponse{
		ID:        out.Link.ID,
		Type:      out.Link.Type,
		Token:     out.Token,
		URL:       out.URL,
		ExpiresAt: out.Link.ExpiresAt,
	}
}

func savedStatus(entryID string) int {
	if entryID == "" {
		return http.StatusCreated
	}
	return http.StatusOK
}

func badRequest(c echo.Context, err error) error {
	return mapError(c, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request body"))
}

// mapError writes the error as JSON with the status its code maps to.
// Server side failures are logged and their details withheld.
func mapError(c echo.Context, err error) error {
	code := errors.GetCode(err)
	status := code.HTTPStatus()

	resp := ErrorResponse{
		Error:  errors.GetMessage(err),
		Code:   code.String(),
		Fields: errors.ValidationFields(err),
	}

	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "request_id", requestID(c), "code", code, "error", err)
		resp.Error = "internal error"
		resp.Fields = nil
	}

	return c.JSON(status, resp)
}
