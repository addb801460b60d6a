// Package catalog fetches the spellcaster card catalog that decks are resolved against
package catalog

//go:generate mockgen -destination=mock/mock_client.go -package=catalogmock github.com/KirkDiggler/deckbuilder-api/internal/clients/catalog Client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
)

// Client lists every card a deck can reference
type Client interface {
	ListCards(ctx context.Context) ([]entities.Card, error)
}

// listResponse is the body served by the catalog API
type listResponse struct {
	Cards []entities.Card `json:"cards" yaml:"cards"`
}

// Config contains configuration options for the HTTP catalog client.
type Config struct {
	// BaseURL of the catalog API, required
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 10 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the default client, mostly for tests
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("BaseURL", cfg.BaseURL, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 10 * time.Second
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}
	return nil
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTP creates a client that reads GET {BaseURL}/cards
func NewHTTP(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &httpClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  cfg.HTTPClient,
	}, nil
}

func (c *httpClient) ListCards(ctx context.Context) ([]entities.Card, error) {
	url := c.baseURL + "/cards"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build catalog request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "catalog request failed")
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Warn("failed to close catalog response", "error", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.Newf(errors.CodeUnavailable, "catalog returned %d", resp.StatusCode).
			WithMeta("url", url).
			WithMeta("body", string(body))
	}

	var out listResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrap(err, "failed to decode catalog response")
	}

	slog.Debug("catalog fetched", "url", url, "cards", len(out.Cards))
	return out.Cards, nil
}

// checkCards rejects a catalog with blank or repeated IDs
func checkCards(cards []entities.Card) error {
	seen := make(map[string]bool, len(cards))
	for i, card := range cards {
		if card.ID == "" {
			return errors.InvalidArgumentf("card %d has no id", i)
		}
		if seen[card.ID] {
			return errors.InvalidArgumentf("card id %q appears twice", card.ID)
		}
		seen[card.ID] = true
	}
	return nil
}
