package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/pkg/clock"
)

// DefaultCacheTTL is used when CachedConfig.TTL is zero
const DefaultCacheTTL = 10 * time.Minute

// CachedConfig configures the caching wrapper
type CachedConfig struct {
	Client Client
	TTL    time.Duration
	Clock  clock.Clock
}

type cachedClient struct {
	next  Client
	ttl   time.Duration
	clock clock.Clock

	mu        sync.Mutex
	cards     []entities.Card
	fetchedAt time.Time
}

// NewCached wraps a client so the catalog is fetched at most once per TTL.
// Failed fetches are not cached.
func NewCached(cfg *CachedConfig) (Client, error) {
	if cfg.Client == nil {
		return nil, errors.InvalidArgument("Client is required")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &cachedClient{next: cfg.Client, ttl: ttl, clock: clk}, nil
}

func (c *cachedClient) ListCards(ctx context.Context) ([]entities.Card, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	if c.cards != nil && now.Sub(c.fetchedAt) < c.ttl {
		return c.cards, nil
	}

	cards, err := c.next.ListCards(ctx)
	if err != nil {
		return nil, err
	}
	c.cards = cards
	c.fetchedAt = now
	return cards, nil
}
