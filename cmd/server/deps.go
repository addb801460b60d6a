package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/KirkDiggler/deckbuilder-api/internal/clients/catalog"
	"github.com/KirkDiggler/deckbuilder-api/internal/config"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/orchestrators/builder"
	"github.com/KirkDiggler/deckbuilder-api/internal/orchestrators/library"
	"github.com/KirkDiggler/deckbuilder-api/internal/orchestrators/share"
	"github.com/KirkDiggler/deckbuilder-api/internal/pkg/clock"
	"github.com/KirkDiggler/deckbuilder-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/deckbuilder-api/internal/redis"
	libraryrepo "github.com/KirkDiggler/deckbuilder-api/internal/repositories/library"
	"github.com/KirkDiggler/deckbuilder-api/internal/repositories/shortlink"
	"github.com/KirkDiggler/deckbuilder-api/internal/services/resolution"
)

// dependencies is the wired service graph shared by the server and mcp commands
type dependencies struct {
	redis   redisclient.Client
	share   share.Service
	library library.Service
	builder builder.Service
}

func (d *dependencies) Close() error {
	if d.redis == nil {
		return nil
	}
	return d.redis.Close()
}

func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	return logger
}

func newCatalog(cfg *config.Config) (catalog.Client, error) {
	var (
		source catalog.Client
		err    error
	)
	if cfg.CatalogURL != "" {
		source, err = catalog.NewHTTP(&catalog.Config{BaseURL: cfg.CatalogURL})
	} else {
		source, err = catalog.NewFile(cfg.CatalogFile)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create catalog client")
	}

	return catalog.NewCached(&catalog.CachedConfig{
		Client: source,
		TTL:    cfg.CatalogCacheTTL,
	})
}

func buildDependencies(ctx context.Context, cfg *config.Config) (*dependencies, error) {
	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{
		PoolSize:     cfg.RedisPool,
		MinIdleConns: cfg.RedisMinIdle,
		UseTLS:       cfg.RedisTLS,
	})
	if err != nil {
		return nil, err
	}
	deps := &dependencies{redis: client}

	if err := redisclient.Ping(ctx, client); err != nil {
		// share links and the library fail per request until redis is back
		slog.Warn("redis not reachable at startup", "addr", cfg.RedisAddr, "error", err)
	}

	cards, err := newCatalog(cfg)
	if err != nil {
		return nil, err
	}

	resolver, err := resolution.New(&resolution.Config{
		CatalogClient: cards,
		IDGenerator:   idgen.NewShortCode(0),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create resolution service")
	}

	clk := clock.New()

	links, err := shortlink.NewRedisRepository(&shortlink.Config{
		Client:      client,
		Clock:       clk,
		IDGenerator: idgen.NewShortCode(0),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create short link repository")
	}

	entries, err := libraryrepo.NewRedisRepository(&libraryrepo.Config{
		Client:      client,
		Clock:       clk,
		IDGenerator: idgen.NewUUID("lib"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create library repository")
	}

	if deps.share, err = share.NewOrchestrator(&share.Config{
		Links:         links,
		Resolver:      resolver,
		PublicBaseURL: cfg.PublicBaseURL,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create share orchestrator")
	}

	if deps.library, err = library.NewOrchestrator(&library.Config{
		Repository: entries,
		Resolver:   resolver,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create library orchestrator")
	}

	if deps.builder, err = builder.NewOrchestrator(&builder.Config{Resolver: resolver}); err != nil {
		return nil, errors.Wrap(err, "failed to create builder orchestrator")
	}

	return deps, nil
}
