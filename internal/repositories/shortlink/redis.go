package shortlink

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/pkg/clock"
	"github.com/KirkDiggler/deckbuilder-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/deckbuilder-api/internal/redis"
)

const (
	// Key pattern: shortlink:{id}
	keyPrefix = "shortlink:"

	// collisions are retried with a fresh code
	maxCreateAttempts = 5

	defaultPath = "/"
)

// Config holds the dependencies for the redis repository
type Config struct {
	Client      redisclient.Client
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	idGen  idgen.Generator
}

// NewRedisRepository creates a redis backed short link repository
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		idGen:  cfg.IDGenerator,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("hash", input.Hash, vb)
	errors.ValidateOneOf("type", string(input.Type), []string{string(LinkTypeDeck), string(LinkTypeTeam)}, vb)
	if input.Path != "" && (!strings.HasPrefix(input.Path, "/") || strings.HasPrefix(input.Path, "//")) {
		vb.Field("path", "must be a path on this site")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	path := input.Path
	if path == "" {
		path = defaultPath
	}

	now := r.clock.Now()
	link := &Link{
		Hash:      input.Hash,
		Type:      input.Type,
		Path:      path,
		CreatedAt: now,
		ExpiresAt: now.Add(TTL),
	}

	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		link.ID = r.idGen.Generate()

		data, err := json.Marshal(link)
		if err != nil {
			return nil, errors.Wrap(err, "failed to marshal link")
		}

		stored, err := r.client.SetNX(ctx, buildKey(link.ID), data, TTL).Result()
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store link")
		}
		if stored {
			return &CreateOutput{Link: link}, nil
		}

		slog.Warn("short link code collision", "id", link.ID, "attempt", attempt)
	}

	return nil, errors.ResourceExhausted("could not allocate a free short link code")
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("id is required")
	}

	data, err := r.client.Get(ctx, buildKey(input.ID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("link %s not found", input.ID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get link")
	}

	var link Link
	if err := json.Unmarshal(data, &link); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal link")
	}

	// the stored deadline holds even if the key outlived its TTL
	if r.clock.Now().After(link.ExpiresAt) {
		return nil, errors.NotFoundf("link %s has expired", input.ID)
	}

	return &GetOutput{Link: &link}, nil
}

func buildKey(id string) string {
	return keyPrefix + id
}
