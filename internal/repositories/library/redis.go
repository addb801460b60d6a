package library

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/pkg/clock"
	"github.com/KirkDiggler/deckbuilder-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/deckbuilder-api/internal/redis"
)

const (
	// Key pattern: library:{owner_id}, one hash field per entry
	keyPrefix = "library:"

	// MaxEntriesPerOwner caps how many entries one owner can keep
	MaxEntriesPerOwner = 200
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

// NewRedisRepository creates a redis backed library repository
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

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Entry == nil {
		return nil, errors.InvalidArgument("entry is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("owner_id", input.Entry.OwnerID, vb)
	errors.ValidateRequired("token", input.Entry.Token, vb)
	errors.ValidateOneOf("kind", string(input.Entry.Kind), []string{string(EntryKindDeck), string(EntryKindTeam)}, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	entry := *input.Entry
	key := buildKey(entry.OwnerID)

	if entry.ID == "" {
		count, err := r.client.HLen(ctx, key).Result()
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to count library entries")
		}
		if count >= MaxEntriesPerOwner {
			return nil, errors.ResourceExhausted("library is full").
				WithMeta("owner_id", entry.OwnerID).
				WithMeta("limit", MaxEntriesPerOwner)
		}
		entry.ID = r.idGen.Generate()
	} else {
		exists, err := r.client.HExists(ctx, key, entry.ID).Result()
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to check library entry")
		}
		if !exists {
			return nil, errors.NotFoundf("library entry %s not found", entry.ID)
		}
	}
	entry.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(&entry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal library entry")
	}

	if err := r.client.HSet(ctx, key, entry.ID, data).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store library entry")
	}

	return &SaveOutput{Entry: &entry}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("owner_id", input.OwnerID, vb)
	errors.ValidateRequired("id", input.ID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	data, err := r.client.HGet(ctx, buildKey(input.OwnerID), input.ID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("library entry %s not found", input.ID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get library entry")
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal library entry")
	}

	return &GetOutput{Entry: &entry}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner_id is required")
	}

	values, err := r.client.HGetAll(ctx, buildKey(input.OwnerID)).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list library entries")
	}

	entries := make([]*Entry, 0, len(values))
	for field, value := range values {
		var entry Entry
		if err := json.Unmarshal([]byte(value), &entry); err != nil {
			slog.Warn("skipping unreadable library entry", "owner_id", input.OwnerID, "id", field, "error", err)
			continue
		}
		if input.Kind != "" && entry.Kind != input.Kind {
			continue
		}
		entries = append(entries, &entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].UpdatedAt.Equal(entries[j].UpdatedAt) {
			return entries[i].ID < entries[j].ID
		}
		return entries[i].UpdatedAt.After(entries[j].UpdatedAt)
	})

	return &ListOutput{Entries: entries}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("owner_id", input.OwnerID, vb)
	errors.ValidateRequired("id", input.ID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	removed, err := r.client.HDel(ctx, buildKey(input.OwnerID), input.ID).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete library entry")
	}
	if removed == 0 {
		return nil, errors.NotFoundf("library entry %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func buildKey(ownerID string) string {
	return keyPrefix + ownerID
}
