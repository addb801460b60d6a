package library_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/pkg/clock"
	"github.com/KirkDiggler/deckbuilder-api/internal/pkg/idgen"
	"github.com/KirkDiggler/deckbuilder-api/internal/repositories/library"
	"github.com/KirkDiggler/deckbuilder-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	mr    *miniredis.Miniredis
	clock *clock.Fixed
	repo  library.Repository
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	s.clock = &clock.Fixed{At: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}

	repo, err := library.NewRedisRepository(&library.Config{
		Client:      client,
		Clock:       s.clock,
		IDGenerator: idgen.NewSequential("entry"),
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) save(kind library.EntryKind, name string) *library.Entry {
	out, err := s.repo.Save(s.ctx, library.SaveInput{Entry: &library.Entry{
		OwnerID: "player_1",
		Kind:    kind,
		Name:    name,
		Token:   "token-" + name,
	}})
	s.Require().NoError(err)
	return out.Entry
}

func (s *RedisRepositoryTestSuite) TestSaveAndGet() {
	entry := s.save(library.EntryKindDeck, "Aggro")
	s.Equal("entry_1", entry.ID)
	s.Equal(s.clock.At, entry.UpdatedAt)
	s.True(s.mr.Exists("library:player_1"))
	s.NotEmpty(s.mr.HGet("library:player_1", "entry_1"))

	got, err := s.repo.Get(s.ctx, library.GetInput{OwnerID: "player_1", ID: entry.ID})
	s.Require().NoError(err)
	s.Equal("Aggro", got.Entry.Name)
	s.Equal("token-Aggro", got.Entry.Token)
	s.Equal(library.EntryKindDeck, got.Entry.Kind)
}

func (s *RedisRepositoryTestSuite) TestSaveUpdatesExisting() {
	entry := s.save(library.EntryKindDeck, "Aggro")

	s.clock.Advance(time.Hour)
	entry.Token = "token-v2"
	out, err := s.repo.Save(s.ctx, library.SaveInput{Entry: entry})
	s.Require().NoError(err)
	s.Equal(entry.ID, out.Entry.ID)
	s.Equal(s.clock.At, out.Entry.UpdatedAt)

	got, err := s.repo.Get(s.ctx, library.GetInput{OwnerID: "player_1", ID: entry.ID})
	s.Require().NoError(err)
	s.Equal("token-v2", got.Entry.Token)
}

func (s *RedisRepositoryTestSuite) TestSaveUnknownID() {
	_, err := s.repo.Save(s.ctx, library.SaveInput{Entry: &library.Entry{
		ID: "ghost", OwnerID: "player_1", Kind: library.EntryKindDeck, Token: "t",
	}})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestSaveValidation() {
	_, err := s.repo.Save(s.ctx, library.SaveInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, library.SaveInput{Entry: &library.Entry{Kind: "card"}})
	s.Require().Error(err)
	fields := errors.ValidationFields(err)
	s.Contains(fields, "owner_id")
	s.Contains(fields, "token")
	s.Contains(fields, "kind")
}

func (s *RedisRepositoryTestSuite) TestSaveRejectsFullLibrary() {
	for i := 0; i < library.MaxEntriesPerOwner; i++ {
		s.mr.HSet("library:player_1", fmt.Sprintf("e%d", i), "{}")
	}

	_, err := s.repo.Save(s.ctx, library.SaveInput{Entry: &library.Entry{
		OwnerID: "player_1", Kind: library.EntryKindDeck, Token: "t",
	}})
	s.Require().Error(err)
	s.Equal(errors.CodeResourceExhausted, errors.GetCode(err))
}

func (s *RedisRepositoryTestSuite) TestListNewestFirst() {
	first := s.save(library.EntryKindDeck, "First")
	s.clock.Advance(time.Minute)
	team := s.save(library.EntryKindTeam, "Team")
	s.clock.Advance(time.Minute)
	last := s.save(library.EntryKindDeck, "Last")

	out, err := s.repo.List(s.ctx, library.ListInput{OwnerID: "player_1"})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 3)
	s.Equal(last.ID, out.Entries[0].ID)
	s.Equal(team.ID, out.Entries[1].ID)
	s.Equal(first.ID, out.Entries[2].ID)

	decks, err := s.repo.List(s.ctx, library.ListInput{OwnerID: "player_1", Kind: library.EntryKindDeck})
	s.Require().NoError(err)
	s.Len(decks.Entries, 2)

	empty, err := s.repo.List(s.ctx, library.ListInput{OwnerID: "nobody"})
	s.Require().NoError(err)
	s.Empty(empty.Entries)
}

func (s *RedisRepositoryTestSuite) TestListSkipsCorruptEntries() {
	s.save(library.EntryKindDeck, "Good")
	s.mr.HSet("library:player_1", "broken", "not json")

	out, err := s.repo.List(s.ctx, library.ListInput{OwnerID: "player_1"})
	s.Require().NoError(err)
	s.Len(out.Entries, 1)
}

func (s *RedisRepositoryTestSuite) TestDelete() {
	entry := s.save(library.EntryKindDeck, "Aggro")

	_, err := s.repo.Delete(s.ctx, library.DeleteInput{OwnerID: "player_1", ID: entry.ID})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, library.GetInput{OwnerID: "player_1", ID: entry.ID})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Delete(s.ctx, library.DeleteInput{OwnerID: "player_1", ID: entry.ID})
	s.True(errors.IsNotFound(err))
}
