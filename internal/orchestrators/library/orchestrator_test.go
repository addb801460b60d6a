package library_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/deckbuilder-api/internal/codec"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/orchestrators/library"
	"github.com/KirkDiggler/deckbuilder-api/internal/pkg/clock"
	"github.com/KirkDiggler/deckbuilder-api/internal/pkg/idgen"
	libraryrepo "github.com/KirkDiggler/deckbuilder-api/internal/repositories/library"
	librarymock "github.com/KirkDiggler/deckbuilder-api/internal/repositories/library/mock"
	"github.com/KirkDiggler/deckbuilder-api/internal/services/resolution"
	resolutionmock "github.com/KirkDiggler/deckbuilder-api/internal/services/resolution/mock"
	"github.com/KirkDiggler/deckbuilder-api/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockResolver *resolutionmock.MockService
	mr           *miniredis.Miniredis
	orchestrator library.Service
	ctx          context.Context
	deck         codec.StoredDeck
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockResolver = resolutionmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr
	repo, err := libraryrepo.NewRedisRepository(&libraryrepo.Config{
		Client:      client,
		Clock:       &clock.Fixed{At: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		IDGenerator: idgen.NewSequential("entry"),
	})
	s.Require().NoError(err)

	orch, err := library.NewOrchestrator(&library.Config{Repository: repo, Resolver: s.mockResolver})
	s.Require().NoError(err)
	s.orchestrator = orch

	s.deck = codec.StoredDeck{
		SpellcasterID: "sc_1",
		SlotIDs:       [entities.SlotCount]string{"u_1", "", "", "", "t_1"},
		Name:          "Tempo~Deck",
	}
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestSaveAndLoadDeck() {
	saved, err := s.orchestrator.SaveDeck(s.ctx, &library.SaveDeckInput{OwnerID: "p1", Deck: s.deck})
	s.Require().NoError(err)
	s.Equal("entry_1", saved.Entry.ID)
	s.Equal("TempoDeck", saved.Entry.Name)
	s.Equal(libraryrepo.EntryKindDeck, saved.Entry.Kind)

	resolved := entities.NewDeck("entry_1", "TempoDeck")
	s.mockResolver.EXPECT().ResolveDeck(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *resolution.ResolveDeckInput) (*resolution.ResolveDeckOutput, error) {
			s.Equal("entry_1", input.DeckID)
			s.Equal("sc_1", input.Deck.SpellcasterID)
			s.Equal("t_1", input.Deck.SlotIDs[4])
			return &resolution.ResolveDeckOutput{Deck: resolved}, nil
		})

	loaded, err := s.orchestrator.Load(s.ctx, &library.LoadInput{OwnerID: "p1", ID: "entry_1"})
	s.Require().NoError(err)
	s.Require().NotNil(loaded.Deck)
	s.Equal("entry_1", loaded.Deck.ID)
	s.Nil(loaded.Team)
}

func (s *OrchestratorTestSuite) TestSaveAndLoadTeam() {
	saved, err := s.orchestrator.SaveTeam(s.ctx, &library.SaveTeamInput{
		OwnerID: "p1",
		Name:    "Trio",
		Decks:   [entities.TeamSize]codec.StoredDeck{s.deck, {}, s.deck},
	})
	s.Require().NoError(err)
	s.True(codec.IsTeamV2(saved.Entry.Token))

	team := entities.NewTeam(saved.Entry.ID, "Trio", [entities.TeamSize]string{"a", "b", "c"})
	s.mockResolver.EXPECT().ResolveTeam(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *resolution.ResolveTeamInput) (*resolution.ResolveTeamOutput, error) {
			s.Equal(saved.Entry.ID, input.TeamID)
			s.Equal("Trio", input.Team.Name)
			return &resolution.ResolveTeamOutput{Team: team}, nil
		})

	loaded, err := s.orchestrator.Load(s.ctx, &library.LoadInput{OwnerID: "p1", ID: saved.Entry.ID})
	s.Require().NoError(err)
	s.Require().NotNil(loaded.Team)
	s.Equal("Trio", loaded.Team.Name)
}

func (s *OrchestratorTestSuite) TestLoadLegacyTeamToken() {
	legacy, err := codec.EncodeTeamLegacy([entities.TeamSize]codec.StoredDeck{s.deck, s.deck, s.deck})
	s.Require().NoError(err)
	s.mr.HSet("library:p1", "old", `{"id":"old","owner_id":"p1","kind":"team","name":"Old","token":"`+legacy+`"}`)

	s.mockResolver.EXPECT().ResolveTeam(s.ctx, gomock.Any()).
		Return(&resolution.ResolveTeamOutput{Team: entities.NewTeam("old", "", [entities.TeamSize]string{"a", "b", "c"})}, nil)

	loaded, err := s.orchestrator.Load(s.ctx, &library.LoadInput{OwnerID: "p1", ID: "old"})
	s.Require().NoError(err)
	s.NotNil(loaded.Team)
}

func (s *OrchestratorTestSuite) TestLoadUnreadableToken() {
	s.mr.HSet("library:p1", "bad", `{"id":"bad","owner_id":"p1","kind":"deck","token":"garbage"}`)

	_, err := s.orchestrator.Load(s.ctx, &library.LoadInput{OwnerID: "p1", ID: "bad"})
	s.True(errors.IsInvalidToken(err))
}

func (s *OrchestratorTestSuite) TestLoadMissing() {
	_, err := s.orchestrator.Load(s.ctx, &library.LoadInput{OwnerID: "p1", ID: "nope"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestListAndDelete() {
	_, err := s.orchestrator.SaveDeck(s.ctx, &library.SaveDeckInput{OwnerID: "p1", Deck: s.deck})
	s.Require().NoError(err)
	_, err = s.orchestrator.SaveTeam(s.ctx, &library.SaveTeamInput{OwnerID: "p1", Name: "T", Decks: [entities.TeamSize]codec.StoredDeck{s.deck}})
	s.Require().NoError(err)

	all, err := s.orchestrator.List(s.ctx, &library.ListInput{OwnerID: "p1"})
	s.Require().NoError(err)
	s.Len(all.Entries, 2)

	teams, err := s.orchestrator.List(s.ctx, &library.ListInput{OwnerID: "p1", Kind: libraryrepo.EntryKindTeam})
	s.Require().NoError(err)
	s.Require().Len(teams.Entries, 1)

	_, err = s.orchestrator.Delete(s.ctx, &library.DeleteInput{OwnerID: "p1", ID: teams.Entries[0].ID})
	s.Require().NoError(err)

	_, err = s.orchestrator.Delete(s.ctx, &library.DeleteInput{OwnerID: "p1", ID: teams.Entries[0].ID})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestRepositoryFailure() {
	repo := librarymock.NewMockRepository(s.ctrl)
	orch, err := library.NewOrchestrator(&library.Config{Repository: repo, Resolver: s.mockResolver})
	s.Require().NoError(err)

	repo.EXPECT().Save(s.ctx, gomock.Any()).Return(nil, errors.Unavailable("redis down"))

	_, err = orch.SaveDeck(s.ctx, &library.SaveDeckInput{OwnerID: "p1", Deck: s.deck})
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	_, err := library.NewOrchestrator(&library.Config{})
	s.Require().Error(err)
	s.Contains(errors.ValidationFields(err), "Repository")
}
