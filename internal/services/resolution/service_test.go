package resolution_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	catalogmock "github.com/KirkDiggler/deckbuilder-api/internal/clients/catalog/mock"
	"github.com/KirkDiggler/deckbuilder-api/internal/codec"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/pkg/idgen"
	"github.com/KirkDiggler/deckbuilder-api/internal/services/resolution"
)

var testCatalog = []entities.Card{
	{ID: "sc_1", Kind: entities.CardKindSpellcaster},
	{ID: "u_1", Kind: entities.CardKindUnit},
	{ID: "u_2", Kind: entities.CardKindUnit},
	{ID: "s_1", Kind: entities.CardKindSpell},
	{ID: "b_1", Kind: entities.CardKindBuilding},
	{ID: "t_1", Kind: entities.CardKindTitan},
}

type ResolutionTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockCatalog *catalogmock.MockClient
	service     resolution.Service
	ctx         context.Context
}

func TestResolutionSuite(t *testing.T) {
	suite.Run(t, new(ResolutionTestSuite))
}

func (s *ResolutionTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCatalog = catalogmock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	svc, err := resolution.New(&resolution.Config{
		CatalogClient: s.mockCatalog,
		IDGenerator:   idgen.NewSequential("deck"),
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *ResolutionTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ResolutionTestSuite) TestConfigValidation() {
	_, err := resolution.New(&resolution.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "CatalogClient")
	s.Contains(err.Error(), "IDGenerator")
}

func (s *ResolutionTestSuite) TestResolveDeck() {
	s.mockCatalog.EXPECT().ListCards(s.ctx).Return(testCatalog, nil)

	out, err := s.service.ResolveDeck(s.ctx, &resolution.ResolveDeckInput{
		Deck: codec.StoredDeck{
			SpellcasterID: "sc_1",
			SlotIDs:       [entities.SlotCount]string{"u_1", "u_2", "s_1", "b_1", "t_1"},
			Name:          "Full",
		},
	})
	s.Require().NoError(err)
	s.Equal("deck_1", out.Deck.ID)
	s.Equal("Full", out.Deck.Name)
	s.Equal("sc_1", entities.CardID(out.Deck.Spellcaster))
	s.Equal([entities.SlotCount]string{"u_1", "u_2", "s_1", "b_1", "t_1"}, out.Deck.CardIDs())
	s.Empty(out.Warnings)
	s.NoError(out.Deck.CheckShape())
}

func (s *ResolutionTestSuite) TestResolveDeckUnknownIDs() {
	s.mockCatalog.EXPECT().ListCards(s.ctx).Return(testCatalog, nil)

	out, err := s.service.ResolveDeck(s.ctx, &resolution.ResolveDeckInput{
		DeckID: "keep-me",
		Deck: codec.StoredDeck{
			SpellcasterID: "sc_removed",
			SlotIDs:       [entities.SlotCount]string{"u_1", "u_nerfed", "", "", "t_1"},
		},
	})
	s.Require().NoError(err)
	s.Equal("keep-me", out.Deck.ID)
	s.Nil(out.Deck.Spellcaster)
	s.Nil(out.Deck.Slots[1].Card)
	s.Contains(out.Warnings, "spellcaster")
}

func (s *ResolutionTestSuite) TestResolveDeckKeepsIllegalPlacement() {
	s.mockCatalog.EXPECT().ListCards(s.ctx).Return(testCatalog, nil)

	out, err := s.service.ResolveDeck(s.ctx, &resolution.ResolveDeckInput{
		Deck: codec.StoredDeck{
			SpellcasterID: "sc_1",
			SlotIDs:       [entities.SlotCount]string{"t_1", "u_1", "u_2", "s_1", ""},
		},
	})
	s.Require().NoError(err)
	s.Equal("t_1", entities.CardID(out.Deck.Slots[0].Card))
	s.Contains(out.Warnings, "slots[0]")
	s.Contains(out.Warnings, "slots[4]")
}

func (s *ResolutionTestSuite) TestResolveIsIdempotent() {
	s.mockCatalog.EXPECT().ListCards(s.ctx).Return(testCatalog, nil).Times(2)
	input := &resolution.ResolveDeckInput{
		DeckID: "d",
		Deck:   codec.StoredDeck{SpellcasterID: "sc_1", SlotIDs: [entities.SlotCount]string{"u_1"}},
	}

	first, err := s.service.ResolveDeck(s.ctx, input)
	s.Require().NoError(err)
	second, err := s.service.ResolveDeck(s.ctx, input)
	s.Require().NoError(err)
	s.Equal(first.Deck, second.Deck)
}

func (s *ResolutionTestSuite) TestResolveTeam() {
	s.mockCatalog.EXPECT().ListCards(s.ctx).Return(testCatalog, nil)

	out, err := s.service.ResolveTeam(s.ctx, &resolution.ResolveTeamInput{
		TeamID:  "team-1",
		DeckIDs: [entities.TeamSize]string{"a", "", "c"},
		Team: codec.StoredTeam{
			Name: "Trio",
			Decks: [entities.TeamSize]*codec.StoredDeck{
				{SpellcasterID: "sc_1", Name: "First"},
				nil,
				{SlotIDs: [entities.SlotCount]string{"", "", "", "", "t_1"}},
			},
		},
	})
	s.Require().NoError(err)
	s.Equal("team-1", out.Team.ID)
	s.Equal("Trio", out.Team.Name)
	s.Equal("a", out.Team.Decks[0].ID)
	s.Equal("deck_1", out.Team.Decks[1].ID)
	s.Equal("c", out.Team.Decks[2].ID)
	s.True(out.Team.Decks[1].IsEmpty())
	s.NoError(out.Team.Decks[1].CheckShape())
	s.Equal("First", out.Team.Decks[0].Name)
	s.Nil(out.Warnings[1])
	s.Contains(out.Warnings[2], "spellcaster")
}

func (s *ResolutionTestSuite) TestCatalogFailure() {
	s.mockCatalog.EXPECT().ListCards(s.ctx).Return(nil, errors.Unavailable("catalog down"))

	_, err := s.service.ResolveDeck(s.ctx, &resolution.ResolveDeckInput{})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *ResolutionTestSuite) TestGetCard() {
	s.mockCatalog.EXPECT().ListCards(s.ctx).Return(testCatalog, nil).Times(2)

	out, err := s.service.GetCard(s.ctx, &resolution.GetCardInput{CardID: "t_1"})
	s.Require().NoError(err)
	s.Equal(entities.CardKindTitan, out.Card.Kind)

	_, err = s.service.GetCard(s.ctx, &resolution.GetCardInput{CardID: "nope"})
	s.True(errors.IsNotFound(err))

	_, err = s.service.GetCard(s.ctx, &resolution.GetCardInput{})
	s.True(errors.IsInvalidArgument(err))
}
