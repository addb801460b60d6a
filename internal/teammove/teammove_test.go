package teammove_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/teammove"
)

var (
	cardX   = &entities.Card{ID: "u_x", Kind: entities.CardKindUnit}
	cardY   = &entities.Card{ID: "u_y", Kind: entities.CardKindUnit}
	titanA  = &entities.Card{ID: "t_a", Kind: entities.CardKindTitan}
	casterA = &entities.Card{ID: "sc_a", Kind: entities.CardKindSpellcaster}
	casterB = &entities.Card{ID: "sc_b", Kind: entities.CardKindSpellcaster}
)

type TeamMoveTestSuite struct {
	suite.Suite
	decks teammove.Decks
}

func TestTeamMoveSuite(t *testing.T) {
	suite.Run(t, new(TeamMoveTestSuite))
}

func (s *TeamMoveTestSuite) SetupTest() {
	s.decks = teammove.Decks{
		entities.NewDeck("a", "A"),
		entities.NewDeck("b", "B"),
		entities.NewDeck("c", "C"),
	}
	s.decks[0].Slots[0].Card = cardX
	s.decks[0].Spellcaster = casterA
	s.decks[1].Slots[0].Card = cardY
	s.decks[1].Slots[4].Card = titanA
}

func (s *TeamMoveTestSuite) TestCrossDeckSwap() {
	got, err := teammove.MoveCardBetweenDecks(s.decks, 0, 0, 1, 0)
	s.Require().NoError(err)

	s.Same(cardY, got[0].Slots[0].Card)
	s.Same(cardX, got[1].Slots[0].Card)
	s.Equal(s.decks[2], got[2])
	// original untouched
	s.Same(cardX, s.decks[0].Slots[0].Card)
	s.Same(cardY, s.decks[1].Slots[0].Card)
}

func (s *TeamMoveTestSuite) TestCrossDeckMoveIntoEmptySlot() {
	got, err := teammove.MoveCardBetweenDecks(s.decks, 0, 0, 2, 3)
	s.Require().NoError(err)

	s.Nil(got[0].Slots[0].Card)
	s.Same(cardX, got[2].Slots[3].Card)
}

func (s *TeamMoveTestSuite) TestSameDeckDelegatesToSwap() {
	got, err := teammove.MoveCardBetweenDecks(s.decks, 0, 0, 0, 2)
	s.Require().NoError(err)
	s.Nil(got[0].Slots[0].Card)
	s.Same(cardX, got[0].Slots[2].Card)

	before := s.decks
	_, err = teammove.MoveCardBetweenDecks(s.decks, 1, 4, 1, 1)
	s.Equal(errors.CodeInvalidSwap, errors.GetCode(err))
	s.Equal(before, s.decks)
}

func (s *TeamMoveTestSuite) TestFailures() {
	testCases := []struct {
		name                      string
		srcDeck, srcSlot, dstDeck int
		dstSlot                   int
		code                      errors.Code
	}{
		{name: "empty source", srcDeck: 2, srcSlot: 0, dstDeck: 0, dstSlot: 1, code: errors.CodeEmptySource},
		{name: "source deck out of range", srcDeck: 3, srcSlot: 0, dstDeck: 0, dstSlot: 0, code: errors.CodeInvalidDeck},
		{name: "destination deck negative", srcDeck: 0, srcSlot: 0, dstDeck: -1, dstSlot: 0, code: errors.CodeInvalidDeck},
		{name: "unit into the titan slot", srcDeck: 0, srcSlot: 0, dstDeck: 1, dstSlot: 4, code: errors.CodeWrongSlotType},
		{name: "titan into a unit slot", srcDeck: 1, srcSlot: 4, dstDeck: 2, dstSlot: 0, code: errors.CodeWrongSlotType},
		{name: "source slot out of range", srcDeck: 0, srcSlot: 7, dstDeck: 1, dstSlot: 0, code: errors.CodeInvalidSlot},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			before := s.decks
			got, err := teammove.MoveCardBetweenDecks(s.decks, tc.srcDeck, tc.srcSlot, tc.dstDeck, tc.dstSlot)
			s.Require().Error(err)
			s.Equal(tc.code, errors.GetCode(err))
			s.Equal(before, got)
		})
	}
}

func (s *TeamMoveTestSuite) TestDisplacedCardRejectedBySource() {
	// a titan sitting in a unit slot can only come from an old saved link
	s.decks[2].Slots[1].Card = &entities.Card{ID: "t_legacy", Kind: entities.CardKindTitan}
	before := s.decks

	got, err := teammove.MoveCardBetweenDecks(s.decks, 0, 0, 2, 1)
	s.Require().Error(err)
	s.Equal(errors.CodeSourceFail, errors.GetCode(err))
	s.Equal(before, got)
}

func (s *TeamMoveTestSuite) TestMoveSpellcaster() {
	s.Run("into a deck without one", func() {
		got, err := teammove.MoveSpellcasterBetweenDecks(s.decks, 0, 2)
		s.Require().NoError(err)
		s.Nil(got[0].Spellcaster)
		s.Same(casterA, got[2].Spellcaster)
	})

	s.Run("swaps with an existing one", func() {
		decks := s.decks
		decks[1].Spellcaster = casterB
		got, err := teammove.MoveSpellcasterBetweenDecks(decks, 0, 1)
		s.Require().NoError(err)
		s.Same(casterB, got[0].Spellcaster)
		s.Same(casterA, got[1].Spellcaster)
	})

	s.Run("same deck is a no-op", func() {
		got, err := teammove.MoveSpellcasterBetweenDecks(s.decks, 0, 0)
		s.Require().NoError(err)
		s.Equal(s.decks, got)
	})

	s.Run("empty source", func() {
		got, err := teammove.MoveSpellcasterBetweenDecks(s.decks, 1, 0)
		s.Equal(errors.CodeEmptySource, errors.GetCode(err))
		s.Equal(s.decks, got)
	})

	s.Run("invalid deck", func() {
		got, err := teammove.MoveSpellcasterBetweenDecks(s.decks, 0, 3)
		s.Equal(errors.CodeInvalidDeck, errors.GetCode(err))
		s.Equal(s.decks, got)
	})
}
