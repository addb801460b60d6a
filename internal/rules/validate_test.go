package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/rules"
)

func completeDeck() entities.Deck {
	deck := entities.NewDeck("deck-1", "Complete")
	deck.Spellcaster = spellcaster
	deck.Slots[0].Card = unitA
	deck.Slots[1].Card = unitB
	deck.Slots[2].Card = spell
	deck.Slots[3].Card = building
	deck.Slots[4].Card = titan
	return deck
}

func TestValidateDeckComplete(t *testing.T) {
	assert.NoError(t, rules.ValidateDeck(completeDeck()))
}

func TestValidateDeckWarnings(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*entities.Deck)
		field  string
	}{
		{
			name:   "missing spellcaster",
			mutate: func(d *entities.Deck) { d.Spellcaster = nil },
			field:  "spellcaster",
		},
		{
			name:   "unit as spellcaster",
			mutate: func(d *entities.Deck) { d.Spellcaster = unitA },
			field:  "spellcaster",
		},
		{
			name:   "missing titan",
			mutate: func(d *entities.Deck) { d.Slots[4].Card = nil },
			field:  "slots[4]",
		},
		{
			name:   "titan in a unit slot from an old link",
			mutate: func(d *entities.Deck) { d.Slots[2].Card = &entities.Card{ID: "t_2", Kind: entities.CardKindTitan} },
			field:  "slots[2]",
		},
		{
			name:   "duplicate card",
			mutate: func(d *entities.Deck) { d.Slots[1].Card = unitA },
			field:  "slots[1]",
		},
		{
			name:   "empty unit slots",
			mutate: func(d *entities.Deck) { d.Slots[0].Card, d.Slots[3].Card = nil, nil },
			field:  "slots",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			deck := completeDeck()
			tc.mutate(&deck)

			err := rules.ValidateDeck(deck)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, errors.ValidationFields(err), tc.field)
		})
	}
}

func TestValidateDeckShape(t *testing.T) {
	err := rules.ValidateDeck(entities.Deck{})
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidDeckShape, errors.GetCode(err))
}
