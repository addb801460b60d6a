package rules

import (
	"fmt"

	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
)

// ValidateDeck reports what keeps a deck from being complete and legal. It never
// rejects a deck outright; decks decoded from old links may hold placements the
// rule operations would refuse and are surfaced here as warnings.
func ValidateDeck(deck entities.Deck) error {
	vb := errors.NewValidationBuilder()

	if err := deck.CheckShape(); err != nil {
		return err
	}

	switch {
	case deck.Spellcaster == nil:
		vb.RequiredField("spellcaster")
	case !deck.Spellcaster.IsSpellcaster():
		vb.Fieldf("spellcaster", "%q is a %s, not a spellcaster", deck.Spellcaster.ID, deck.Spellcaster.Kind)
	}

	seen := make(map[string]int, entities.SlotCount)
	units := 0
	for i, slot := range deck.Slots {
		field := fmt.Sprintf("slots[%d]", i)
		if slot.Card == nil {
			if slot.Allowed == entities.SlotTypeTitan {
				vb.Field(field, "needs a titan")
			}
			continue
		}

		if !slot.Allows(slot.Card) {
			vb.Fieldf(field, "%s %q is not allowed in a %s slot", slot.Card.Kind, slot.Card.ID, slot.Allowed)
		}
		if first, dup := seen[slot.Card.ID]; dup {
			vb.Fieldf(field, "duplicates slot %d", first)
		} else {
			seen[slot.Card.ID] = i
		}
		if slot.Allowed == entities.SlotTypeUnit {
			units++
		}
	}

	if missing := entities.TitanSlot - units; missing > 0 {
		vb.Fieldf("slots", "%d unit slot(s) empty", missing)
	}

	return vb.Build()
}
