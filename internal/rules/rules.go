// Package rules applies single mutations to a deck.
//
// Every operation takes a deck by value and returns the updated copy. On failure
// the input deck is returned as-is together with an *errors.Error carrying one of
// the stable rule codes. Deck ID and Name are never modified.
package rules

import (
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
)

// check runs the structural checks shared by every slot operation
func check(deck entities.Deck, indexes ...int) error {
	if err := deck.CheckShape(); err != nil {
		return err
	}
	for _, index := range indexes {
		if index < 0 || index >= entities.SlotCount {
			return errors.Newf(errors.CodeInvalidSlot, "slot %d is outside 0..%d", index, entities.SlotCount-1).
				WithMeta("deck_id", deck.ID).
				WithMeta("slot", index)
		}
	}
	return nil
}

// SetSlot places card at index, replacing any current occupant
func SetSlot(deck entities.Deck, index int, card *entities.Card) (entities.Deck, error) {
	if err := check(deck, index); err != nil {
		return deck, err
	}
	if card == nil {
		return deck, errors.InvalidArgument("card is required; use ClearSlot to empty a slot")
	}

	slot := deck.Slots[index]
	if !slot.Allows(card) {
		return deck, errors.Newf(errors.CodeWrongSlotType, "%s %q cannot go in %s slot %d",
			card.Kind, card.ID, slot.Allowed, index).
			WithMeta("deck_id", deck.ID).
			WithMeta("slot", index).
			WithMeta("card_id", card.ID)
	}

	deck.Slots[index].Card = card
	return deck, nil
}

// ClearSlot empties the slot at index. Clearing an empty slot is a no-op.
func ClearSlot(deck entities.Deck, index int) (entities.Deck, error) {
	if err := check(deck, index); err != nil {
		return deck, err
	}

	deck.Slots[index].Card = nil
	return deck, nil
}

// SwapSlots exchanges the occupants of two slots. Both resulting placements must
// be legal for their new slot. Swapping a slot with itself is a no-op.
func SwapSlots(deck entities.Deck, a, b int) (entities.Deck, error) {
	if err := check(deck, a, b); err != nil {
		return deck, err
	}
	if a == b {
		return deck, nil
	}

	cardA, cardB := deck.Slots[a].Card, deck.Slots[b].Card
	if !fits(deck.Slots[b], cardA) || !fits(deck.Slots[a], cardB) {
		return deck, errors.Newf(errors.CodeInvalidSwap, "swapping slots %d and %d would misplace a card", a, b).
			WithMeta("deck_id", deck.ID).
			WithMeta("slot_a", a).
			WithMeta("slot_b", b)
	}

	deck.Slots[a].Card, deck.Slots[b].Card = cardB, cardA
	return deck, nil
}

// fits treats an empty occupant as always allowed
func fits(slot entities.DeckSlot, card *entities.Card) bool {
	return card == nil || slot.Allows(card)
}

// SetSpellcaster replaces the deck's spellcaster. A nil card clears it.
func SetSpellcaster(deck entities.Deck, spellcaster *entities.Card) (entities.Deck, error) {
	if err := check(deck); err != nil {
		return deck, err
	}

	deck.Spellcaster = spellcaster
	return deck, nil
}

// RemoveSpellcaster clears the deck's spellcaster
func RemoveSpellcaster(deck entities.Deck) (entities.Deck, error) {
	return SetSpellcaster(deck, nil)
}
