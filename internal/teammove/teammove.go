// Package teammove moves cards and spellcasters between the decks of a team.
//
// Operations take the team's decks by value and return a new array. A failure at
// any step returns the original array with nothing applied.
package teammove

import (
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/rules"
)

// Decks is the fixed set of decks in a team
type Decks = [entities.TeamSize]entities.Deck

func checkDeckIndex(indexes ...int) error {
	for _, index := range indexes {
		if index < 0 || index >= entities.TeamSize {
			return errors.Newf(errors.CodeInvalidDeck, "deck %d is outside 0..%d", index, entities.TeamSize-1).
				WithMeta("deck", index)
		}
	}
	return nil
}

// MoveCardBetweenDecks moves the card at srcSlot of deck srcDeck into dstSlot of
// deck dstDeck. A card already at the destination is swapped back into the source
// slot; otherwise the source slot is cleared. Within a single deck this is a swap.
func MoveCardBetweenDecks(decks Decks, srcDeck, srcSlot, dstDeck, dstSlot int) (Decks, error) {
	if err := checkDeckIndex(srcDeck, dstDeck); err != nil {
		return decks, err
	}

	if srcDeck == dstDeck {
		updated, err := rules.SwapSlots(decks[srcDeck], srcSlot, dstSlot)
		if err != nil {
			return decks, err
		}
		result := decks
		result[srcDeck] = updated
		return result, nil
	}

	source, dest := decks[srcDeck], decks[dstDeck]

	// validates the source slot index and shape before reading the occupant
	if _, err := rules.ClearSlot(source, srcSlot); err != nil {
		return decks, err
	}
	card := source.Slots[srcSlot].Card
	if card == nil {
		return decks, errors.Newf(errors.CodeEmptySource, "slot %d of deck %d is empty", srcSlot, srcDeck).
			WithMeta("deck", srcDeck).
			WithMeta("slot", srcSlot)
	}

	newDest, err := rules.SetSlot(dest, dstSlot, card)
	if err != nil {
		return decks, errors.Wrapf(err, "failed to place %q in deck %d", card.ID, dstDeck)
	}

	var newSource entities.Deck
	if displaced := dest.Slots[dstSlot].Card; displaced != nil {
		newSource, err = rules.SetSlot(source, srcSlot, displaced)
		if err != nil {
			return decks, errors.WrapWithCode(err, errors.CodeSourceFail,
				"displaced card does not fit the source slot").
				WithMeta("card_id", displaced.ID)
		}
	} else {
		newSource, err = rules.ClearSlot(source, srcSlot)
		if err != nil {
			return decks, errors.WrapWithCode(err, errors.CodeSourceFail, "failed to clear the source slot")
		}
	}

	result := decks
	result[srcDeck] = newSource
	result[dstDeck] = newDest
	return result, nil
}

// MoveSpellcasterBetweenDecks moves the source deck's spellcaster to the
// destination deck, swapping with any spellcaster already there.
func MoveSpellcasterBetweenDecks(decks Decks, srcDeck, dstDeck int) (Decks, error) {
	if err := checkDeckIndex(srcDeck, dstDeck); err != nil {
		return decks, err
	}

	source, dest := decks[srcDeck], decks[dstDeck]
	if source.Spellcaster == nil {
		return decks, errors.Newf(errors.CodeEmptySource, "deck %d has no spellcaster", srcDeck).
			WithMeta("deck", srcDeck)
	}
	if srcDeck == dstDeck {
		return decks, nil
	}

	newDest, err := rules.SetSpellcaster(dest, source.Spellcaster)
	if err != nil {
		return decks, err
	}
	// a nil previous spellcaster clears the source
	newSource, err := rules.SetSpellcaster(source, dest.Spellcaster)
	if err != nil {
		return decks, errors.WrapWithCode(err, errors.CodeSourceFail, "failed to update the source spellcaster")
	}

	result := decks
	result[srcDeck] = newSource
	result[dstDeck] = newDest
	return result, nil
}
