package entities

import (
	"fmt"

	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
)

const (
	// SlotCount is the number of card slots in every deck
	SlotCount = 5
	// TitanSlot is the index of the only slot that accepts titans
	TitanSlot = SlotCount - 1
	// TeamSize is the number of decks in a team
	TeamSize = 3
)

// DeckSlot is one card position in a deck
type DeckSlot struct {
	Index   int      `json:"index"`
	Card    *Card    `json:"card,omitempty"`
	Allowed SlotType `json:"allowed"`
}

// IsEmpty reports whether the slot has no occupant
func (s DeckSlot) IsEmpty() bool {
	return s.Card == nil
}

// Allows reports whether card may occupy this slot
func (s DeckSlot) Allows(card *Card) bool {
	return card != nil && card.SlotType() == s.Allowed
}

// Deck is a spellcaster plus five slots. Slots 0-3 hold units, slot 4 holds a titan.
type Deck struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Spellcaster *Card               `json:"spellcaster,omitempty"`
	Slots       [SlotCount]DeckSlot `json:"slots"`
}

// AllowedSlotType returns the slot type for the slot at index
func AllowedSlotType(index int) SlotType {
	if index == TitanSlot {
		return SlotTypeTitan
	}
	return SlotTypeUnit
}

// NewDeck creates an empty deck with the canonical slot layout
func NewDeck(id, name string) Deck {
	deck := Deck{ID: id, Name: name}
	for i := range deck.Slots {
		deck.Slots[i] = DeckSlot{Index: i, Allowed: AllowedSlotType(i)}
	}
	return deck
}

// IsEmpty is true when there is no spellcaster and every slot is unoccupied
func (d Deck) IsEmpty() bool {
	if d.Spellcaster != nil {
		return false
	}
	for _, slot := range d.Slots {
		if slot.Card != nil {
			return false
		}
	}
	return true
}

// CheckShape reports a slot whose index or allowed type does not match its position.
// A zero-value Deck fails this check; build decks with NewDeck.
func (d Deck) CheckShape() error {
	for i, slot := range d.Slots {
		if slot.Index != i {
			return errors.Newf(errors.CodeInvalidDeckShape, "slot at position %d reports index %d", i, slot.Index).
				WithMeta("deck_id", d.ID)
		}
		if slot.Allowed != AllowedSlotType(i) {
			return errors.Newf(errors.CodeInvalidDeckShape, "slot %d allows %q, want %q", i, slot.Allowed, AllowedSlotType(i)).
				WithMeta("deck_id", d.ID)
		}
	}
	return nil
}

// CardIDs returns the occupant IDs in slot order, empty for unoccupied slots
func (d Deck) CardIDs() [SlotCount]string {
	var ids [SlotCount]string
	for i, slot := range d.Slots {
		ids[i] = CardID(slot.Card)
	}
	return ids
}

func (d Deck) String() string {
	return fmt.Sprintf("Deck(%s %q sc=%s slots=%v)", d.ID, d.Name, CardID(d.Spellcaster), d.CardIDs())
}
