// Package drag classifies a drag and drop gesture into a builder intent.
//
// DetermineAction is pure: it never touches deck state. The caller dispatches the
// returned Action to the rules engine for same-deck intents or to team movement
// when the source and target decks differ.
package drag

import (
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
)

// ActionType is the closed set of builder intents
type ActionType string

// Intents
const (
	ActionNoOp              ActionType = "NO_OP"
	ActionMoveSlot          ActionType = "MOVE_SLOT"
	ActionSetSlot           ActionType = "SET_SLOT"
	ActionClearSlot         ActionType = "CLEAR_SLOT"
	ActionSetSpellcaster    ActionType = "SET_SPELLCASTER"
	ActionRemoveSpellcaster ActionType = "REMOVE_SPELLCASTER"
)

// SourceKind says where a drag started
type SourceKind string

// Source kinds
const (
	// SourceCatalog is a card from the catalog browser, not yet in any deck
	SourceCatalog SourceKind = "catalog"
	// SourceDeckSlot is one of a deck's five card slots
	SourceDeckSlot SourceKind = "deck_slot"
	// SourceSpellcaster is a deck's spellcaster position
	SourceSpellcaster SourceKind = "spellcaster"
)

// TargetKind says where a drag was dropped
type TargetKind string

// Target kinds
const (
	TargetDeckSlot    TargetKind = "deck_slot"
	TargetSpellcaster TargetKind = "spellcaster"
	// TargetRemove is an explicit remove zone
	TargetRemove TargetKind = "remove"
)

// Source describes the dragged item
type Source struct {
	Kind      SourceKind     `json:"kind"`
	Card      *entities.Card `json:"card,omitempty"`
	DeckID    string         `json:"deckId,omitempty"`
	SlotIndex int            `json:"slotIndex"`
}

// Target describes the drop zone
type Target struct {
	Kind      TargetKind `json:"kind"`
	DeckID    string     `json:"deckId,omitempty"`
	SlotIndex int        `json:"slotIndex"`
}

// Action is a classified intent. Fields that do not apply to Type are zero.
// An empty TargetDeckID means the source deck.
type Action struct {
	Type         ActionType     `json:"type"`
	Card         *entities.Card `json:"card,omitempty"`
	SourceDeckID string         `json:"sourceDeckId,omitempty"`
	SourceIndex  int            `json:"sourceIndex"`
	TargetDeckID string         `json:"targetDeckId,omitempty"`
	TargetIndex  int            `json:"targetIndex"`
}

// IsCrossDeck reports whether the action moves something between two different decks
func (a Action) IsCrossDeck() bool {
	return a.SourceDeckID != "" && a.TargetDeckID != "" && a.SourceDeckID != a.TargetDeckID
}

var noOp = Action{Type: ActionNoOp}

func validSlot(index int) bool {
	return index >= 0 && index < entities.SlotCount
}

// valid reports whether the target names a drop zone the builder understands
func (t *Target) valid() bool {
	if t == nil {
		return false
	}
	switch t.Kind {
	case TargetDeckSlot:
		return validSlot(t.SlotIndex)
	case TargetSpellcaster, TargetRemove:
		return true
	default:
		return false
	}
}

// DetermineAction maps a drag source and drop target to exactly one intent.
// Rules are checked in order and the first match wins.
func DetermineAction(source *Source, target *Target) Action {
	if source == nil {
		return noOp
	}

	// dropped on nothing: only a dragged-out spellcaster means anything
	if !target.valid() {
		if source.Kind == SourceSpellcaster && source.DeckID != "" && source.Card != nil {
			return Action{
				Type:         ActionRemoveSpellcaster,
				Card:         source.Card,
				SourceDeckID: source.DeckID,
				TargetDeckID: source.DeckID,
			}
		}
		return noOp
	}

	if target.Kind == TargetRemove {
		return removeAction(source)
	}

	switch source.Kind {
	case SourceCatalog:
		if source.Card == nil {
			return noOp
		}
		switch target.Kind {
		case TargetDeckSlot:
			return Action{
				Type:         ActionSetSlot,
				Card:         source.Card,
				TargetDeckID: target.DeckID,
				TargetIndex:  target.SlotIndex,
			}
		case TargetSpellcaster:
			return Action{
				Type:         ActionSetSpellcaster,
				Card:         source.Card,
				TargetDeckID: target.DeckID,
			}
		}

	case SourceDeckSlot:
		if source.Card == nil || !validSlot(source.SlotIndex) || target.Kind != TargetDeckSlot {
			return noOp
		}
		targetDeckID := target.DeckID
		if targetDeckID == "" {
			targetDeckID = source.DeckID
		}
		return Action{
			Type:         ActionMoveSlot,
			Card:         source.Card,
			SourceDeckID: source.DeckID,
			SourceIndex:  source.SlotIndex,
			TargetDeckID: targetDeckID,
			TargetIndex:  target.SlotIndex,
		}

	case SourceSpellcaster:
		if source.Card == nil || target.Kind != TargetSpellcaster {
			return noOp
		}
		if target.DeckID == "" || target.DeckID == source.DeckID {
			return noOp
		}
		return Action{
			Type:         ActionSetSpellcaster,
			Card:         source.Card,
			SourceDeckID: source.DeckID,
			TargetDeckID: target.DeckID,
		}
	}

	return noOp
}

func removeAction(source *Source) Action {
	if source.Card == nil {
		return noOp
	}
	switch source.Kind {
	case SourceDeckSlot:
		if !validSlot(source.SlotIndex) {
			return noOp
		}
		return Action{
			Type:         ActionClearSlot,
			Card:         source.Card,
			SourceDeckID: source.DeckID,
			SourceIndex:  source.SlotIndex,
			TargetDeckID: source.DeckID,
			TargetIndex:  source.SlotIndex,
		}
	case SourceSpellcaster:
		return Action{
			Type:         ActionRemoveSpellcaster,
			Card:         source.Card,
			SourceDeckID: source.DeckID,
			TargetDeckID: source.DeckID,
		}
	default:
		return noOp
	}
}
