package entities

// CardKind is the catalog category of a card
type CardKind string

// Card kinds known to the catalog
const (
	CardKindUnit        CardKind = "unit"
	CardKindSpell       CardKind = "spell"
	CardKindBuilding    CardKind = "building"
	CardKindTitan       CardKind = "titan"
	CardKindSpellcaster CardKind = "spellcaster"
)

// SlotType is the kind of occupant a deck slot accepts
type SlotType string

// Slot types. SlotTypeNone is reported for cards that never occupy a slot.
const (
	SlotTypeNone  SlotType = ""
	SlotTypeUnit  SlotType = "unit"
	SlotTypeTitan SlotType = "titan"
)

// Card is a catalog entry. The deck builder only relies on ID and Kind.
type Card struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Kind        CardKind `json:"kind" yaml:"kind"`
	Category    string   `json:"category,omitempty" yaml:"category,omitempty"`
	Rank        string   `json:"rank,omitempty" yaml:"rank,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
}

// SlotType returns the slot type this card fits. Spells and buildings count as units.
func (c *Card) SlotType() SlotType {
	if c == nil {
		return SlotTypeNone
	}
	switch c.Kind {
	case CardKindTitan:
		return SlotTypeTitan
	case CardKindSpellcaster:
		return SlotTypeNone
	default:
		return SlotTypeUnit
	}
}

// IsSpellcaster reports whether the card can lead a deck
func (c *Card) IsSpellcaster() bool {
	return c != nil && c.Kind == CardKindSpellcaster
}

// CardID returns the card ID or empty for a nil card
func CardID(c *Card) string {
	if c == nil {
		return ""
	}
	return c.ID
}
