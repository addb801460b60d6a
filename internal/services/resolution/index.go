package resolution

import (
	"github.com/KirkDiggler/deckbuilder-api/internal/codec"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
)

// Index maps card IDs to catalog entries. It is read-only after NewIndex.
type Index struct {
	cards map[string]*entities.Card
}

// NewIndex builds an index from a catalog listing. Later duplicates win.
func NewIndex(cards []entities.Card) *Index {
	idx := &Index{cards: make(map[string]*entities.Card, len(cards))}
	for i := range cards {
		card := cards[i]
		idx.cards[card.ID] = &card
	}
	return idx
}

// Card returns the entry for id, or nil when the catalog does not know it
func (i *Index) Card(id string) *entities.Card {
	if id == "" {
		return nil
	}
	return i.cards[id]
}

// Len is the number of distinct cards
func (i *Index) Len() int {
	return len(i.cards)
}

// ResolveDeck materializes a stored deck. Unknown IDs leave the slot empty.
// Placements are copied as stored, even ones the rules would refuse, so old
// links still open; ValidateDeck reports them. The caller assigns the deck ID.
func (i *Index) ResolveDeck(stored codec.StoredDeck) entities.Deck {
	deck := entities.NewDeck("", stored.Name)
	deck.Spellcaster = i.Card(stored.SpellcasterID)
	for slot, id := range stored.SlotIDs {
		deck.Slots[slot].Card = i.Card(id)
	}
	return deck
}

// ResolveTeam materializes every deck of a stored team. Missing decks become empty decks.
func (i *Index) ResolveTeam(stored codec.StoredTeam) entities.Team {
	team := entities.Team{Name: stored.Name}
	for pos, deck := range stored.Decks {
		if deck == nil {
			team.Decks[pos] = entities.NewDeck("", "")
			continue
		}
		team.Decks[pos] = i.ResolveDeck(*deck)
	}
	return team
}
