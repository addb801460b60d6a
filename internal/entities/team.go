package entities

// Team is three decks played together
type Team struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Decks [TeamSize]Deck `json:"decks"`
}

// NewTeam creates a team of empty decks using the given deck IDs
func NewTeam(id, name string, deckIDs [TeamSize]string) Team {
	team := Team{ID: id, Name: name}
	for i, deckID := range deckIDs {
		team.Decks[i] = NewDeck(deckID, "")
	}
	return team
}

// DeckIndex returns the position of the deck with the given ID, or -1
func (t Team) DeckIndex(deckID string) int {
	for i, deck := range t.Decks {
		if deck.ID == deckID {
			return i
		}
	}
	return -1
}

// IsEmpty reports whether every deck in the team is empty
func (t Team) IsEmpty() bool {
	for _, deck := range t.Decks {
		if !deck.IsEmpty() {
			return false
		}
	}
	return true
}
