// Package codec packs decks and teams into short URL-safe share tokens.
//
// A deck is packed as seven fields (spellcaster, five slot IDs, name) joined by
// FieldDelimiter and compressed with lz-string's URI-safe alphabet. Teams have two
// formats. Legacy v1 joins three deck tokens with DeckDelimiter. v2 prefixes
// "v2~" to a single compressed block holding the team name followed by the three
// decks' seven fields each.
//
// Decoding never panics. Malformed tokens produce an INVALID_TOKEN error.
package codec

import (
	"strings"
	"unicode/utf8"

	lzstring "github.com/daku10/go-lz-string"

	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
)

const (
	// FieldDelimiter separates fields inside a packed deck or team
	FieldDelimiter = "\u001F"
	// DeckDelimiter separates deck tokens in a legacy v1 team token
	DeckDelimiter = "~"
	// TeamV2Prefix marks the consolidated team format
	TeamV2Prefix = "v2~"
	// MaxNameLength caps deck and team names, in characters
	MaxNameLength = 50

	// deckFields is spellcaster + slots + name
	deckFields = 1 + entities.SlotCount + 1
	// minDeckFields allows tokens that predate the name field
	minDeckFields = 1 + entities.SlotCount
	teamV2Fields  = 1 + entities.TeamSize*deckFields
)

// StoredDeck is the ID-only form of a deck that travels in a token. Empty strings mean no value.
type StoredDeck struct {
	SpellcasterID string                     `json:"spellcasterId"`
	SlotIDs       [entities.SlotCount]string `json:"slotIds"`
	Name          string                     `json:"name"`
}

// IsEmpty reports whether the stored deck carries no card IDs
func (d StoredDeck) IsEmpty() bool {
	if d.SpellcasterID != "" {
		return false
	}
	for _, id := range d.SlotIDs {
		if id != "" {
			return false
		}
	}
	return true
}

// StoredTeam is the ID-only form of a team. A nil deck means the token had no usable deck there.
type StoredTeam struct {
	Name  string                         `json:"name"`
	Decks [entities.TeamSize]*StoredDeck `json:"decks"`
}

// DeckValues returns the three decks by value, nil positions as empty decks
func (t StoredTeam) DeckValues() [entities.TeamSize]StoredDeck {
	var decks [entities.TeamSize]StoredDeck
	for i, d := range t.Decks {
		if d != nil {
			decks[i] = *d
		}
	}
	return decks
}

// StoredDeckFrom strips a deck down to the IDs the codec needs
func StoredDeckFrom(deck entities.Deck) StoredDeck {
	return StoredDeck{
		SpellcasterID: entities.CardID(deck.Spellcaster),
		SlotIDs:       deck.CardIDs(),
		Name:          deck.Name,
	}
}

// StoredTeamFrom strips every deck of a team down to IDs
func StoredTeamFrom(team entities.Team) StoredTeam {
	stored := StoredTeam{Name: team.Name}
	for i, deck := range team.Decks {
		d := StoredDeckFrom(deck)
		stored.Decks[i] = &d
	}
	return stored
}

// SanitizeName removes both delimiters and caps the result at MaxNameLength characters.
// Invalid UTF-8 is dropped first so truncation never splits a character.
func SanitizeName(name string) string {
	name = strings.ToValidUTF8(name, "")
	name = strings.ReplaceAll(name, FieldDelimiter, "")
	name = strings.ReplaceAll(name, DeckDelimiter, "")
	if utf8.RuneCountInString(name) <= MaxNameLength {
		return name
	}
	runes := []rune(name)
	return string(runes[:MaxNameLength])
}

// sanitizeID keeps a card ID from splitting the packed fields
func sanitizeID(id string) string {
	return strings.ReplaceAll(id, FieldDelimiter, "")
}

func deckFieldsOf(deck StoredDeck) []string {
	fields := make([]string, 0, deckFields)
	fields = append(fields, sanitizeID(deck.SpellcasterID))
	for _, id := range deck.SlotIDs {
		fields = append(fields, sanitizeID(id))
	}
	return append(fields, SanitizeName(deck.Name))
}

// EncodeDeck packs a deck into a URL-safe token
func EncodeDeck(deck StoredDeck) (string, error) {
	packed := strings.Join(deckFieldsOf(deck), FieldDelimiter)
	token, err := lzstring.CompressToEncodedURIComponent(packed)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeInternal, "failed to compress deck")
	}
	return token, nil
}

// DecodeDeck unpacks a deck token. The name field is optional.
func DecodeDeck(token string) (*StoredDeck, error) {
	packed, err := decompress(token)
	if err != nil {
		return nil, err
	}

	parts := strings.Split(packed, FieldDelimiter)
	deck, ok := deckFromParts(parts)
	if !ok {
		return nil, errors.InvalidToken("deck token is truncated").
			WithMeta("fields", len(parts))
	}
	return deck, nil
}

// deckFromParts builds a deck from at least six fields, reading the name when present
func deckFromParts(parts []string) (*StoredDeck, bool) {
	if len(parts) < minDeckFields {
		return nil, false
	}
	deck := &StoredDeck{SpellcasterID: parts[0]}
	copy(deck.SlotIDs[:], parts[1:minDeckFields])
	if len(parts) > minDeckFields {
		deck.Name = parts[minDeckFields]
	}
	return deck, true
}

// EncodeTeam packs a team name and three decks into the v2 format
func EncodeTeam(name string, decks [entities.TeamSize]StoredDeck) (string, error) {
	fields := make([]string, 0, teamV2Fields)
	fields = append(fields, SanitizeName(name))
	for _, deck := range decks {
		fields = append(fields, deckFieldsOf(deck)...)
	}

	token, err := lzstring.CompressToEncodedURIComponent(strings.Join(fields, FieldDelimiter))
	if err != nil {
		return "", errors.WrapWithCode(err, errors.CodeInternal, "failed to compress team")
	}
	return TeamV2Prefix + token, nil
}

// EncodeTeamLegacy produces a v1 team token. It carries no team name.
func EncodeTeamLegacy(decks [entities.TeamSize]StoredDeck) (string, error) {
	tokens := make([]string, 0, entities.TeamSize)
	for i, deck := range decks {
		token, err := EncodeDeck(deck)
		if err != nil {
			return "", errors.Wrapf(err, "failed to encode deck %d", i)
		}
		tokens = append(tokens, token)
	}
	return strings.Join(tokens, DeckDelimiter), nil
}

// IsTeamV2 reports whether token uses the consolidated team format
func IsTeamV2(token string) bool {
	return strings.HasPrefix(normalize(token), TeamV2Prefix)
}

// DecodeTeam unpacks a v2 or legacy v1 team token. The result always has three
// positions; positions that did not decode are nil. An error is returned only when
// no deck at all could be recovered.
func DecodeTeam(token string) (StoredTeam, error) {
	token = normalize(token)

	var team StoredTeam
	if rest, ok := strings.CutPrefix(token, TeamV2Prefix); ok {
		decoded, err := decodeTeamV2(rest)
		if err != nil {
			return StoredTeam{}, err
		}
		team = decoded
	} else {
		team = decodeTeamV1(token)
	}

	for _, deck := range team.Decks {
		if deck != nil {
			return team, nil
		}
	}
	return StoredTeam{}, errors.InvalidToken("team token holds no decks")
}

func decodeTeamV2(token string) (StoredTeam, error) {
	packed, err := decompress(token)
	if err != nil {
		return StoredTeam{}, err
	}

	parts := strings.Split(packed, FieldDelimiter)
	team := StoredTeam{Name: parts[0]}
	rest := parts[1:]
	for i := range team.Decks {
		start := i * deckFields
		if start >= len(rest) {
			break
		}
		end := min(start+deckFields, len(rest))
		if deck, ok := deckFromParts(rest[start:end]); ok {
			team.Decks[i] = deck
		}
	}
	return team, nil
}

func decodeTeamV1(token string) StoredTeam {
	var team StoredTeam
	for i, chunk := range strings.SplitN(token, DeckDelimiter, entities.TeamSize+1) {
		if i >= entities.TeamSize {
			break
		}
		if deck, err := DecodeDeck(chunk); err == nil {
			team.Decks[i] = deck
		}
	}
	return team
}

// normalize undoes the common transport artifact of '+' arriving as a space
func normalize(token string) string {
	return strings.ReplaceAll(token, " ", "+")
}

// decompress inflates a URI-safe lz-string token. The library can panic on
// hostile input so the call is guarded.
func decompress(token string) (packed string, err error) {
	token = normalize(token)
	if token == "" {
		return "", errors.InvalidToken("token is empty")
	}

	defer func() {
		if r := recover(); r != nil {
			packed = ""
			err = errors.InvalidToken("token is corrupt")
		}
	}()

	packed, decompErr := lzstring.DecompressFromEncodedURIComponent(token)
	if decompErr != nil {
		return "", errors.WrapWithCode(decompErr, errors.CodeInvalidToken, "token does not decompress")
	}
	if packed == "" || !utf8.ValidString(packed) {
		return "", errors.InvalidToken("token does not decompress")
	}
	return packed, nil
}

// UpgradeTeamToken rewrites a v1 team token in the v2 format, attaching name.
// v2 tokens come back unchanged with changed false.
func UpgradeTeamToken(token, name string) (upgraded string, changed bool, err error) {
	if IsTeamV2(token) {
		return token, false, nil
	}
	team, err := DecodeTeam(token)
	if err != nil {
		return "", false, err
	}
	upgraded, err = EncodeTeam(name, team.DeckValues())
	if err != nil {
		return "", false, err
	}
	return upgraded, true, nil
}
