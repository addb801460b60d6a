package builder

import (
	"github.com/KirkDiggler/deckbuilder-api/internal/drag"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/rules"
	"github.com/KirkDiggler/deckbuilder-api/internal/teammove"
)

// ApplyDeckAction applies an intent to a single deck (solo mode). Intents that
// reach into another deck fail with MOVE_FAILED.
func ApplyDeckAction(deck entities.Deck, action drag.Action) (entities.Deck, error) {
	if action.Type == drag.ActionNoOp {
		return deck, nil
	}
	if action.IsCrossDeck() {
		return deck, errors.Newf(errors.CodeMoveFailed, "%s across decks needs team mode", action.Type).
			WithMeta("source_deck_id", action.SourceDeckID).
			WithMeta("target_deck_id", action.TargetDeckID)
	}
	if id := targetDeckID(action); id != "" && id != deck.ID {
		return deck, errors.Newf(errors.CodeInvalidDeck, "action targets deck %s", id).
			WithMeta("deck_id", deck.ID)
	}

	switch action.Type {
	case drag.ActionSetSlot:
		return rules.SetSlot(deck, action.TargetIndex, action.Card)
	case drag.ActionMoveSlot:
		return rules.SwapSlots(deck, action.SourceIndex, action.TargetIndex)
	case drag.ActionClearSlot:
		return rules.ClearSlot(deck, action.TargetIndex)
	case drag.ActionSetSpellcaster:
		return rules.SetSpellcaster(deck, action.Card)
	case drag.ActionRemoveSpellcaster:
		return rules.RemoveSpellcaster(deck)
	default:
		return deck, errors.InvalidArgumentf("unknown action %q", action.Type)
	}
}

// ApplyTeamAction applies an intent to a team. Deck IDs in the action are
// resolved to positions; intents spanning two decks go through teammove.
func ApplyTeamAction(team entities.Team, action drag.Action) (entities.Team, error) {
	if action.Type == drag.ActionNoOp {
		return team, nil
	}

	dst, err := deckIndex(team, targetDeckID(action))
	if err != nil {
		return team, err
	}
	src := dst
	if action.SourceDeckID != "" {
		if src, err = deckIndex(team, action.SourceDeckID); err != nil {
			return team, err
		}
	}

	decks := team.Decks
	switch action.Type {
	case drag.ActionMoveSlot:
		decks, err = teammove.MoveCardBetweenDecks(decks, src, action.SourceIndex, dst, action.TargetIndex)
	case drag.ActionSetSpellcaster:
		if src != dst {
			decks, err = teammove.MoveSpellcasterBetweenDecks(decks, src, dst)
			break
		}
		decks[dst], err = rules.SetSpellcaster(decks[dst], action.Card)
	case drag.ActionSetSlot:
		decks[dst], err = rules.SetSlot(decks[dst], action.TargetIndex, action.Card)
	case drag.ActionClearSlot:
		decks[dst], err = rules.ClearSlot(decks[dst], action.TargetIndex)
	case drag.ActionRemoveSpellcaster:
		decks[dst], err = rules.RemoveSpellcaster(decks[dst])
	default:
		return team, errors.InvalidArgumentf("unknown action %q", action.Type)
	}
	if err != nil {
		return team, err
	}

	team.Decks = decks
	return team, nil
}

// targetDeckID falls back to the source deck when the action has no explicit target
func targetDeckID(action drag.Action) string {
	if action.TargetDeckID != "" {
		return action.TargetDeckID
	}
	return action.SourceDeckID
}

func deckIndex(team entities.Team, deckID string) (int, error) {
	if deckID == "" {
		return 0, errors.New(errors.CodeInvalidDeck, "action names no deck")
	}
	index := team.DeckIndex(deckID)
	if index < 0 {
		return 0, errors.Newf(errors.CodeInvalidDeck, "deck %s is not in team", deckID).
			WithMeta("team_id", team.ID)
	}
	return index, nil
}
