package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/deckbuilder-api/internal/codec"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/handlers/api/v1alpha1"
)

var (
	deckName      string
	spellcasterID string
)

var encodeDeckCmd = &cobra.Command{
	Use:   "encode-deck [slot-id...]",
	Short: "Encode card IDs into a deck share token",
	Long: `Encode up to five card IDs in slot order. Use "" for an empty slot. Example:

  encode-deck --spellcaster sc_1 --name Tempo u_1 u_2 "" "" t_1`,
	Args: cobra.MaximumNArgs(entities.SlotCount),
	RunE: encodeDeck,
}

func init() {
	encodeDeckCmd.Flags().StringVar(&deckName, "name", "", "Deck name")
	encodeDeckCmd.Flags().StringVar(&spellcasterID, "spellcaster", "", "Spellcaster card ID")
}

func encodeDeck(_ *cobra.Command, args []string) error {
	deck := codec.StoredDeck{SpellcasterID: spellcasterID, Name: deckName}
	copy(deck.SlotIDs[:], args)

	in, err := v1alpha1.ToStruct(v1alpha1.EncodeDeckRequest{Deck: deck})
	if err != nil {
		return err
	}

	client, cleanup, err := createCodecClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	out, err := client.EncodeDeck(ctx, in)
	if err != nil {
		return fmt.Errorf("failed to encode deck: %w", err)
	}

	var resp v1alpha1.TokenResponse
	if err := v1alpha1.FromStruct(out, &resp); err != nil {
		return err
	}
	fmt.Println(resp.Token)
	return nil
}
