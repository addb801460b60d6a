package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/deckbuilder-api/internal/handlers/api/v1alpha1"
)

var decodeDeckCmd = &cobra.Command{
	Use:   "decode-deck [token]",
	Short: "Decode a deck share token",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return decode(args[0], func(c v1alpha1.DeckCodecServiceClient) decodeFunc { return c.DecodeDeck })
	},
}

var decodeTeamCmd = &cobra.Command{
	Use:   "decode-team [token]",
	Short: "Decode a v1 or v2 team share token",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return decode(args[0], func(c v1alpha1.DeckCodecServiceClient) decodeFunc { return c.DecodeTeam })
	},
}

type decodeFunc func(context.Context, *structpb.Struct, ...grpc.CallOption) (*structpb.Struct, error)

func decode(token string, method func(v1alpha1.DeckCodecServiceClient) decodeFunc) error {
	in, err := v1alpha1.ToStruct(v1alpha1.DecodeRequest{Token: token})
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

	out, err := method(client)(ctx, in)
	if err != nil {
		return fmt.Errorf("failed to decode token: %w", err)
	}
	return printStruct(out)
}
