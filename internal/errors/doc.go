// Package errors provides the structured error type used across the deck builder.
//
// Every failure carries a stable Code. Rule operations report the deck builder
// codes (EMPTY_SOURCE, INVALID_DECK, WRONG_SLOT_TYPE, INVALID_SWAP, MOVE_FAILED,
// SOURCE_FAIL, INVALID_SLOT, INVALID_DECK_SHAPE) and the codec reports
// INVALID_TOKEN. Transports map codes to HTTP statuses and gRPC codes.
//
// # Basic Usage
//
//	err := errors.New(errors.CodeWrongSlotType, "titan cards only fit the titan slot").
//	    WithMeta("slot", 2)
//
// Wrapping keeps the original code:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save library entry")
//	}
//
// Re-coding a failure from a lower layer:
//
//	if err != nil {
//	    return errors.WrapWithCode(err, errors.CodeSourceFail, "displaced card rejected by source deck")
//	}
//
// # Checking
//
//	if errors.IsSlotTypeViolation(err) {
//	    // surface as a placement error
//	}
//
// # gRPC
//
// ToGRPCError attaches the domain code and metadata as a structpb.Struct detail
// so FromGRPCError on the client side recovers the exact code.
package errors
