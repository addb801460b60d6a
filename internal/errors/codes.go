package errors

import "net/http"

// Code represents an error code
type Code string

// Transport-level codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeResourceExhausted  Code = "RESOURCE_EXHAUSTED"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// Deck builder codes. These are stable identifiers callers branch on.
const (
	// CodeEmptySource means the source slot or spellcaster of a move was empty
	CodeEmptySource Code = "EMPTY_SOURCE"
	// CodeInvalidDeck means a deck index or deck ID does not exist
	CodeInvalidDeck Code = "INVALID_DECK"
	// CodeWrongSlotType means a card was placed into a slot that does not accept its kind
	CodeWrongSlotType Code = "WRONG_SLOT_TYPE"
	// CodeInvalidSwap means a swap would leave a card in a slot that does not accept its kind
	CodeInvalidSwap Code = "INVALID_SWAP"
	// CodeMoveFailed means a drop could not be applied in the current builder mode
	CodeMoveFailed Code = "MOVE_FAILED"
	// CodeSourceFail means the displaced card could not be written back to the source deck
	CodeSourceFail Code = "SOURCE_FAIL"
	// CodeInvalidSlot means a slot index outside 0..4
	CodeInvalidSlot Code = "INVALID_SLOT"
	// CodeInvalidDeckShape means a deck value broke its structural invariants
	CodeInvalidDeckShape Code = "INVALID_DECK_SHAPE"
	// CodeInvalidToken means a share token could not be decoded
	CodeInvalidToken Code = "INVALID_TOKEN"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// HTTPStatus returns the corresponding HTTP status code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeCanceled:
		return http.StatusRequestTimeout
	case CodeInvalidArgument, CodeInvalidToken, CodeInvalidSlot, CodeInvalidDeckShape:
		return http.StatusBadRequest
	case CodeDeadlineExceeded:
		return http.StatusGatewayTimeout
	case CodeNotFound:
		return http.StatusNotFound
	case CodeAlreadyExists:
		return http.StatusConflict
	case CodeResourceExhausted:
		return http.StatusTooManyRequests
	case CodeFailedPrecondition:
		return http.StatusPreconditionFailed
	case CodeEmptySource, CodeInvalidDeck, CodeWrongSlotType, CodeInvalidSwap, CodeMoveFailed, CodeSourceFail:
		return http.StatusUnprocessableEntity
	case CodeUnimplemented:
		return http.StatusNotImplemented
	case CodeInternal:
		return http.StatusInternalServerError
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
