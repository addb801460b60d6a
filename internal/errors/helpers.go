package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]any {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsInvalidToken checks if a share token failed to decode
func IsInvalidToken(err error) bool {
	return GetCode(err) == CodeInvalidToken
}

// IsSlotTypeViolation reports whether err rejected a card for the kind of slot it would land in.
// Both single-slot sets and swaps count.
func IsSlotTypeViolation(err error) bool {
	code := GetCode(err)
	return code == CodeWrongSlotType || code == CodeInvalidSwap
}

// IsRuleViolation reports whether err is one of the deck builder rule codes
func IsRuleViolation(err error) bool {
	switch GetCode(err) {
	case CodeEmptySource, CodeInvalidDeck, CodeWrongSlotType, CodeInvalidSwap,
		CodeMoveFailed, CodeSourceFail, CodeInvalidSlot, CodeInvalidDeckShape:
		return true
	default:
		return false
	}
}
