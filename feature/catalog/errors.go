package catalog

import "errors"

var (
	// ErrMalformedPayload means the input could not be decoded; the whole call failed.
	ErrMalformedPayload = errors.New("malformed payload")
	// ErrUnknownPurchaseType means a purchase named a type outside the enumeration.
	ErrUnknownPurchaseType = errors.New("unknown purchase type")
	// ErrMalformedDate means a purchase date did not match dd/MM/yyyy HH:mm.
	ErrMalformedDate = errors.New("malformed purchase date")
	// ErrDanglingReference means a purchase named a card or game that is not in the store.
	ErrDanglingReference = errors.New("dangling reference")
)
