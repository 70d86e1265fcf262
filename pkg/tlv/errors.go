package tlv

import "errors"

var (
	// ErrValueTooLarge is returned when a record value exceeds the 255
	// bytes representable in the single-byte length field.
	ErrValueTooLarge = errors.New("value exceeds 255 bytes")

	// ErrNotIPv4 is returned when an address form is given an address
	// that has no 4-byte representation.
	ErrNotIPv4 = errors.New("address is not IPv4")
)

// nullAccessPanic is the message prefix used when an accessor is called on
// a null record. Kept stable so callers and tests can recognize it.
const nullAccessPanic = "tlv: access to null record: "
