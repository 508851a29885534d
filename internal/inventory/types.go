package inventory

import "errors"

var (
	// ErrValidation reports rejected input: blank name/brand, negative price,
	// or a malformed import payload.
	ErrValidation = errors.New("inventory: validation failed")
	// ErrNotFound reports an update on an id that is not in the store.
	// Absence is an expected condition, not a failure of the store.
	ErrNotFound = errors.New("inventory: gadget not found")
	// ErrDecryption reports a wrong secret or corrupted ciphertext/iv during
	// import. Wrong-key garbage and padding failures map to this one kind.
	ErrDecryption = errors.New("inventory: decryption failed")
)

// GadgetUpdate carries the partial fields of an update. Nil fields keep the
// prior value.
type GadgetUpdate struct {
	Name  *string
	Brand *string
	Price *float64
}
