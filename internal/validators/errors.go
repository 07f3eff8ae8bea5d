package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrInvalidEntry is the root of all entry schema failures. Callers that
	// only care whether a record passed the gate match this with [errors.Is].
	ErrInvalidEntry = errors.New("invalid entry")

	ErrEmptyEntryID     = errors.New("entry id is required")
	ErrZeroUpdatedAt    = errors.New("entry updatedAt must be set")
	ErrInvalidDay       = errors.New("invalid day bucket")
	ErrInvalidBlockType = errors.New("invalid block type")
	ErrEmptyTag         = errors.New("tags must be non-empty strings")
	ErrInvalidSignifier = errors.New("invalid signifier")
)
